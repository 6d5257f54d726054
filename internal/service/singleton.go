package service

import (
	"context"
	"fmt"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// slotDescriptor distinguishes one singleton file slot from another: the file
// type it stores, where its objects live, and who may create or destroy it.
type slotDescriptor struct {
	fileType    model.FileType
	pathPrefix  string
	entity      string
	createRole  model.Role
	destroyRole model.Role
}

var (
	corSlot = slotDescriptor{
		fileType:    model.FileTypeCor,
		pathPrefix:  "cors",
		entity:      "cor",
		createRole:  model.RoleAdmin,
		destroyRole: model.RoleSuperAdmin,
	}
	permitSlot = slotDescriptor{
		fileType:    model.FileTypePermit,
		pathPrefix:  "permits",
		entity:      "permit",
		createRole:  model.RoleAdmin,
		destroyRole: model.RoleSuperAdmin,
	}
	displayPhotoSlot = slotDescriptor{
		fileType:    model.FileTypeDisplayPhoto,
		pathPrefix:  "display-photos",
		entity:      "display photo",
		createRole:  model.RoleAdmin,
		destroyRole: model.RoleAdmin,
	}
)

// SlotAttrs are the caller-supplied attributes of a singleton file.
type SlotAttrs struct {
	Description string
	Course      string
	Year        string
	Term        string
}

// SingletonFileService manages a one-active-file slot per student. The stored
// file row is the whole aggregate: there is no separate header record.
type SingletonFileService interface {
	// Store uploads the first version into an empty slot. A slot that already
	// holds an active file rejects the store; use Update to replace it.
	Store(ctx context.Context, actor *model.Actor, studentSlug string, up FileUpload, attrs SlotAttrs) (*FileView, error)

	// Update supersedes the active version and stores the new one in a single
	// transaction.
	Update(ctx context.Context, actor *model.Actor, studentSlug string, up FileUpload, attrs SlotAttrs) (*FileView, error)

	// Destroy supersedes the active version without a replacement. Super-admin
	// only for COR and permit slots.
	Destroy(ctx context.Context, actor *model.Actor, studentSlug string) error

	// ListFor returns the active file of the slot with its public URL, or
	// ErrEmpty when the slot is empty. Students may read their own slot while
	// enrolled.
	ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]FileView, error)
}

type singletonFileService struct {
	slot     slotDescriptor
	tx       TxRunner
	versions *FileVersionManager
	students repository.StudentRepository
	logs     repository.UserLogRepository
}

// NewCorService manages the certificate-of-registration slot.
func NewCorService(tx TxRunner, versions *FileVersionManager, students repository.StudentRepository, logs repository.UserLogRepository) SingletonFileService {
	return &singletonFileService{slot: corSlot, tx: tx, versions: versions, students: students, logs: logs}
}

// NewPermitService manages the exam-permit slot.
func NewPermitService(tx TxRunner, versions *FileVersionManager, students repository.StudentRepository, logs repository.UserLogRepository) SingletonFileService {
	return &singletonFileService{slot: permitSlot, tx: tx, versions: versions, students: students, logs: logs}
}

// newDisplayPhotoSlot backs StudentService.UpdateDisplayPhoto.
func newDisplayPhotoSlot(tx TxRunner, versions *FileVersionManager, students repository.StudentRepository, logs repository.UserLogRepository) *singletonFileService {
	return &singletonFileService{slot: displayPhotoSlot, tx: tx, versions: versions, students: students, logs: logs}
}

func (s *singletonFileService) params(actor *model.Actor, student *model.Student, attrs SlotAttrs) NewFileParams {
	return NewFileParams{
		AdministratorID: actor.ID(),
		StudentID:       student.ID,
		Type:            s.slot.fileType,
		Description:     attrs.Description,
		Course:          attrs.Course,
		Year:            attrs.Year,
		Term:            attrs.Term,
	}
}

// active returns the slot's active rows. Singleton slots hold at most one.
func (s *singletonFileService) active(ctx context.Context, studentID int64) ([]model.StudentFile, error) {
	files, err := s.versions.files.ActiveByStudentAndType(ctx, studentID, s.slot.fileType)
	if err != nil {
		return nil, fmt.Errorf("lookup active %s: %w", s.slot.entity, err)
	}
	return files, nil
}

func (s *singletonFileService) Store(ctx context.Context, actor *model.Actor, studentSlug string, up FileUpload, attrs SlotAttrs) (*FileView, error) {
	if err := Authorize(actor, s.slot.createRole); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}
	existing, err := s.active(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%s already uploaded for this student: %w", s.slot.entity, apperrors.ErrValidation)
	}

	var stored *model.StudentFile
	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		var err error
		stored, err = s.versions.WithTx(tx).Store(ctx, up, s.params(actor, student, attrs), s.slot.pathPrefix)
		return err
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("stored %s for student %s", s.slot.entity, student.Slug), s.slot.pathPrefix)

	v, err := fileView(ctx, s.versions.store, stored)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *singletonFileService) Update(ctx context.Context, actor *model.Actor, studentSlug string, up FileUpload, attrs SlotAttrs) (*FileView, error) {
	if err := Authorize(actor, s.slot.createRole); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}
	existing, err := s.active(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, apperrors.NotFound(s.slot.entity)
	}

	var stored *model.StudentFile
	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		var err error
		stored, err = s.versions.WithTx(tx).Replace(ctx, &existing[0], up, s.params(actor, student, attrs), s.slot.pathPrefix)
		return err
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated %s for student %s", s.slot.entity, student.Slug), s.slot.pathPrefix)

	v, err := fileView(ctx, s.versions.store, stored)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *singletonFileService) Destroy(ctx context.Context, actor *model.Actor, studentSlug string) error {
	if err := Authorize(actor, s.slot.destroyRole); err != nil {
		return err
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return err
	}
	existing, err := s.active(ctx, student.ID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return apperrors.NotFound(s.slot.entity)
	}

	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		return s.versions.WithTx(tx).SupersedeAll(ctx, existing)
	})
	if err != nil {
		return err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("destroyed %s for student %s", s.slot.entity, student.Slug), s.slot.pathPrefix)
	return nil
}

func (s *singletonFileService) ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]FileView, error) {
	if err := authorizeRead(actor, studentSlug, model.RoleAdmin); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}
	files, err := s.active(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperrors.ErrEmpty
	}

	views := make([]FileView, 0, len(files))
	for i := range files {
		v, err := fileView(ctx, s.versions.store, &files[i])
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
