package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// RegistrarFileAttrs are the header attributes of a registrar-file aggregate.
type RegistrarFileAttrs struct {
	Description string
	Course      string
	Year        string
	Term        string
}

// RegistrarFileView is the outward projection of a registrar-file aggregate.
type RegistrarFileView struct {
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Course      string             `json:"course"`
	Year        string             `json:"year"`
	Term        string             `json:"term"`
	Status      model.RecordStatus `json:"status"`
	Files       []FileView         `json:"files"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// RegistrarFileService manages registrar-file aggregates with the same
// contract as PaymentService: complete-or-absent headers owning 1..N file
// children.
type RegistrarFileService interface {
	Create(ctx context.Context, actor *model.Actor, studentSlug string, attrs RegistrarFileAttrs, uploads []FileUpload) (*RegistrarFileView, error)
	Update(ctx context.Context, actor *model.Actor, slug string, status model.RecordStatus, description string, uploads []FileUpload) (*RegistrarFileView, error)
	Destroy(ctx context.Context, actor *model.Actor, slug string) error
	ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]RegistrarFileView, error)
}

type registrarFileService struct {
	tx       TxRunner
	versions *FileVersionManager
	regfiles repository.RegistrarFileRepository
	students repository.StudentRepository
	slugs    *SlugGenerator
	logs     repository.UserLogRepository
}

func NewRegistrarFileService(tx TxRunner, versions *FileVersionManager, regfiles repository.RegistrarFileRepository, students repository.StudentRepository, logs repository.UserLogRepository) RegistrarFileService {
	return &registrarFileService{
		tx:       tx,
		versions: versions,
		regfiles: regfiles,
		students: students,
		slugs:    NewSlugGenerator(versions.records),
		logs:     logs,
	}
}

func (s *registrarFileService) Create(ctx context.Context, actor *model.Actor, studentSlug string, attrs RegistrarFileAttrs, uploads []FileUpload) (*RegistrarFileView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if attrs.Description == "" {
		return nil, apperrors.Validation("description")
	}
	if len(uploads) == 0 {
		return nil, apperrors.Validation("files")
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}

	var header *model.StudentRegistrarFile
	var children []model.StudentFile
	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		slug, err := s.slugs.WithTx(tx).Generate(ctx, repository.ClassRegistrarFile)
		if err != nil {
			return err
		}
		header, err = s.regfiles.WithTx(tx).Insert(ctx, &model.StudentRegistrarFile{
			AdministratorID: actor.ID(),
			StudentID:       student.ID,
			Description:     attrs.Description,
			Course:          attrs.Course,
			Year:            attrs.Year,
			Term:            attrs.Term,
			Status:          model.RecordPending,
			Slug:            slug,
		})
		if err != nil {
			return fmt.Errorf("insert registrar file header: %w", err)
		}

		children, err = s.versions.WithTx(tx).StoreBatch(ctx, uploads, NewFileParams{
			AdministratorID: actor.ID(),
			StudentID:       student.ID,
			RegistrarFileID: &header.ID,
			Type:            model.FileTypeRegistrarFile,
			Description:     attrs.Description,
			Course:          attrs.Course,
			Year:            attrs.Year,
			Term:            attrs.Term,
		}, "registrar-files")
		return err
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("created registrar file %s for student %s", header.Slug, student.Slug), "registrar-files")

	return s.view(ctx, header, children)
}

func (s *registrarFileService) Update(ctx context.Context, actor *model.Actor, slug string, status model.RecordStatus, description string, uploads []FileUpload) (*RegistrarFileView, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.Validation("status")
	}
	if description == "" {
		return nil, apperrors.Validation("description")
	}
	header, err := s.findHeader(ctx, slug)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		regfiles := s.regfiles.WithTx(tx)
		if err := regfiles.UpdateAttrs(ctx, header.ID, status, description); err != nil {
			return fmt.Errorf("update registrar file: %w", err)
		}
		if len(uploads) == 0 {
			return nil
		}

		versions := s.versions.WithTx(tx)
		children, err := versions.files.ActiveByRegistrarFileID(ctx, header.ID)
		if err != nil {
			return fmt.Errorf("lookup registrar file children: %w", err)
		}
		if err := versions.SupersedeAll(ctx, children); err != nil {
			return err
		}
		_, err = versions.StoreBatch(ctx, uploads, NewFileParams{
			AdministratorID: actor.ID(),
			StudentID:       header.StudentID,
			RegistrarFileID: &header.ID,
			Type:            model.FileTypeRegistrarFile,
			Description:     description,
			Course:          header.Course,
			Year:            header.Year,
			Term:            header.Term,
		}, "registrar-files")
		return err
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("updated registrar file %s", header.Slug), "registrar-files")

	header, err = s.findHeader(ctx, slug)
	if err != nil {
		return nil, err
	}
	children, err := s.versions.files.ActiveByRegistrarFileID(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup registrar file children: %w", err)
	}
	return s.view(ctx, header, children)
}

func (s *registrarFileService) Destroy(ctx context.Context, actor *model.Actor, slug string) error {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return err
	}
	header, err := s.findHeader(ctx, slug)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(tx repository.DBTX) error {
		versions := s.versions.WithTx(tx)
		children, err := versions.files.ActiveByRegistrarFileID(ctx, header.ID)
		if err != nil {
			return fmt.Errorf("lookup registrar file children: %w", err)
		}
		if err := versions.SupersedeAll(ctx, children); err != nil {
			return err
		}

		regfiles := s.regfiles.WithTx(tx)
		n, err := regfiles.SoftDelete(ctx, header.ID)
		if err != nil {
			return fmt.Errorf("soft delete registrar file header: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("registrar file %s was already deleted: %w", header.Slug, apperrors.ErrFileIntegrity)
		}
		if _, err := regfiles.FindByID(ctx, header.ID, false); err == nil {
			return fmt.Errorf("registrar file %s still active after delete: %w", header.Slug, apperrors.ErrFileIntegrity)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("re-check deleted registrar file: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	appendAudit(ctx, s.logs, actor, fmt.Sprintf("destroyed registrar file %s", header.Slug), "registrar-files")
	return nil
}

func (s *registrarFileService) ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]RegistrarFileView, error) {
	if err := authorizeRead(actor, studentSlug, model.RoleAdmin); err != nil {
		return nil, err
	}
	student, err := findStudentBySlug(ctx, s.students, studentSlug)
	if err != nil {
		return nil, err
	}
	headers, err := s.regfiles.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("list registrar files: %w", err)
	}
	if len(headers) == 0 {
		return nil, apperrors.ErrEmpty
	}

	views := make([]RegistrarFileView, 0, len(headers))
	for i := range headers {
		children, err := s.versions.files.ActiveByRegistrarFileID(ctx, headers[i].ID)
		if err != nil {
			return nil, fmt.Errorf("lookup registrar file children: %w", err)
		}
		v, err := s.view(ctx, &headers[i], children)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *registrarFileService) findHeader(ctx context.Context, slug string) (*model.StudentRegistrarFile, error) {
	header, err := s.regfiles.FindBySlug(ctx, slug, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("registrar file")
		}
		return nil, fmt.Errorf("find registrar file: %w", err)
	}
	return header, nil
}

func (s *registrarFileService) view(ctx context.Context, header *model.StudentRegistrarFile, children []model.StudentFile) (*RegistrarFileView, error) {
	files := make([]FileView, 0, len(children))
	for i := range children {
		v, err := fileView(ctx, s.versions.store, &children[i])
		if err != nil {
			return nil, err
		}
		files = append(files, v)
	}
	return &RegistrarFileView{
		Slug:        header.Slug,
		Description: header.Description,
		Course:      header.Course,
		Year:        header.Year,
		Term:        header.Term,
		Status:      header.Status,
		Files:       files,
		CreatedAt:   header.CreatedAt,
		UpdatedAt:   header.UpdatedAt,
	}, nil
}
