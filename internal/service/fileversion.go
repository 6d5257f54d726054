package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
	"recordsapi/internal/storage"
)

// storageDisk is the disk label recorded on every file row.
const storageDisk = "s3"

// allowedExtensions limits uploads to the document formats the registrar
// accepts.
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"pdf":  true,
}

// FileUpload is the inbound content of one file, streamed from the request.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	Extension   string
	ContentType string
}

// validate checks the upload before any byte touches storage.
func (u FileUpload) validate() (string, error) {
	if u.Reader == nil || u.Size == 0 {
		return "", apperrors.Validation("file")
	}
	ext := strings.ToLower(strings.TrimPrefix(u.Extension, "."))
	if !allowedExtensions[ext] {
		return "", apperrors.Validation("file extension")
	}
	return ext, nil
}

// rewind resets the reader to the start of the content. A retried transaction
// re-runs Store with the same upload, and an earlier attempt has already
// consumed the reader; multipart files and in-memory readers are seekable, so
// the next attempt can write the full content again. A non-seekable reader is
// left alone and only supports a single attempt.
func (u FileUpload) rewind() error {
	s, ok := u.Reader.(io.Seeker)
	if !ok {
		return nil
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind upload: %w", err)
	}
	return nil
}

// NewFileParams carries the row metadata for a freshly stored version.
type NewFileParams struct {
	AdministratorID int64
	StudentID       int64
	PaymentID       *int64
	RegistrarFileID *int64
	Type            model.FileType
	Description     string
	Course          string
	Year            string
	Term            string
}

// FileView is the outward projection of a stored file with its resolved
// public URL. Internal keys and storage paths never leave the service layer.
type FileView struct {
	Slug        string         `json:"slug"`
	Type        model.FileType `json:"type"`
	Description string         `json:"description,omitempty"`
	Extension   string         `json:"extension"`
	Course      string         `json:"course"`
	Year        string         `json:"year"`
	Term        string         `json:"term"`
	URL         string         `json:"url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// FileVersionManager drives the per-slot lifecycle of stored files. Each slot
// moves EMPTY -> ACTIVE on Store and ACTIVE -> SUPERSEDED on Supersede; a
// superseded version keeps its row (soft-deleted) and its bytes (demoted to
// private) as the audit trail.
//
// Database writes run through the bound repositories; rebind with WithTx to
// run them inside a surrounding transaction. Storage calls are never
// transactional, which is why Supersede re-verifies every step.
type FileVersionManager struct {
	store   storage.Storage
	files   repository.FileRepository
	records repository.RecordRepository
	slugs   *SlugGenerator
}

func NewFileVersionManager(store storage.Storage, files repository.FileRepository, records repository.RecordRepository) *FileVersionManager {
	return &FileVersionManager{
		store:   store,
		files:   files,
		records: records,
		slugs:   NewSlugGenerator(records),
	}
}

// WithTx returns a manager whose repositories run in the given transaction.
func (m *FileVersionManager) WithTx(tx repository.DBTX) *FileVersionManager {
	return &FileVersionManager{
		store:   m.store,
		files:   m.files.WithTx(tx),
		records: m.records.WithTx(tx),
		slugs:   m.slugs.WithTx(tx),
	}
}

// Store persists a new active version: validate, generate the slug, write the
// bytes publicly under <prefix>/<slug>.<ext>, confirm the object exists, then
// insert the row. A failing step leaves no row behind; bytes already written
// are tolerated as orphans.
func (m *FileVersionManager) Store(ctx context.Context, up FileUpload, p NewFileParams, prefix string) (*model.StudentFile, error) {
	ext, err := up.validate()
	if err != nil {
		return nil, err
	}
	if err := up.rewind(); err != nil {
		return nil, err
	}

	slug, err := m.slugs.Generate(ctx, repository.ClassFile)
	if err != nil {
		return nil, err
	}
	key := prefix + "/" + slug + "." + ext

	if _, err := m.store.Put(ctx, key, up.Reader, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Visibility:  storage.Public,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageWrite, err)
	}

	ok, err := m.store.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("verify stored object: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("object missing after write: %w", apperrors.ErrStorageWrite)
	}

	stored, err := m.files.Insert(ctx, &model.StudentFile{
		AdministratorID: p.AdministratorID,
		StudentID:       p.StudentID,
		PaymentID:       p.PaymentID,
		RegistrarFileID: p.RegistrarFileID,
		Disk:            storageDisk,
		Type:            p.Type,
		Description:     p.Description,
		Path:            key,
		Extension:       ext,
		Course:          p.Course,
		Year:            p.Year,
		Term:            p.Term,
		Slug:            slug,
	})
	if err != nil {
		return nil, fmt.Errorf("insert file row: %w", err)
	}
	return stored, nil
}

// Supersede retires the active version f. The sequence is strict: confirm the
// current bytes exist, soft-delete the row, confirm a non-deleted lookup now
// misses, demote the object to private and read the visibility back. Any step
// out of line is an integrity failure; nothing repairs it automatically.
func (m *FileVersionManager) Supersede(ctx context.Context, f *model.StudentFile) error {
	ok, err := m.store.Exists(ctx, f.Path)
	if err != nil {
		return fmt.Errorf("stat current object: %w", err)
	}
	if !ok {
		return fmt.Errorf("stored object for file %s is missing: %w", f.Slug, apperrors.ErrFileIntegrity)
	}

	n, err := m.files.SoftDelete(ctx, f.ID)
	if err != nil {
		return fmt.Errorf("soft delete file row: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("file %s was already deleted: %w", f.Slug, apperrors.ErrFileIntegrity)
	}

	if _, err := m.files.FindByID(ctx, f.ID, false); err == nil {
		return fmt.Errorf("file %s still active after delete: %w", f.Slug, apperrors.ErrFileIntegrity)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("re-check deleted file: %w", err)
	}

	if err := m.store.SetVisibility(ctx, f.Path, storage.Private); err != nil {
		return fmt.Errorf("demote object visibility: %w", err)
	}
	v, err := m.store.GetVisibility(ctx, f.Path)
	if err != nil {
		return fmt.Errorf("read back visibility: %w", err)
	}
	if v != storage.Private {
		return fmt.Errorf("object for file %s is still %s: %w", f.Slug, v, apperrors.ErrFileIntegrity)
	}
	return nil
}

// Replace supersedes the current version and stores the new one for the same
// slot. The new write happens only after the old row is confirmed
// soft-deleted.
func (m *FileVersionManager) Replace(ctx context.Context, current *model.StudentFile, up FileUpload, p NewFileParams, prefix string) (*model.StudentFile, error) {
	if err := m.Supersede(ctx, current); err != nil {
		return nil, err
	}
	return m.Store(ctx, up, p, prefix)
}

// StoreBatch stores the uploads in order and aborts on the first failure. The
// caller's transaction decides whether rows from earlier iterations survive;
// inside a rolled-back transaction none do.
func (m *FileVersionManager) StoreBatch(ctx context.Context, uploads []FileUpload, p NewFileParams, prefix string) ([]model.StudentFile, error) {
	stored := make([]model.StudentFile, 0, len(uploads))
	for _, up := range uploads {
		f, err := m.Store(ctx, up, p, prefix)
		if err != nil {
			return nil, err
		}
		stored = append(stored, *f)
	}
	return stored, nil
}

// SupersedeAll supersedes every file in order, aborting on the first failure.
func (m *FileVersionManager) SupersedeAll(ctx context.Context, files []model.StudentFile) error {
	for i := range files {
		if err := m.Supersede(ctx, &files[i]); err != nil {
			return err
		}
	}
	return nil
}

// fileView projects a row to its outward shape, resolving the public URL.
func fileView(ctx context.Context, store storage.Storage, f *model.StudentFile) (FileView, error) {
	url, err := store.URL(ctx, f.Path)
	if err != nil {
		return FileView{}, fmt.Errorf("resolve file url: %w", err)
	}
	return FileView{
		Slug:        f.Slug,
		Type:        f.Type,
		Description: f.Description,
		Extension:   f.Extension,
		Course:      f.Course,
		Year:        f.Year,
		Term:        f.Term,
		URL:         url,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}, nil
}
