package service

import (
	"context"
	"fmt"
	"io"
	"mime"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
	"recordsapi/internal/storage"
)

// Download is a streaming file response. The caller owns Reader and must
// close it.
type Download struct {
	Reader      io.ReadCloser
	ContentType string
	Filename    string
	Size        int64
}

// DownloadService streams stored files to authorized callers. The download
// filename is "{lastName}_{studentNumber}_{type}.{extension}"; internal
// storage paths never appear in responses.
type DownloadService interface {
	// ForAdministrator streams any active file.
	ForAdministrator(ctx context.Context, actor *model.Actor, fileSlug string) (*Download, error)

	// ForStudent streams a file owned by the acting student, who must be
	// enrolled.
	ForStudent(ctx context.Context, actor *model.Actor, studentSlug, fileSlug string) (*Download, error)
}

type downloadService struct {
	store    storage.Storage
	files    repository.FileRepository
	students repository.StudentRepository
}

func NewDownloadService(store storage.Storage, files repository.FileRepository, students repository.StudentRepository) DownloadService {
	return &downloadService{store: store, files: files, students: students}
}

func (s *downloadService) ForAdministrator(ctx context.Context, actor *model.Actor, fileSlug string) (*Download, error) {
	if err := Authorize(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	f, err := s.findFile(ctx, fileSlug)
	if err != nil {
		return nil, err
	}
	return s.stream(ctx, f)
}

func (s *downloadService) ForStudent(ctx context.Context, actor *model.Actor, studentSlug, fileSlug string) (*Download, error) {
	if err := AuthorizeSelf(actor, studentSlug); err != nil {
		return nil, err
	}
	f, err := s.findFile(ctx, fileSlug)
	if err != nil {
		return nil, err
	}
	if f.StudentID != actor.ID() {
		return nil, apperrors.ErrUnauthorized
	}
	return s.stream(ctx, f)
}

func (s *downloadService) findFile(ctx context.Context, slug string) (*model.StudentFile, error) {
	f, err := s.files.FindBySlug(ctx, slug, false)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("file")
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return f, nil
}

func (s *downloadService) stream(ctx context.Context, f *model.StudentFile) (*Download, error) {
	student, err := s.students.FindByID(ctx, f.StudentID)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("student")
		}
		return nil, fmt.Errorf("find student: %w", err)
	}

	ok, err := s.store.Exists(ctx, f.Path)
	if err != nil {
		return nil, fmt.Errorf("stat stored object: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("stored object for file %s is missing: %w", f.Slug, apperrors.ErrFileIntegrity)
	}

	rc, info, err := s.store.Get(ctx, f.Path)
	if err != nil {
		return nil, fmt.Errorf("read stored object: %w", err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension("." + f.Extension)
	}
	return &Download{
		Reader:      rc,
		ContentType: contentType,
		Filename:    fmt.Sprintf("%s_%s_%s.%s", student.LastName, student.StudentNumber, f.Type, f.Extension),
		Size:        info.Size,
	}, nil
}
