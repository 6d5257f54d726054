package service

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	repoMocks "recordsapi/internal/repository/mocks"
	"recordsapi/internal/storage"
	storeMocks "recordsapi/internal/storage/mocks"
)

type downloadFixture struct {
	store    *storeMocks.MockStorage
	files    *repoMocks.MockFileRepository
	students *repoMocks.MockStudentRepository
	svc      DownloadService
}

func newDownloadFixture() *downloadFixture {
	f := &downloadFixture{
		store:    new(storeMocks.MockStorage),
		files:    new(repoMocks.MockFileRepository),
		students: new(repoMocks.MockStudentRepository),
	}
	f.svc = NewDownloadService(f.store, f.files, f.students)
	return f
}

func sampleFile() *model.StudentFile {
	return &model.StudentFile{
		ID:        9,
		StudentID: 42,
		Type:      model.FileTypeCor,
		Path:      "cors/abc.pdf",
		Extension: "pdf",
		Slug:      "abc",
	}
}

func TestDownloadService_ForAdministrator(t *testing.T) {
	ctx := context.Background()

	t.Run("streams with the canonical filename", func(t *testing.T) {
		f := newDownloadFixture()
		f.files.On("FindBySlug", ctx, "abc", false).Return(sampleFile(), nil)
		f.students.On("FindByID", ctx, int64(42)).Return(sampleStudent(), nil)
		f.store.On("Exists", ctx, "cors/abc.pdf").Return(true, nil)
		f.store.On("Get", ctx, "cors/abc.pdf").Return(
			io.NopCloser(strings.NewReader("pdf bytes")),
			storage.ObjectInfo{Size: 9, ContentType: "application/pdf"},
			nil,
		)

		dl, err := f.svc.ForAdministrator(ctx, adminActor(model.RoleAdmin), "abc")

		assert.NoError(t, err)
		assert.Equal(t, "Reyes_2021-00042_cor.pdf", dl.Filename)
		assert.Equal(t, "application/pdf", dl.ContentType)
		body, _ := io.ReadAll(dl.Reader)
		assert.Equal(t, "pdf bytes", string(body))
	})

	t.Run("unknown slug yields not found", func(t *testing.T) {
		f := newDownloadFixture()
		f.files.On("FindBySlug", ctx, "missing", false).Return(nil, sql.ErrNoRows)

		_, err := f.svc.ForAdministrator(ctx, adminActor(model.RoleAdmin), "missing")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("missing bytes is an integrity failure", func(t *testing.T) {
		f := newDownloadFixture()
		f.files.On("FindBySlug", ctx, "abc", false).Return(sampleFile(), nil)
		f.students.On("FindByID", ctx, int64(42)).Return(sampleStudent(), nil)
		f.store.On("Exists", ctx, "cors/abc.pdf").Return(false, nil)

		_, err := f.svc.ForAdministrator(ctx, adminActor(model.RoleAdmin), "abc")

		assert.ErrorIs(t, err, apperrors.ErrFileIntegrity)
		f.store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("student actor is rejected", func(t *testing.T) {
		f := newDownloadFixture()

		_, err := f.svc.ForAdministrator(ctx, studentActor(model.StatusEnrolled), "abc")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestDownloadService_ForStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolled student downloads their own file", func(t *testing.T) {
		f := newDownloadFixture()
		f.files.On("FindBySlug", ctx, "abc", false).Return(sampleFile(), nil)
		f.students.On("FindByID", ctx, int64(42)).Return(sampleStudent(), nil)
		f.store.On("Exists", ctx, "cors/abc.pdf").Return(true, nil)
		f.store.On("Get", ctx, "cors/abc.pdf").Return(
			io.NopCloser(strings.NewReader("pdf bytes")),
			storage.ObjectInfo{Size: 9},
			nil,
		)

		dl, err := f.svc.ForStudent(ctx, studentActor(model.StatusEnrolled), "student-slug", "abc")

		assert.NoError(t, err)
		assert.Equal(t, "Reyes_2021-00042_cor.pdf", dl.Filename)
	})

	t.Run("dropped student is rejected", func(t *testing.T) {
		f := newDownloadFixture()

		_, err := f.svc.ForStudent(ctx, studentActor(model.StatusDropped), "student-slug", "abc")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		f.files.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("another student's file is rejected", func(t *testing.T) {
		f := newDownloadFixture()
		other := sampleFile()
		other.StudentID = 77
		f.files.On("FindBySlug", ctx, "abc", false).Return(other, nil)

		_, err := f.svc.ForStudent(ctx, studentActor(model.StatusEnrolled), "student-slug", "abc")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
