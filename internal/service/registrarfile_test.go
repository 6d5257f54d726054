package service

import (
	"context"
	"database/sql"
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

type registrarFileFixture struct {
	store    *storeMocks.MockStorage
	files    *repoMocks.MockFileRepository
	records  *repoMocks.MockRecordRepository
	regfiles *repoMocks.MockRegistrarFileRepository
	students *repoMocks.MockStudentRepository
	svc      RegistrarFileService
}

func newRegistrarFileFixture() *registrarFileFixture {
	f := &registrarFileFixture{
		store:    new(storeMocks.MockStorage),
		files:    new(repoMocks.MockFileRepository),
		records:  new(repoMocks.MockRecordRepository),
		regfiles: new(repoMocks.MockRegistrarFileRepository),
		students: new(repoMocks.MockStudentRepository),
	}
	versions := NewFileVersionManager(f.store, f.files, f.records)
	f.svc = NewRegistrarFileService(stubTxRunner{}, versions, f.regfiles, f.students, nil)
	return f
}

func registrarAttrs() RegistrarFileAttrs {
	return RegistrarFileAttrs{
		Description: "Form 137",
		Course:      "BSIT",
		Year:        "3",
		Term:        "1",
	}
}

func registrarUploads(n int) []FileUpload {
	uploads := make([]FileUpload, 0, n)
	for i := 0; i < n; i++ {
		uploads = append(uploads, FileUpload{
			Reader:      strings.NewReader("scan"),
			Size:        4,
			Extension:   "pdf",
			ContentType: "application/pdf",
		})
	}
	return uploads
}

func TestRegistrarFileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path stores header and children", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.students.On("FindBySlug", ctx, "student-slug", false).Return(sampleStudent(), nil)
		f.records.On("SlugInUse", ctx, mock.Anything, mock.Anything).Return(false, nil)
		f.regfiles.On("Insert", ctx, mock.MatchedBy(func(rf *model.StudentRegistrarFile) bool {
			return rf.StudentID == 42 && rf.Description == "Form 137" && rf.Status == model.RecordPending
		})).Return(func(ctx context.Context, rf *model.StudentRegistrarFile) *model.StudentRegistrarFile {
			stored := *rf
			stored.ID = 6
			return &stored
		}, nil)
		f.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "registrar-files/")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		f.store.On("Exists", ctx, mock.Anything).Return(true, nil)
		f.files.On("Insert", ctx, mock.MatchedBy(func(sf *model.StudentFile) bool {
			return sf.Type == model.FileTypeRegistrarFile && sf.RegistrarFileID != nil && *sf.RegistrarFileID == 6
		})).Return(func(ctx context.Context, sf *model.StudentFile) *model.StudentFile {
			stored := *sf
			return &stored
		}, nil)
		f.store.On("URL", ctx, mock.Anything).Return("https://cdn.example.com/registrar-files/x.pdf", nil)

		view, err := f.svc.Create(ctx, adminActor(model.RoleAdmin), "student-slug", registrarAttrs(), registrarUploads(2))

		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Len(t, view.Files, 2)
		f.files.AssertNumberOfCalls(t, "Insert", 2)
	})

	t.Run("missing description", func(t *testing.T) {
		f := newRegistrarFileFixture()
		attrs := registrarAttrs()
		attrs.Description = ""

		_, err := f.svc.Create(ctx, adminActor(model.RoleAdmin), "student-slug", attrs, registrarUploads(1))

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		f.regfiles.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("no files is a validation failure", func(t *testing.T) {
		f := newRegistrarFileFixture()

		_, err := f.svc.Create(ctx, adminActor(model.RoleAdmin), "student-slug", registrarAttrs(), nil)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("student actor is rejected", func(t *testing.T) {
		f := newRegistrarFileFixture()

		_, err := f.svc.Create(ctx, studentActor(model.StatusEnrolled), "student-slug", registrarAttrs(), registrarUploads(1))

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestRegistrarFileService_Update(t *testing.T) {
	ctx := context.Background()
	header := &model.StudentRegistrarFile{ID: 6, StudentID: 42, Slug: "reg", Status: model.RecordPending, Course: "BSIT", Year: "3", Term: "1"}

	t.Run("attrs-only update touches no files", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.regfiles.On("FindBySlug", ctx, "reg", false).Return(header, nil)
		f.regfiles.On("UpdateAttrs", ctx, int64(6), model.RecordVerified, "Form 138").Return(nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return(nil, nil)

		view, err := f.svc.Update(ctx, adminActor(model.RoleAdmin), "reg", model.RecordVerified, "Form 138", nil)

		assert.NoError(t, err)
		assert.NotNil(t, view)
		f.files.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
		f.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("uploads supersede the active children", func(t *testing.T) {
		f := newRegistrarFileFixture()
		children := []model.StudentFile{
			{ID: 1, StudentID: 42, Path: "registrar-files/old.pdf", Slug: "old"},
		}
		f.regfiles.On("FindBySlug", ctx, "reg", false).Return(header, nil)
		f.regfiles.On("UpdateAttrs", ctx, int64(6), model.RecordVerified, "Form 138").Return(nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return(children, nil).Once()
		f.store.On("Exists", ctx, "registrar-files/old.pdf").Return(true, nil).Once()
		f.files.On("SoftDelete", ctx, int64(1)).Return(int64(1), nil)
		f.files.On("FindByID", ctx, int64(1), false).Return(nil, sql.ErrNoRows)
		f.store.On("SetVisibility", ctx, "registrar-files/old.pdf", storage.Private).Return(nil)
		f.store.On("GetVisibility", ctx, "registrar-files/old.pdf").Return(storage.Private, nil)
		f.records.On("SlugInUse", ctx, mock.Anything, mock.Anything).Return(false, nil)
		f.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		f.store.On("Exists", ctx, mock.MatchedBy(func(key string) bool {
			return key != "registrar-files/old.pdf"
		})).Return(true, nil)
		f.files.On("Insert", ctx, mock.Anything).Return(&model.StudentFile{ID: 2, Path: "registrar-files/new.pdf"}, nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return([]model.StudentFile{
			{ID: 2, Path: "registrar-files/new.pdf"},
		}, nil)
		f.store.On("URL", ctx, mock.Anything).Return("https://cdn.example.com/registrar-files/new.pdf", nil)

		view, err := f.svc.Update(ctx, adminActor(model.RoleAdmin), "reg", model.RecordVerified, "Form 138", registrarUploads(1))

		assert.NoError(t, err)
		assert.NotNil(t, view)
		f.files.AssertNumberOfCalls(t, "SoftDelete", 1)
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.regfiles.On("FindBySlug", ctx, "ghost", false).Return(nil, sql.ErrNoRows)

		_, err := f.svc.Update(ctx, adminActor(model.RoleAdmin), "ghost", model.RecordVerified, "Form 138", nil)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestRegistrarFileService_Destroy(t *testing.T) {
	ctx := context.Background()
	header := &model.StudentRegistrarFile{ID: 6, StudentID: 42, Slug: "reg", Status: model.RecordPending}

	t.Run("super admin destroys the whole aggregate", func(t *testing.T) {
		f := newRegistrarFileFixture()
		children := []model.StudentFile{
			{ID: 1, StudentID: 42, Path: "registrar-files/a.pdf", Slug: "a"},
		}
		f.regfiles.On("FindBySlug", ctx, "reg", false).Return(header, nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return(children, nil)
		f.store.On("Exists", ctx, "registrar-files/a.pdf").Return(true, nil)
		f.files.On("SoftDelete", ctx, int64(1)).Return(int64(1), nil)
		f.files.On("FindByID", ctx, int64(1), false).Return(nil, sql.ErrNoRows)
		f.store.On("SetVisibility", ctx, "registrar-files/a.pdf", storage.Private).Return(nil)
		f.store.On("GetVisibility", ctx, "registrar-files/a.pdf").Return(storage.Private, nil)
		f.regfiles.On("SoftDelete", ctx, int64(6)).Return(int64(1), nil)
		f.regfiles.On("FindByID", ctx, int64(6), false).Return(nil, sql.ErrNoRows)

		err := f.svc.Destroy(ctx, adminActor(model.RoleSuperAdmin), "reg")

		assert.NoError(t, err)
		f.regfiles.AssertExpectations(t)
	})

	t.Run("plain admin is rejected before lookup", func(t *testing.T) {
		f := newRegistrarFileFixture()

		err := f.svc.Destroy(ctx, adminActor(model.RoleAdmin), "reg")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		f.regfiles.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second destroy is not found", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.regfiles.On("FindBySlug", ctx, "reg", false).Return(nil, sql.ErrNoRows)

		err := f.svc.Destroy(ctx, adminActor(model.RoleSuperAdmin), "reg")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("zero-row header delete is an integrity failure", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.regfiles.On("FindBySlug", ctx, "reg", false).Return(header, nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return(nil, nil)
		f.regfiles.On("SoftDelete", ctx, int64(6)).Return(int64(0), nil)

		err := f.svc.Destroy(ctx, adminActor(model.RoleSuperAdmin), "reg")

		assert.ErrorIs(t, err, apperrors.ErrFileIntegrity)
	})
}

func TestRegistrarFileService_ListFor(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves file URLs", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.students.On("FindBySlug", ctx, "student-slug", false).Return(sampleStudent(), nil)
		f.regfiles.On("ListByStudent", ctx, int64(42)).Return([]model.StudentRegistrarFile{
			{ID: 6, StudentID: 42, Slug: "reg", Description: "Form 137"},
		}, nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return([]model.StudentFile{
			{ID: 1, Path: "registrar-files/a.pdf", Slug: "a"},
		}, nil)
		f.store.On("URL", ctx, "registrar-files/a.pdf").Return("https://cdn.example.com/registrar-files/a.pdf", nil)

		views, err := f.svc.ListFor(ctx, adminActor(model.RoleAdmin), "student-slug")

		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "https://cdn.example.com/registrar-files/a.pdf", views[0].Files[0].URL)
	})

	t.Run("no aggregates", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.students.On("FindBySlug", ctx, "student-slug", false).Return(sampleStudent(), nil)
		f.regfiles.On("ListByStudent", ctx, int64(42)).Return(nil, nil)

		_, err := f.svc.ListFor(ctx, adminActor(model.RoleAdmin), "student-slug")

		assert.ErrorIs(t, err, apperrors.ErrEmpty)
	})

	t.Run("enrolled student reads their own", func(t *testing.T) {
		f := newRegistrarFileFixture()
		f.students.On("FindBySlug", ctx, "student-slug", false).Return(sampleStudent(), nil)
		f.regfiles.On("ListByStudent", ctx, int64(42)).Return([]model.StudentRegistrarFile{
			{ID: 6, StudentID: 42, Slug: "reg"},
		}, nil)
		f.files.On("ActiveByRegistrarFileID", ctx, int64(6)).Return(nil, nil)

		views, err := f.svc.ListFor(ctx, studentActor(model.StatusEnrolled), "student-slug")

		assert.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("dropped student is rejected", func(t *testing.T) {
		f := newRegistrarFileFixture()

		_, err := f.svc.ListFor(ctx, studentActor(model.StatusDropped), "student-slug")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
