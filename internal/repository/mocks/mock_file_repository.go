package mocks

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Insert(ctx context.Context, f *model.StudentFile) (*model.StudentFile, error) {
	args := m.Called(ctx, f)
	if fn, ok := args.Get(0).(func(context.Context, *model.StudentFile) *model.StudentFile); ok {
		return fn(ctx, f), args.Error(1)
	}
	var out *model.StudentFile
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentFile)
	}
	return out, args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentFile, error) {
	args := m.Called(ctx, id, includeDeleted)
	var out *model.StudentFile
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentFile)
	}
	return out, args.Error(1)
}

func (m *MockFileRepository) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentFile, error) {
	args := m.Called(ctx, slug, includeDeleted)
	var out *model.StudentFile
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentFile)
	}
	return out, args.Error(1)
}

func (m *MockFileRepository) ActiveByStudentAndType(ctx context.Context, studentID int64, t model.FileType) ([]model.StudentFile, error) {
	args := m.Called(ctx, studentID, t)
	var out []model.StudentFile
	if v := args.Get(0); v != nil {
		out = v.([]model.StudentFile)
	}
	return out, args.Error(1)
}

func (m *MockFileRepository) ActiveByPaymentID(ctx context.Context, paymentID int64) ([]model.StudentFile, error) {
	args := m.Called(ctx, paymentID)
	var out []model.StudentFile
	if v := args.Get(0); v != nil {
		out = v.([]model.StudentFile)
	}
	return out, args.Error(1)
}

func (m *MockFileRepository) ActiveByRegistrarFileID(ctx context.Context, registrarFileID int64) ([]model.StudentFile, error) {
	args := m.Called(ctx, registrarFileID)
	var out []model.StudentFile
	if v := args.Get(0); v != nil {
		out = v.([]model.StudentFile)
	}
	return out, args.Error(1)
}

func (m *MockFileRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the mock itself so expectations set on it apply inside
// transactions too.
func (m *MockFileRepository) WithTx(tx repository.DBTX) repository.FileRepository {
	return m
}
