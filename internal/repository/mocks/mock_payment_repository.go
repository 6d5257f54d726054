package mocks

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Insert(ctx context.Context, p *model.StudentPayment) (*model.StudentPayment, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, *model.StudentPayment) *model.StudentPayment); ok {
		return fn(ctx, p), args.Error(1)
	}
	var out *model.StudentPayment
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentPayment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentPayment, error) {
	args := m.Called(ctx, slug, includeDeleted)
	var out *model.StudentPayment
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentPayment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentPayment, error) {
	args := m.Called(ctx, id, includeDeleted)
	var out *model.StudentPayment
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentPayment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.StudentPayment, error) {
	args := m.Called(ctx, studentID)
	var out []model.StudentPayment
	if v := args.Get(0); v != nil {
		out = v.([]model.StudentPayment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id int64, status model.RecordStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPaymentRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the mock itself so expectations set on it apply inside
// transactions too.
func (m *MockPaymentRepository) WithTx(tx repository.DBTX) repository.PaymentRepository {
	return m
}

type MockRegistrarFileRepository struct {
	mock.Mock
}

func (m *MockRegistrarFileRepository) Insert(ctx context.Context, rf *model.StudentRegistrarFile) (*model.StudentRegistrarFile, error) {
	args := m.Called(ctx, rf)
	if fn, ok := args.Get(0).(func(context.Context, *model.StudentRegistrarFile) *model.StudentRegistrarFile); ok {
		return fn(ctx, rf), args.Error(1)
	}
	var out *model.StudentRegistrarFile
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentRegistrarFile)
	}
	return out, args.Error(1)
}

func (m *MockRegistrarFileRepository) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentRegistrarFile, error) {
	args := m.Called(ctx, slug, includeDeleted)
	var out *model.StudentRegistrarFile
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentRegistrarFile)
	}
	return out, args.Error(1)
}

func (m *MockRegistrarFileRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentRegistrarFile, error) {
	args := m.Called(ctx, id, includeDeleted)
	var out *model.StudentRegistrarFile
	if v := args.Get(0); v != nil {
		out = v.(*model.StudentRegistrarFile)
	}
	return out, args.Error(1)
}

func (m *MockRegistrarFileRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.StudentRegistrarFile, error) {
	args := m.Called(ctx, studentID)
	var out []model.StudentRegistrarFile
	if v := args.Get(0); v != nil {
		out = v.([]model.StudentRegistrarFile)
	}
	return out, args.Error(1)
}

func (m *MockRegistrarFileRepository) UpdateAttrs(ctx context.Context, id int64, status model.RecordStatus, description string) error {
	args := m.Called(ctx, id, status, description)
	return args.Error(0)
}

func (m *MockRegistrarFileRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the mock itself so expectations set on it apply inside
// transactions too.
func (m *MockRegistrarFileRepository) WithTx(tx repository.DBTX) repository.RegistrarFileRepository {
	return m
}
