package mocks

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Create(ctx context.Context, actor *model.Actor, studentSlug string, attrs service.PaymentAttrs, uploads []service.FileUpload) (*service.PaymentView, error) {
	args := m.Called(ctx, actor, studentSlug, attrs, uploads)
	var view *service.PaymentView
	if v := args.Get(0); v != nil {
		view = v.(*service.PaymentView)
	}
	return view, args.Error(1)
}

func (m *MockPaymentService) Update(ctx context.Context, actor *model.Actor, paymentSlug string, status model.RecordStatus, uploads []service.FileUpload) (*service.PaymentView, error) {
	args := m.Called(ctx, actor, paymentSlug, status, uploads)
	var view *service.PaymentView
	if v := args.Get(0); v != nil {
		view = v.(*service.PaymentView)
	}
	return view, args.Error(1)
}

func (m *MockPaymentService) Destroy(ctx context.Context, actor *model.Actor, paymentSlug string) error {
	args := m.Called(ctx, actor, paymentSlug)
	return args.Error(0)
}

func (m *MockPaymentService) ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]service.PaymentView, error) {
	args := m.Called(ctx, actor, studentSlug)
	var views []service.PaymentView
	if v := args.Get(0); v != nil {
		views = v.([]service.PaymentView)
	}
	return views, args.Error(1)
}

type MockRegistrarFileService struct {
	mock.Mock
}

func (m *MockRegistrarFileService) Create(ctx context.Context, actor *model.Actor, studentSlug string, attrs service.RegistrarFileAttrs, uploads []service.FileUpload) (*service.RegistrarFileView, error) {
	args := m.Called(ctx, actor, studentSlug, attrs, uploads)
	var view *service.RegistrarFileView
	if v := args.Get(0); v != nil {
		view = v.(*service.RegistrarFileView)
	}
	return view, args.Error(1)
}

func (m *MockRegistrarFileService) Update(ctx context.Context, actor *model.Actor, slug string, status model.RecordStatus, description string, uploads []service.FileUpload) (*service.RegistrarFileView, error) {
	args := m.Called(ctx, actor, slug, status, description, uploads)
	var view *service.RegistrarFileView
	if v := args.Get(0); v != nil {
		view = v.(*service.RegistrarFileView)
	}
	return view, args.Error(1)
}

func (m *MockRegistrarFileService) Destroy(ctx context.Context, actor *model.Actor, slug string) error {
	args := m.Called(ctx, actor, slug)
	return args.Error(0)
}

func (m *MockRegistrarFileService) ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]service.RegistrarFileView, error) {
	args := m.Called(ctx, actor, studentSlug)
	var views []service.RegistrarFileView
	if v := args.Get(0); v != nil {
		views = v.([]service.RegistrarFileView)
	}
	return views, args.Error(1)
}

type MockSingletonFileService struct {
	mock.Mock
}

func (m *MockSingletonFileService) Store(ctx context.Context, actor *model.Actor, studentSlug string, up service.FileUpload, attrs service.SlotAttrs) (*service.FileView, error) {
	args := m.Called(ctx, actor, studentSlug, up, attrs)
	var view *service.FileView
	if v := args.Get(0); v != nil {
		view = v.(*service.FileView)
	}
	return view, args.Error(1)
}

func (m *MockSingletonFileService) Update(ctx context.Context, actor *model.Actor, studentSlug string, up service.FileUpload, attrs service.SlotAttrs) (*service.FileView, error) {
	args := m.Called(ctx, actor, studentSlug, up, attrs)
	var view *service.FileView
	if v := args.Get(0); v != nil {
		view = v.(*service.FileView)
	}
	return view, args.Error(1)
}

func (m *MockSingletonFileService) Destroy(ctx context.Context, actor *model.Actor, studentSlug string) error {
	args := m.Called(ctx, actor, studentSlug)
	return args.Error(0)
}

func (m *MockSingletonFileService) ListFor(ctx context.Context, actor *model.Actor, studentSlug string) ([]service.FileView, error) {
	args := m.Called(ctx, actor, studentSlug)
	var views []service.FileView
	if v := args.Get(0); v != nil {
		views = v.([]service.FileView)
	}
	return views, args.Error(1)
}

type MockDownloadService struct {
	mock.Mock
}

func (m *MockDownloadService) ForAdministrator(ctx context.Context, actor *model.Actor, fileSlug string) (*service.Download, error) {
	args := m.Called(ctx, actor, fileSlug)
	var dl *service.Download
	if v := args.Get(0); v != nil {
		dl = v.(*service.Download)
	}
	return dl, args.Error(1)
}

func (m *MockDownloadService) ForStudent(ctx context.Context, actor *model.Actor, studentSlug, fileSlug string) (*service.Download, error) {
	args := m.Called(ctx, actor, studentSlug, fileSlug)
	var dl *service.Download
	if v := args.Get(0); v != nil {
		dl = v.(*service.Download)
	}
	return dl, args.Error(1)
}
