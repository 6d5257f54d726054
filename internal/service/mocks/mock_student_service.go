package mocks

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Create(ctx context.Context, actor *model.Actor, in service.CreateStudentInput) (*service.StudentView, error) {
	args := m.Called(ctx, actor, in)
	var view *service.StudentView
	if v := args.Get(0); v != nil {
		view = v.(*service.StudentView)
	}
	return view, args.Error(1)
}

func (m *MockStudentService) List(ctx context.Context, actor *model.Actor) ([]service.StudentView, error) {
	args := m.Called(ctx, actor)
	var views []service.StudentView
	if v := args.Get(0); v != nil {
		views = v.([]service.StudentView)
	}
	return views, args.Error(1)
}

func (m *MockStudentService) Get(ctx context.Context, actor *model.Actor, slug string) (*service.StudentView, error) {
	args := m.Called(ctx, actor, slug)
	var view *service.StudentView
	if v := args.Get(0); v != nil {
		view = v.(*service.StudentView)
	}
	return view, args.Error(1)
}

func (m *MockStudentService) UpdateEnrollmentStatus(ctx context.Context, actor *model.Actor, slug string, status model.EnrollmentStatus) error {
	args := m.Called(ctx, actor, slug, status)
	return args.Error(0)
}

func (m *MockStudentService) UpdateName(ctx context.Context, actor *model.Actor, slug, first, middle, last string) error {
	args := m.Called(ctx, actor, slug, first, middle, last)
	return args.Error(0)
}

func (m *MockStudentService) UpdateCourse(ctx context.Context, actor *model.Actor, slug, course string) error {
	args := m.Called(ctx, actor, slug, course)
	return args.Error(0)
}

func (m *MockStudentService) UpdateYearTerm(ctx context.Context, actor *model.Actor, slug, year, term string) error {
	args := m.Called(ctx, actor, slug, year, term)
	return args.Error(0)
}

func (m *MockStudentService) UpdateEmail(ctx context.Context, actor *model.Actor, slug, email string) error {
	args := m.Called(ctx, actor, slug, email)
	return args.Error(0)
}

func (m *MockStudentService) UpdatePassword(ctx context.Context, actor *model.Actor, slug, password string) error {
	args := m.Called(ctx, actor, slug, password)
	return args.Error(0)
}

func (m *MockStudentService) UpdateDisplayPhoto(ctx context.Context, actor *model.Actor, slug string, up service.FileUpload) (*service.FileView, error) {
	args := m.Called(ctx, actor, slug, up)
	var view *service.FileView
	if v := args.Get(0); v != nil {
		view = v.(*service.FileView)
	}
	return view, args.Error(1)
}
