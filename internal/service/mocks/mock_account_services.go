package mocks

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAdministratorService struct {
	mock.Mock
}

func (m *MockAdministratorService) Create(ctx context.Context, actor *model.Actor, in service.CreateAdministratorInput) (*service.AdministratorView, error) {
	args := m.Called(ctx, actor, in)
	var view *service.AdministratorView
	if v := args.Get(0); v != nil {
		view = v.(*service.AdministratorView)
	}
	return view, args.Error(1)
}

func (m *MockAdministratorService) List(ctx context.Context, actor *model.Actor) ([]service.AdministratorView, error) {
	args := m.Called(ctx, actor)
	var views []service.AdministratorView
	if v := args.Get(0); v != nil {
		views = v.([]service.AdministratorView)
	}
	return views, args.Error(1)
}

func (m *MockAdministratorService) UpdateName(ctx context.Context, actor *model.Actor, slug, first, middle, last string) error {
	args := m.Called(ctx, actor, slug, first, middle, last)
	return args.Error(0)
}

func (m *MockAdministratorService) UpdateEmail(ctx context.Context, actor *model.Actor, slug, email string) error {
	args := m.Called(ctx, actor, slug, email)
	return args.Error(0)
}

func (m *MockAdministratorService) UpdatePassword(ctx context.Context, actor *model.Actor, slug, password string) error {
	args := m.Called(ctx, actor, slug, password)
	return args.Error(0)
}

func (m *MockAdministratorService) ToggleStatus(ctx context.Context, actor *model.Actor, slug string) (bool, error) {
	args := m.Called(ctx, actor, slug)
	return args.Bool(0), args.Error(1)
}

type MockUserLogService struct {
	mock.Mock
}

func (m *MockUserLogService) Append(ctx context.Context, actor *model.Actor, description, page string) error {
	args := m.Called(ctx, actor, description, page)
	return args.Error(0)
}

func (m *MockUserLogService) List(ctx context.Context, actor *model.Actor) ([]model.UserLog, error) {
	args := m.Called(ctx, actor)
	var entries []model.UserLog
	if v := args.Get(0); v != nil {
		entries = v.([]model.UserLog)
	}
	return entries, args.Error(1)
}
