package mocks

import (
	"context"

	"recordsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) LoginAdministrator(ctx context.Context, email, password string) (string, *model.Administrator, error) {
	args := m.Called(ctx, email, password)
	var admin *model.Administrator
	if v := args.Get(1); v != nil {
		admin = v.(*model.Administrator)
	}
	return args.String(0), admin, args.Error(2)
}

func (m *MockAuthService) LoginStudent(ctx context.Context, email, password string) (string, *model.Student, error) {
	args := m.Called(ctx, email, password)
	var student *model.Student
	if v := args.Get(1); v != nil {
		student = v.(*model.Student)
	}
	return args.String(0), student, args.Error(2)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*model.Actor, error) {
	args := m.Called(ctx, token)
	var actor *model.Actor
	if v := args.Get(0); v != nil {
		actor = v.(*model.Actor)
	}
	return actor, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
