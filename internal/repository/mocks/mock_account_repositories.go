package mocks

import (
	"context"

	"recordsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Insert(ctx context.Context, s *model.Student) (*model.Student, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(context.Context, *model.Student) *model.Student); ok {
		return fn(ctx, s), args.Error(1)
	}
	var out *model.Student
	if v := args.Get(0); v != nil {
		out = v.(*model.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentRepository) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.Student, error) {
	args := m.Called(ctx, slug, includeDeleted)
	var out *model.Student
	if v := args.Get(0); v != nil {
		out = v.(*model.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id int64) (*model.Student, error) {
	args := m.Called(ctx, id)
	var out *model.Student
	if v := args.Get(0); v != nil {
		out = v.(*model.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	args := m.Called(ctx, email)
	var out *model.Student
	if v := args.Get(0); v != nil {
		out = v.(*model.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	var out []model.Student
	if v := args.Get(0); v != nil {
		out = v.([]model.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentRepository) UpdateEnrollmentStatus(ctx context.Context, id int64, status model.EnrollmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdateName(ctx context.Context, id int64, first, middle, last string) error {
	args := m.Called(ctx, id, first, middle, last)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdateCourse(ctx context.Context, id int64, course string) error {
	args := m.Called(ctx, id, course)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdateYearTerm(ctx context.Context, id int64, year, term string) error {
	args := m.Called(ctx, id, year, term)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MockAdministratorRepository struct {
	mock.Mock
}

func (m *MockAdministratorRepository) Insert(ctx context.Context, a *model.Administrator) (*model.Administrator, error) {
	args := m.Called(ctx, a)
	if fn, ok := args.Get(0).(func(context.Context, *model.Administrator) *model.Administrator); ok {
		return fn(ctx, a), args.Error(1)
	}
	var out *model.Administrator
	if v := args.Get(0); v != nil {
		out = v.(*model.Administrator)
	}
	return out, args.Error(1)
}

func (m *MockAdministratorRepository) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.Administrator, error) {
	args := m.Called(ctx, slug, includeDeleted)
	var out *model.Administrator
	if v := args.Get(0); v != nil {
		out = v.(*model.Administrator)
	}
	return out, args.Error(1)
}

func (m *MockAdministratorRepository) FindByID(ctx context.Context, id int64) (*model.Administrator, error) {
	args := m.Called(ctx, id)
	var out *model.Administrator
	if v := args.Get(0); v != nil {
		out = v.(*model.Administrator)
	}
	return out, args.Error(1)
}

func (m *MockAdministratorRepository) FindByEmail(ctx context.Context, email string) (*model.Administrator, error) {
	args := m.Called(ctx, email)
	var out *model.Administrator
	if v := args.Get(0); v != nil {
		out = v.(*model.Administrator)
	}
	return out, args.Error(1)
}

func (m *MockAdministratorRepository) List(ctx context.Context) ([]model.Administrator, error) {
	args := m.Called(ctx)
	var out []model.Administrator
	if v := args.Get(0); v != nil {
		out = v.([]model.Administrator)
	}
	return out, args.Error(1)
}

func (m *MockAdministratorRepository) UpdateName(ctx context.Context, id int64, first, middle, last string) error {
	args := m.Called(ctx, id, first, middle, last)
	return args.Error(0)
}

func (m *MockAdministratorRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockAdministratorRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockAdministratorRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	args := m.Called(ctx, id, deleted)
	return args.Error(0)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Store(ctx context.Context, kind model.ActorKind, actorID int64, tokenHash string) error {
	args := m.Called(ctx, kind, actorID, tokenHash)
	return args.Error(0)
}

func (m *MockTokenRepository) Find(ctx context.Context, tokenHash string) (*model.Token, error) {
	args := m.Called(ctx, tokenHash)
	var out *model.Token
	if v := args.Get(0); v != nil {
		out = v.(*model.Token)
	}
	return out, args.Error(1)
}

func (m *MockTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenRepository) RevokeAllFor(ctx context.Context, kind model.ActorKind, actorID int64) error {
	args := m.Called(ctx, kind, actorID)
	return args.Error(0)
}

type MockUserLogRepository struct {
	mock.Mock
}

func (m *MockUserLogRepository) Append(ctx context.Context, l *model.UserLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockUserLogRepository) List(ctx context.Context) ([]model.UserLog, error) {
	args := m.Called(ctx)
	var out []model.UserLog
	if v := args.Get(0); v != nil {
		out = v.([]model.UserLog)
	}
	return out, args.Error(1)
}
