package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	repoMocks "recordsapi/internal/repository/mocks"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

type authFixture struct {
	tokens   *repoMocks.MockTokenRepository
	admins   *repoMocks.MockAdministratorRepository
	students *repoMocks.MockStudentRepository
	svc      AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		tokens:   new(repoMocks.MockTokenRepository),
		admins:   new(repoMocks.MockAdministratorRepository),
		students: new(repoMocks.MockStudentRepository),
	}
	f.svc = NewAuthService(f.tokens, f.admins, f.students, nil)
	return f
}

func TestAuthService_LoginAdministrator(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		f.admins.On("FindByEmail", ctx, "staff@example.com").Return(&model.Administrator{
			ID:           7,
			Email:        "staff@example.com",
			PasswordHash: mustHash(t, "correct horse"),
			Role:         model.RoleAdmin,
			Slug:         "admin-slug",
		}, nil)
		f.tokens.On("Store", ctx, model.ActorAdministrator, int64(7), mock.MatchedBy(func(hash string) bool {
			return len(hash) == 64
		})).Return(nil)

		token, admin, err := f.svc.LoginAdministrator(ctx, "staff@example.com", "correct horse")

		assert.NoError(t, err)
		assert.Len(t, token, 64)
		assert.Equal(t, "admin-slug", admin.Slug)
		f.tokens.AssertExpectations(t)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newAuthFixture()
		f.admins.On("FindByEmail", ctx, "staff@example.com").Return(&model.Administrator{
			PasswordHash: mustHash(t, "correct horse"),
		}, nil)

		_, _, err := f.svc.LoginAdministrator(ctx, "staff@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		f.tokens.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		f := newAuthFixture()
		f.admins.On("FindByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)

		_, _, err := f.svc.LoginAdministrator(ctx, "ghost@example.com", "whatever")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestAuthService_LoginStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolled student logs in", func(t *testing.T) {
		f := newAuthFixture()
		student := sampleStudent()
		student.PasswordHash = mustHash(t, "secret pass")
		f.students.On("FindByEmail", ctx, "ana@example.com").Return(student, nil)
		f.tokens.On("Store", ctx, model.ActorStudent, int64(42), mock.Anything).Return(nil)

		token, got, err := f.svc.LoginStudent(ctx, "ana@example.com", "secret pass")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "student-slug", got.Slug)
	})

	t.Run("dropped student cannot log in", func(t *testing.T) {
		f := newAuthFixture()
		student := sampleStudent()
		student.PasswordHash = mustHash(t, "secret pass")
		student.EnrollmentStatus = model.StatusDropped
		f.students.On("FindByEmail", ctx, "ana@example.com").Return(student, nil)

		_, _, err := f.svc.LoginStudent(ctx, "ana@example.com", "secret pass")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		f.tokens.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves an administrator token", func(t *testing.T) {
		f := newAuthFixture()
		f.tokens.On("Find", ctx, hashToken("plain-token")).Return(&model.Token{
			ActorKind: model.ActorAdministrator,
			ActorID:   7,
		}, nil)
		f.admins.On("FindByID", ctx, int64(7)).Return(&model.Administrator{
			ID:   7,
			Role: model.RoleSuperAdmin,
			Slug: "admin-slug",
		}, nil)

		actor, err := f.svc.Authenticate(ctx, "plain-token")

		assert.NoError(t, err)
		assert.Equal(t, model.ActorAdministrator, actor.Kind)
		assert.Equal(t, model.RoleSuperAdmin, actor.Role)
	})

	t.Run("resolves a student token with the student role", func(t *testing.T) {
		f := newAuthFixture()
		f.tokens.On("Find", ctx, hashToken("plain-token")).Return(&model.Token{
			ActorKind: model.ActorStudent,
			ActorID:   42,
		}, nil)
		f.students.On("FindByID", ctx, int64(42)).Return(sampleStudent(), nil)

		actor, err := f.svc.Authenticate(ctx, "plain-token")

		assert.NoError(t, err)
		assert.Equal(t, model.ActorStudent, actor.Kind)
		assert.Equal(t, model.RoleStudent, actor.Role)
	})

	t.Run("unknown token is unauthorized", func(t *testing.T) {
		f := newAuthFixture()
		f.tokens.On("Find", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := f.svc.Authenticate(ctx, "revoked-or-bogus")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("empty token is unauthorized without a lookup", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.svc.Authenticate(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		f.tokens.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the presented token", func(t *testing.T) {
		f := newAuthFixture()
		f.tokens.On("Revoke", ctx, hashToken("plain-token")).Return(nil)

		assert.NoError(t, f.svc.Logout(ctx, "plain-token"))
		f.tokens.AssertExpectations(t)
	})
}
