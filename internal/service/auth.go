package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// tokenBytes is the entropy of a bearer token; 32 bytes hex-encode to a
// 64-character credential.
const tokenBytes = 32

// AuthService issues and resolves opaque bearer tokens. Only the SHA-256
// hash of a token is stored; the plain value is returned once at login.
type AuthService interface {
	// LoginAdministrator verifies the credentials and issues a token.
	LoginAdministrator(ctx context.Context, email, password string) (string, *model.Administrator, error)

	// LoginStudent verifies the credentials and issues a token. Only enrolled
	// students may log in.
	LoginStudent(ctx context.Context, email, password string) (string, *model.Student, error)

	// Authenticate resolves a bearer token to its actor.
	Authenticate(ctx context.Context, token string) (*model.Actor, error)

	// Logout revokes the presented token.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	tokens   repository.TokenRepository
	admins   repository.AdministratorRepository
	students repository.StudentRepository
	logs     repository.UserLogRepository
}

func NewAuthService(tokens repository.TokenRepository, admins repository.AdministratorRepository, students repository.StudentRepository, logs repository.UserLogRepository) AuthService {
	return &authService{tokens: tokens, admins: admins, students: students, logs: logs}
}

// hashToken produces the stored form of a plain token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newPlainToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *authService) LoginAdministrator(ctx context.Context, email, password string) (string, *model.Administrator, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if isNoRows(err) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("find administrator: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := s.issue(ctx, model.ActorAdministrator, admin.ID)
	if err != nil {
		return "", nil, err
	}
	appendAudit(ctx, s.logs, &model.Actor{Kind: model.ActorAdministrator, Role: admin.Role, Administrator: admin}, fmt.Sprintf("administrator %s logged in", admin.Slug), "auth")
	return token, admin, nil
}

func (s *authService) LoginStudent(ctx context.Context, email, password string) (string, *model.Student, error) {
	student, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		if isNoRows(err) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("find student: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.ErrUnauthorized
	}
	if !student.Enrolled() {
		return "", nil, fmt.Errorf("student is not enrolled: %w", apperrors.ErrUnauthorized)
	}

	token, err := s.issue(ctx, model.ActorStudent, student.ID)
	if err != nil {
		return "", nil, err
	}
	appendAudit(ctx, s.logs, &model.Actor{Kind: model.ActorStudent, Role: model.RoleStudent, Student: student}, fmt.Sprintf("student %s logged in", student.Slug), "auth")
	return token, student, nil
}

func (s *authService) issue(ctx context.Context, kind model.ActorKind, actorID int64) (string, error) {
	token, err := newPlainToken()
	if err != nil {
		return "", err
	}
	if err := s.tokens.Store(ctx, kind, actorID, hashToken(token)); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.Actor, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	row, err := s.tokens.Find(ctx, hashToken(token))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	switch row.ActorKind {
	case model.ActorAdministrator:
		admin, err := s.admins.FindByID(ctx, row.ActorID)
		if err != nil {
			if isNoRows(err) {
				return nil, apperrors.ErrUnauthorized
			}
			return nil, fmt.Errorf("find administrator: %w", err)
		}
		return &model.Actor{Kind: model.ActorAdministrator, Role: admin.Role, Administrator: admin}, nil
	case model.ActorStudent:
		student, err := s.students.FindByID(ctx, row.ActorID)
		if err != nil {
			if isNoRows(err) {
				return nil, apperrors.ErrUnauthorized
			}
			return nil, fmt.Errorf("find student: %w", err)
		}
		return &model.Actor{Kind: model.ActorStudent, Role: model.RoleStudent, Student: student}, nil
	}
	return nil, apperrors.ErrUnauthorized
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrUnauthorized
	}
	if err := s.tokens.Revoke(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
