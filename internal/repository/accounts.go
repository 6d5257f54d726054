package repository

import (
	"context"

	"recordsapi/internal/model"
)

// StudentRepository defines data access for student accounts.
type StudentRepository interface {
	Insert(ctx context.Context, s *model.Student) (*model.Student, error)
	FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.Student, error)
	FindByID(ctx context.Context, id int64) (*model.Student, error)
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)

	UpdateEnrollmentStatus(ctx context.Context, id int64, status model.EnrollmentStatus) error
	UpdateName(ctx context.Context, id int64, first, middle, last string) error
	UpdateCourse(ctx context.Context, id int64, course string) error
	UpdateYearTerm(ctx context.Context, id int64, year, term string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// AdministratorRepository defines data access for administrator accounts.
type AdministratorRepository interface {
	Insert(ctx context.Context, a *model.Administrator) (*model.Administrator, error)
	FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.Administrator, error)
	FindByID(ctx context.Context, id int64) (*model.Administrator, error)
	FindByEmail(ctx context.Context, email string) (*model.Administrator, error)

	// List returns administrators excluding super admins.
	List(ctx context.Context) ([]model.Administrator, error)

	UpdateName(ctx context.Context, id int64, first, middle, last string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// SetDeleted deactivates or reactivates the account by setting or
	// clearing its soft-delete timestamp.
	SetDeleted(ctx context.Context, id int64, deleted bool) error
}

// TokenRepository persists opaque bearer tokens as SHA-256 hashes.
type TokenRepository interface {
	// Store inserts a token hash row for the actor.
	Store(ctx context.Context, kind model.ActorKind, actorID int64, tokenHash string) error

	// Find returns the non-revoked token row matching the hash.
	Find(ctx context.Context, tokenHash string) (*model.Token, error)

	// Revoke marks the token as revoked.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllFor revokes every active token of the actor.
	RevokeAllFor(ctx context.Context, kind model.ActorKind, actorID int64) error
}

// UserLogRepository is the append-only audit sink. Entries are never mutated
// or deleted.
type UserLogRepository interface {
	Append(ctx context.Context, l *model.UserLog) error
	List(ctx context.Context) ([]model.UserLog, error)
}
