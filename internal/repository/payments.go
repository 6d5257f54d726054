package repository

import (
	"context"

	"recordsapi/internal/model"
)

// PaymentRepository defines data access for payment headers.
type PaymentRepository interface {
	// Insert stores a new payment header and returns it with generated fields.
	Insert(ctx context.Context, p *model.StudentPayment) (*model.StudentPayment, error)

	// FindBySlug returns a payment header by its external slug.
	FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentPayment, error)

	// FindByID returns a payment header by surrogate key.
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentPayment, error)

	// ListByStudent returns the student's active payment headers, newest first.
	ListByStudent(ctx context.Context, studentID int64) ([]model.StudentPayment, error)

	// UpdateStatus writes the verification status.
	UpdateStatus(ctx context.Context, id int64, status model.RecordStatus) error

	// SoftDelete sets deleted_at on the header, returning rows affected.
	SoftDelete(ctx context.Context, id int64) (int64, error)

	// WithTx returns a copy bound to the given transaction.
	WithTx(tx DBTX) PaymentRepository
}

// RegistrarFileRepository defines data access for registrar-file headers.
type RegistrarFileRepository interface {
	Insert(ctx context.Context, r *model.StudentRegistrarFile) (*model.StudentRegistrarFile, error)
	FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentRegistrarFile, error)
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentRegistrarFile, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.StudentRegistrarFile, error)

	// UpdateAttrs writes the simple attribute fields (status, description).
	UpdateAttrs(ctx context.Context, id int64, status model.RecordStatus, description string) error

	SoftDelete(ctx context.Context, id int64) (int64, error)
	WithTx(tx DBTX) RegistrarFileRepository
}
