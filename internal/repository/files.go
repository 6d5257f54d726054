package repository

import (
	"context"

	"recordsapi/internal/model"
)

// FileRepository defines data access for student file versions.
//
// Reads exclude soft-deleted rows unless includeDeleted is set; soft deletion
// is an explicit operation, never a hard DELETE.
type FileRepository interface {
	// Insert stores a new active file row and returns it with generated fields.
	Insert(ctx context.Context, f *model.StudentFile) (*model.StudentFile, error)

	// FindByID returns a file by surrogate key.
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentFile, error)

	// FindBySlug returns a file by its external slug.
	FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentFile, error)

	// ActiveByStudentAndType returns the active rows for a (student, type)
	// slot, newest first. Singleton slots have at most one.
	ActiveByStudentAndType(ctx context.Context, studentID int64, t model.FileType) ([]model.StudentFile, error)

	// ActiveByPaymentID returns the active children of a payment header.
	ActiveByPaymentID(ctx context.Context, paymentID int64) ([]model.StudentFile, error)

	// ActiveByRegistrarFileID returns the active children of a registrar-file header.
	ActiveByRegistrarFileID(ctx context.Context, registrarFileID int64) ([]model.StudentFile, error)

	// SoftDelete sets deleted_at on the row. Returns the rows affected so the
	// caller can verify the delete took effect.
	SoftDelete(ctx context.Context, id int64) (int64, error)

	// WithTx returns a copy bound to the given transaction.
	WithTx(tx DBTX) FileRepository
}
