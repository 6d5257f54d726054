package postgres

import (
	"context"
	"fmt"

	"recordsapi/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
type RecordPostgres struct {
	db repository.DBTX
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db repository.DBTX) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// WithTx returns a copy of the repository bound to the transaction.
func (r *RecordPostgres) WithTx(tx repository.DBTX) repository.RecordRepository {
	return &RecordPostgres{db: tx}
}

// classTables maps record classes to their tables. Table names come from this
// fixed map, never from input, so string concatenation into the query is safe.
var classTables = map[repository.RecordClass]string{
	repository.ClassAdministrator: "administrators",
	repository.ClassStudent:       "students",
	repository.ClassFile:          "student_files",
	repository.ClassPayment:       "student_payments",
	repository.ClassRegistrarFile: "student_registrar_files",
}

// SlugInUse reports whether any row of the class holds the slug. Soft-deleted
// rows count: slugs are durable external identifiers and may never be reused.
func (r *RecordPostgres) SlugInUse(ctx context.Context, class repository.RecordClass, slug string) (bool, error) {
	table, ok := classTables[class]
	if !ok {
		return false, fmt.Errorf("unknown record class %q", class)
	}

	q := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE slug = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
