package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// RegistrarFilePostgres is a PostgreSQL implementation of
// repository.RegistrarFileRepository.
type RegistrarFilePostgres struct {
	db repository.DBTX
}

// NewRegistrarFilePostgres creates a new RegistrarFilePostgres repository.
func NewRegistrarFilePostgres(db repository.DBTX) *RegistrarFilePostgres {
	return &RegistrarFilePostgres{db: db}
}

var _ repository.RegistrarFileRepository = (*RegistrarFilePostgres)(nil)

// WithTx returns a copy of the repository bound to the transaction.
func (r *RegistrarFilePostgres) WithTx(tx repository.DBTX) repository.RegistrarFileRepository {
	return &RegistrarFilePostgres{db: tx}
}

const registrarFileColumns = `id, administrator_id, student_id, description, course, year, term,
	status, slug, created_at, updated_at, deleted_at`

func scanRegistrarFile(row interface{ Scan(...any) error }) (*model.StudentRegistrarFile, error) {
	var rf model.StudentRegistrarFile
	if err := row.Scan(
		&rf.ID,
		&rf.AdministratorID,
		&rf.StudentID,
		&rf.Description,
		&rf.Course,
		&rf.Year,
		&rf.Term,
		&rf.Status,
		&rf.Slug,
		&rf.CreatedAt,
		&rf.UpdatedAt,
		&rf.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &rf, nil
}

// Insert stores a new registrar-file header and returns the stored record.
func (r *RegistrarFilePostgres) Insert(ctx context.Context, rf *model.StudentRegistrarFile) (*model.StudentRegistrarFile, error) {
	const q = `
		INSERT INTO student_registrar_files (administrator_id, student_id, description,
			course, year, term, status, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + registrarFileColumns
	row := r.db.QueryRowContext(ctx, q,
		rf.AdministratorID,
		rf.StudentID,
		rf.Description,
		rf.Course,
		rf.Year,
		rf.Term,
		rf.Status,
		rf.Slug,
	)
	return scanRegistrarFile(row)
}

// FindBySlug fetches a registrar-file header by its external slug.
func (r *RegistrarFilePostgres) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentRegistrarFile, error) {
	q := `SELECT ` + registrarFileColumns + ` FROM student_registrar_files WHERE slug = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanRegistrarFile(r.db.QueryRowContext(ctx, q, slug))
}

// FindByID fetches a registrar-file header by surrogate key.
func (r *RegistrarFilePostgres) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentRegistrarFile, error) {
	q := `SELECT ` + registrarFileColumns + ` FROM student_registrar_files WHERE id = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanRegistrarFile(r.db.QueryRowContext(ctx, q, id))
}

// ListByStudent returns the student's active registrar-file headers, newest first.
func (r *RegistrarFilePostgres) ListByStudent(ctx context.Context, studentID int64) ([]model.StudentRegistrarFile, error) {
	const q = `
		SELECT ` + registrarFileColumns + `
		FROM student_registrar_files
		WHERE student_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StudentRegistrarFile, 0)
	for rows.Next() {
		rf, err := scanRegistrarFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateAttrs writes the simple attribute fields.
func (r *RegistrarFilePostgres) UpdateAttrs(ctx context.Context, id int64, status model.RecordStatus, description string) error {
	const q = `
		UPDATE student_registrar_files
		SET status = $1, description = $2, updated_at = now()
		WHERE id = $3 AND deleted_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, q, status, description, id)
	return err
}

// SoftDelete sets deleted_at on an active header and reports rows affected.
func (r *RegistrarFilePostgres) SoftDelete(ctx context.Context, id int64) (int64, error) {
	const q = `UPDATE student_registrar_files SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
