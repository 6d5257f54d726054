package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
// It uses parameterized queries and contains no business logic.
type FilePostgres struct {
	db repository.DBTX
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db repository.DBTX) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// WithTx returns a copy of the repository bound to the transaction.
func (r *FilePostgres) WithTx(tx repository.DBTX) repository.FileRepository {
	return &FilePostgres{db: tx}
}

const fileColumns = `id, administrator_id, student_id, student_payment_id, student_registrar_file_id,
	disk, type, description, path, extension, course, year, term, slug,
	created_at, updated_at, deleted_at`

func scanFile(row interface{ Scan(...any) error }) (*model.StudentFile, error) {
	var f model.StudentFile
	if err := row.Scan(
		&f.ID,
		&f.AdministratorID,
		&f.StudentID,
		&f.PaymentID,
		&f.RegistrarFileID,
		&f.Disk,
		&f.Type,
		&f.Description,
		&f.Path,
		&f.Extension,
		&f.Course,
		&f.Year,
		&f.Term,
		&f.Slug,
		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

// Insert stores a new active file row and returns the stored record.
func (r *FilePostgres) Insert(ctx context.Context, f *model.StudentFile) (*model.StudentFile, error) {
	const q = `
		INSERT INTO student_files (administrator_id, student_id, student_payment_id,
			student_registrar_file_id, disk, type, description, path, extension,
			course, year, term, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + fileColumns
	row := r.db.QueryRowContext(ctx, q,
		f.AdministratorID,
		f.StudentID,
		f.PaymentID,
		f.RegistrarFileID,
		f.Disk,
		f.Type,
		f.Description,
		f.Path,
		f.Extension,
		f.Course,
		f.Year,
		f.Term,
		f.Slug,
	)
	return scanFile(row)
}

// FindByID fetches a file by surrogate key.
func (r *FilePostgres) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentFile, error) {
	q := `SELECT ` + fileColumns + ` FROM student_files WHERE id = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanFile(r.db.QueryRowContext(ctx, q, id))
}

// FindBySlug fetches a file by its external slug.
func (r *FilePostgres) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentFile, error) {
	q := `SELECT ` + fileColumns + ` FROM student_files WHERE slug = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanFile(r.db.QueryRowContext(ctx, q, slug))
}

// ActiveByStudentAndType returns the active rows for a (student, type) slot.
func (r *FilePostgres) ActiveByStudentAndType(ctx context.Context, studentID int64, t model.FileType) ([]model.StudentFile, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM student_files
		WHERE student_id = $1 AND type = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`
	return r.queryFiles(ctx, q, studentID, t)
}

// ActiveByPaymentID returns the active children of a payment header.
func (r *FilePostgres) ActiveByPaymentID(ctx context.Context, paymentID int64) ([]model.StudentFile, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM student_files
		WHERE student_payment_id = $1 AND deleted_at IS NULL
		ORDER BY id ASC
	`
	return r.queryFiles(ctx, q, paymentID)
}

// ActiveByRegistrarFileID returns the active children of a registrar-file header.
func (r *FilePostgres) ActiveByRegistrarFileID(ctx context.Context, registrarFileID int64) ([]model.StudentFile, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM student_files
		WHERE student_registrar_file_id = $1 AND deleted_at IS NULL
		ORDER BY id ASC
	`
	return r.queryFiles(ctx, q, registrarFileID)
}

// SoftDelete sets deleted_at on an active row and reports rows affected.
func (r *FilePostgres) SoftDelete(ctx context.Context, id int64) (int64, error) {
	const q = `UPDATE student_files SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *FilePostgres) queryFiles(ctx context.Context, q string, args ...any) ([]model.StudentFile, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StudentFile, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
