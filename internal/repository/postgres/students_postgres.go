package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// StudentPostgres is a PostgreSQL implementation of repository.StudentRepository.
type StudentPostgres struct {
	db repository.DBTX
}

// NewStudentPostgres creates a new StudentPostgres repository.
func NewStudentPostgres(db repository.DBTX) *StudentPostgres {
	return &StudentPostgres{db: db}
}

var _ repository.StudentRepository = (*StudentPostgres)(nil)

const studentColumns = `id, first_name, middle_name, last_name, student_number, email, password,
	course, year, term, enrollment_status, slug, created_at, updated_at, deleted_at`

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	var s model.Student
	if err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.MiddleName,
		&s.LastName,
		&s.StudentNumber,
		&s.Email,
		&s.PasswordHash,
		&s.Course,
		&s.Year,
		&s.Term,
		&s.EnrollmentStatus,
		&s.Slug,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Insert stores a new student account and returns the stored record.
func (r *StudentPostgres) Insert(ctx context.Context, s *model.Student) (*model.Student, error) {
	const q = `
		INSERT INTO students (first_name, middle_name, last_name, student_number, email,
			password, course, year, term, enrollment_status, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + studentColumns
	row := r.db.QueryRowContext(ctx, q,
		s.FirstName,
		s.MiddleName,
		s.LastName,
		s.StudentNumber,
		s.Email,
		s.PasswordHash,
		s.Course,
		s.Year,
		s.Term,
		s.EnrollmentStatus,
		s.Slug,
	)
	return scanStudent(row)
}

// FindBySlug fetches a student by external slug.
func (r *StudentPostgres) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM students WHERE slug = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanStudent(r.db.QueryRowContext(ctx, q, slug))
}

// FindByID fetches an active student by surrogate key.
func (r *StudentPostgres) FindByID(ctx context.Context, id int64) (*model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`
	return scanStudent(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches an active student by email.
func (r *StudentPostgres) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM students WHERE email = $1 AND deleted_at IS NULL`
	return scanStudent(r.db.QueryRowContext(ctx, q, email))
}

// List returns all active students, newest first.
func (r *StudentPostgres) List(ctx context.Context) ([]model.Student, error) {
	const q = `
		SELECT ` + studentColumns + `
		FROM students
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateEnrollmentStatus writes the exclusive enrollment state.
func (r *StudentPostgres) UpdateEnrollmentStatus(ctx context.Context, id int64, status model.EnrollmentStatus) error {
	const q = `UPDATE students SET enrollment_status = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

// UpdateName writes the name fields.
func (r *StudentPostgres) UpdateName(ctx context.Context, id int64, first, middle, last string) error {
	const q = `UPDATE students SET first_name = $1, middle_name = $2, last_name = $3, updated_at = now() WHERE id = $4 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, first, middle, last, id)
	return err
}

// UpdateCourse writes the course field.
func (r *StudentPostgres) UpdateCourse(ctx context.Context, id int64, course string) error {
	const q = `UPDATE students SET course = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, course, id)
	return err
}

// UpdateYearTerm writes the year and term fields.
func (r *StudentPostgres) UpdateYearTerm(ctx context.Context, id int64, year, term string) error {
	const q = `UPDATE students SET year = $1, term = $2, updated_at = now() WHERE id = $3 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, year, term, id)
	return err
}

// UpdateEmail writes the email field.
func (r *StudentPostgres) UpdateEmail(ctx context.Context, id int64, email string) error {
	const q = `UPDATE students SET email = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, email, id)
	return err
}

// UpdatePassword writes the bcrypt password hash.
func (r *StudentPostgres) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const q = `UPDATE students SET password = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, passwordHash, id)
	return err
}
