package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// AdministratorPostgres is a PostgreSQL implementation of
// repository.AdministratorRepository.
type AdministratorPostgres struct {
	db repository.DBTX
}

// NewAdministratorPostgres creates a new AdministratorPostgres repository.
func NewAdministratorPostgres(db repository.DBTX) *AdministratorPostgres {
	return &AdministratorPostgres{db: db}
}

var _ repository.AdministratorRepository = (*AdministratorPostgres)(nil)

const adminColumns = `id, first_name, middle_name, last_name, email, password, role, slug,
	created_at, updated_at, deleted_at`

func scanAdmin(row interface{ Scan(...any) error }) (*model.Administrator, error) {
	var a model.Administrator
	if err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.MiddleName,
		&a.LastName,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Slug,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert stores a new administrator account and returns the stored record.
func (r *AdministratorPostgres) Insert(ctx context.Context, a *model.Administrator) (*model.Administrator, error) {
	const q = `
		INSERT INTO administrators (first_name, middle_name, last_name, email, password, role, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + adminColumns
	row := r.db.QueryRowContext(ctx, q,
		a.FirstName,
		a.MiddleName,
		a.LastName,
		a.Email,
		a.PasswordHash,
		a.Role,
		a.Slug,
	)
	return scanAdmin(row)
}

// FindBySlug fetches an administrator by external slug.
func (r *AdministratorPostgres) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.Administrator, error) {
	q := `SELECT ` + adminColumns + ` FROM administrators WHERE slug = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanAdmin(r.db.QueryRowContext(ctx, q, slug))
}

// FindByID fetches an active administrator by surrogate key.
func (r *AdministratorPostgres) FindByID(ctx context.Context, id int64) (*model.Administrator, error) {
	const q = `SELECT ` + adminColumns + ` FROM administrators WHERE id = $1 AND deleted_at IS NULL`
	return scanAdmin(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches an active administrator by email.
func (r *AdministratorPostgres) FindByEmail(ctx context.Context, email string) (*model.Administrator, error) {
	const q = `SELECT ` + adminColumns + ` FROM administrators WHERE email = $1 AND deleted_at IS NULL`
	return scanAdmin(r.db.QueryRowContext(ctx, q, email))
}

// List returns active administrators, excluding super admins.
func (r *AdministratorPostgres) List(ctx context.Context) ([]model.Administrator, error) {
	const q = `
		SELECT ` + adminColumns + `
		FROM administrators
		WHERE role <> $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, model.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Administrator, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateName writes the name fields.
func (r *AdministratorPostgres) UpdateName(ctx context.Context, id int64, first, middle, last string) error {
	const q = `UPDATE administrators SET first_name = $1, middle_name = $2, last_name = $3, updated_at = now() WHERE id = $4 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, first, middle, last, id)
	return err
}

// UpdateEmail writes the email field.
func (r *AdministratorPostgres) UpdateEmail(ctx context.Context, id int64, email string) error {
	const q = `UPDATE administrators SET email = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, email, id)
	return err
}

// UpdatePassword writes the bcrypt password hash.
func (r *AdministratorPostgres) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const q = `UPDATE administrators SET password = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, passwordHash, id)
	return err
}

// SetDeleted sets or clears the soft-delete timestamp. A deactivated account
// no longer resolves through the non-deleted lookups, so its bearer tokens
// stop authenticating.
func (r *AdministratorPostgres) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	const q = `UPDATE administrators SET deleted_at = CASE WHEN $1 THEN now() ELSE NULL END, updated_at = now() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, q, deleted, id)
	return err
}
