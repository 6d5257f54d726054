package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// UserLogPostgres is a PostgreSQL implementation of repository.UserLogRepository.
// The user_logs table is append-only; there are no update or delete queries.
type UserLogPostgres struct {
	db repository.DBTX
}

// NewUserLogPostgres creates a new UserLogPostgres repository.
func NewUserLogPostgres(db repository.DBTX) *UserLogPostgres {
	return &UserLogPostgres{db: db}
}

var _ repository.UserLogRepository = (*UserLogPostgres)(nil)

// Append inserts an audit entry.
func (r *UserLogPostgres) Append(ctx context.Context, l *model.UserLog) error {
	const q = `INSERT INTO user_logs (administrator_id, student_id, description, page) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, q, l.AdministratorID, l.StudentID, l.Description, l.Page)
	return err
}

// List returns all audit entries, newest first.
func (r *UserLogPostgres) List(ctx context.Context) ([]model.UserLog, error) {
	const q = `
		SELECT id, administrator_id, student_id, description, page, created_at
		FROM user_logs
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserLog, 0)
	for rows.Next() {
		var l model.UserLog
		if err := rows.Scan(
			&l.ID,
			&l.AdministratorID,
			&l.StudentID,
			&l.Description,
			&l.Page,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
