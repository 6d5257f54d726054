package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// PaymentPostgres is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentPostgres struct {
	db repository.DBTX
}

// NewPaymentPostgres creates a new PaymentPostgres repository.
func NewPaymentPostgres(db repository.DBTX) *PaymentPostgres {
	return &PaymentPostgres{db: db}
}

var _ repository.PaymentRepository = (*PaymentPostgres)(nil)

// WithTx returns a copy of the repository bound to the transaction.
func (r *PaymentPostgres) WithTx(tx repository.DBTX) repository.PaymentRepository {
	return &PaymentPostgres{db: tx}
}

const paymentColumns = `id, administrator_id, student_id, is_full, is_installment, mode_of_payment,
	date_paid, amount_paid, balance, course, year, term, status, slug,
	created_at, updated_at, deleted_at`

func scanPayment(row interface{ Scan(...any) error }) (*model.StudentPayment, error) {
	var p model.StudentPayment
	if err := row.Scan(
		&p.ID,
		&p.AdministratorID,
		&p.StudentID,
		&p.IsFull,
		&p.IsInstallment,
		&p.ModeOfPayment,
		&p.DatePaid,
		&p.AmountPaid,
		&p.Balance,
		&p.Course,
		&p.Year,
		&p.Term,
		&p.Status,
		&p.Slug,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert stores a new payment header and returns the stored record.
func (r *PaymentPostgres) Insert(ctx context.Context, p *model.StudentPayment) (*model.StudentPayment, error) {
	const q = `
		INSERT INTO student_payments (administrator_id, student_id, is_full, is_installment,
			mode_of_payment, date_paid, amount_paid, balance, course, year, term, status, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + paymentColumns
	row := r.db.QueryRowContext(ctx, q,
		p.AdministratorID,
		p.StudentID,
		p.IsFull,
		p.IsInstallment,
		p.ModeOfPayment,
		p.DatePaid,
		p.AmountPaid,
		p.Balance,
		p.Course,
		p.Year,
		p.Term,
		p.Status,
		p.Slug,
	)
	return scanPayment(row)
}

// FindBySlug fetches a payment header by its external slug.
func (r *PaymentPostgres) FindBySlug(ctx context.Context, slug string, includeDeleted bool) (*model.StudentPayment, error) {
	q := `SELECT ` + paymentColumns + ` FROM student_payments WHERE slug = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanPayment(r.db.QueryRowContext(ctx, q, slug))
}

// FindByID fetches a payment header by surrogate key.
func (r *PaymentPostgres) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.StudentPayment, error) {
	q := `SELECT ` + paymentColumns + ` FROM student_payments WHERE id = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}
	return scanPayment(r.db.QueryRowContext(ctx, q, id))
}

// ListByStudent returns the student's active payment headers, newest first.
func (r *PaymentPostgres) ListByStudent(ctx context.Context, studentID int64) ([]model.StudentPayment, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM student_payments
		WHERE student_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StudentPayment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus writes the verification status.
func (r *PaymentPostgres) UpdateStatus(ctx context.Context, id int64, status model.RecordStatus) error {
	const q = `UPDATE student_payments SET status = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

// SoftDelete sets deleted_at on an active header and reports rows affected.
func (r *PaymentPostgres) SoftDelete(ctx context.Context, id int64) (int64, error) {
	const q = `UPDATE student_payments SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
