package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// DashboardPostgres is a PostgreSQL implementation of
// repository.DashboardRepository. Counting happens in SQL; only the payment
// summary walks rows, because it folds four breakdowns out of one scan.
type DashboardPostgres struct {
	db repository.DBTX
}

// NewDashboardPostgres creates a new DashboardPostgres repository.
func NewDashboardPostgres(db repository.DBTX) *DashboardPostgres {
	return &DashboardPostgres{db: db}
}

var _ repository.DashboardRepository = (*DashboardPostgres)(nil)

// UserTally counts active accounts grouped the way the dashboard charts them.
func (r *DashboardPostgres) UserTally(ctx context.Context) (*model.UserTally, error) {
	t := &model.UserTally{
		Students: model.StudentTally{
			ByStatus: map[string]int64{},
			ByYear:   map[string]int64{},
			ByCourse: map[string]int64{},
		},
	}

	const adminQ = `SELECT COUNT(*) FROM administrators WHERE deleted_at IS NULL`
	if err := r.db.QueryRowContext(ctx, adminQ).Scan(&t.Administrators); err != nil {
		return nil, err
	}

	groups := []struct {
		q    string
		into map[string]int64
	}{
		{`SELECT enrollment_status, COUNT(*) FROM students WHERE deleted_at IS NULL GROUP BY enrollment_status`, t.Students.ByStatus},
		{`SELECT year, COUNT(*) FROM students WHERE deleted_at IS NULL GROUP BY year`, t.Students.ByYear},
		{`SELECT course, COUNT(*) FROM students WHERE deleted_at IS NULL GROUP BY course`, t.Students.ByCourse},
	}
	for _, g := range groups {
		if err := r.scanGroupCounts(ctx, g.q, g.into); err != nil {
			return nil, err
		}
	}
	for _, n := range t.Students.ByStatus {
		t.Students.Total += n
	}
	return t, nil
}

func (r *DashboardPostgres) scanGroupCounts(ctx context.Context, q string, into map[string]int64) error {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		into[key] = n
	}
	return rows.Err()
}

// PaymentTally summarizes the payment records created in the given year.
func (r *DashboardPostgres) PaymentTally(ctx context.Context, year int) (*model.PaymentTally, error) {
	const q = `
		SELECT is_full, is_installment, mode_of_payment, status, amount_paid, COALESCE(balance, 0)
		FROM student_payments
		WHERE deleted_at IS NULL AND date_part('year', created_at) = $1
	`
	rows, err := r.db.QueryContext(ctx, q, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := &model.PaymentTally{ByMode: map[string]int64{}}
	for rows.Next() {
		var (
			isFull, isInstallment bool
			mode                  string
			status                model.RecordStatus
			amountPaid, balance   float64
		)
		if err := rows.Scan(&isFull, &isInstallment, &mode, &status, &amountPaid, &balance); err != nil {
			return nil, err
		}

		t.Total++
		t.ByMode[mode]++
		switch status {
		case model.RecordPending:
			t.Pending++
		case model.RecordVerified:
			t.Verified++
		}
		if isFull {
			t.Full++
			t.AmountFull += amountPaid + balance
		}
		if isInstallment {
			t.Installment++
			t.AmountInstallment += amountPaid + balance
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// RecentUserLogs returns the newest audit entries of the given year.
func (r *DashboardPostgres) RecentUserLogs(ctx context.Context, year, limit int) ([]model.UserLog, error) {
	const q = `
		SELECT id, administrator_id, student_id, description, page, created_at
		FROM user_logs
		WHERE date_part('year', created_at) = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, year, limit)
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
