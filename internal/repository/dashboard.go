package repository

import (
	"context"

	"recordsapi/internal/model"
)

// DashboardRepository aggregates counts for the administrative overview.
// All tallies ignore soft-deleted rows.
type DashboardRepository interface {
	// UserTally counts active administrator and student accounts, the
	// latter broken down by enrollment status, year level, and course.
	UserTally(ctx context.Context) (*model.UserTally, error)

	// PaymentTally summarizes the payment records created in the given
	// calendar year.
	PaymentTally(ctx context.Context, year int) (*model.PaymentTally, error)

	// RecentUserLogs returns the newest audit entries of the given calendar
	// year, at most limit of them.
	RecentUserLogs(ctx context.Context, year, limit int) ([]model.UserLog, error)
}
