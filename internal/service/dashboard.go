package service

import (
	"context"
	"fmt"
	"time"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// recentActivityLimit caps the activity feed on the dashboard.
const recentActivityLimit = 10

// ActivityEntry is one line of the dashboard activity feed.
type ActivityEntry struct {
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardService serves the super-admin overview: account counts, the
// current year's payment summary, and the latest audit entries. Zero counts
// and an empty feed are valid dashboard states, not errors.
type DashboardService interface {
	UserCounts(ctx context.Context, actor *model.Actor) (*model.UserTally, error)
	PaymentCounts(ctx context.Context, actor *model.Actor) (*model.PaymentTally, error)
	RecentActivities(ctx context.Context, actor *model.Actor) ([]ActivityEntry, error)
}

type dashboardService struct {
	stats repository.DashboardRepository
}

func NewDashboardService(stats repository.DashboardRepository) DashboardService {
	return &dashboardService{stats: stats}
}

func (s *dashboardService) UserCounts(ctx context.Context, actor *model.Actor) (*model.UserTally, error) {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return nil, err
	}
	t, err := s.stats.UserTally(ctx)
	if err != nil {
		return nil, fmt.Errorf("tally users: %w", err)
	}
	return t, nil
}

func (s *dashboardService) PaymentCounts(ctx context.Context, actor *model.Actor) (*model.PaymentTally, error) {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return nil, err
	}
	t, err := s.stats.PaymentTally(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("tally payments: %w", err)
	}
	return t, nil
}

func (s *dashboardService) RecentActivities(ctx context.Context, actor *model.Actor) ([]ActivityEntry, error) {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return nil, err
	}
	logs, err := s.stats.RecentUserLogs(ctx, time.Now().Year(), recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("recent user logs: %w", err)
	}
	entries := make([]ActivityEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, ActivityEntry{Description: l.Description, CreatedAt: l.CreatedAt})
	}
	return entries, nil
}
