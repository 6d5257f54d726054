package mocks

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) UserCounts(ctx context.Context, actor *model.Actor) (*model.UserTally, error) {
	args := m.Called(ctx, actor)
	var out *model.UserTally
	if v := args.Get(0); v != nil {
		out = v.(*model.UserTally)
	}
	return out, args.Error(1)
}

func (m *MockDashboardService) PaymentCounts(ctx context.Context, actor *model.Actor) (*model.PaymentTally, error) {
	args := m.Called(ctx, actor)
	var out *model.PaymentTally
	if v := args.Get(0); v != nil {
		out = v.(*model.PaymentTally)
	}
	return out, args.Error(1)
}

func (m *MockDashboardService) RecentActivities(ctx context.Context, actor *model.Actor) ([]service.ActivityEntry, error) {
	args := m.Called(ctx, actor)
	var out []service.ActivityEntry
	if v := args.Get(0); v != nil {
		out = v.([]service.ActivityEntry)
	}
	return out, args.Error(1)
}
