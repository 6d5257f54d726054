package mocks

import (
	"context"

	"recordsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) UserTally(ctx context.Context) (*model.UserTally, error) {
	args := m.Called(ctx)
	var out *model.UserTally
	if v := args.Get(0); v != nil {
		out = v.(*model.UserTally)
	}
	return out, args.Error(1)
}

func (m *MockDashboardRepository) PaymentTally(ctx context.Context, year int) (*model.PaymentTally, error) {
	args := m.Called(ctx, year)
	var out *model.PaymentTally
	if v := args.Get(0); v != nil {
		out = v.(*model.PaymentTally)
	}
	return out, args.Error(1)
}

func (m *MockDashboardRepository) RecentUserLogs(ctx context.Context, year, limit int) ([]model.UserLog, error) {
	args := m.Called(ctx, year, limit)
	var out []model.UserLog
	if v := args.Get(0); v != nil {
		out = v.([]model.UserLog)
	}
	return out, args.Error(1)
}
