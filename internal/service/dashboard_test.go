package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	repoMocks "recordsapi/internal/repository/mocks"
)

func TestDashboardService_UserCounts(t *testing.T) {
	t.Run("super admin reads the tally", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		stats.On("UserTally", mock.Anything).Return(&model.UserTally{
			Administrators: 3,
			Students: model.StudentTally{
				Total:    12,
				ByStatus: map[string]int64{"enrolled": 10, "dropped": 2},
				ByYear:   map[string]int64{"3": 12},
				ByCourse: map[string]int64{"BSIT": 12},
			},
		}, nil).Once()

		tally, err := svc.UserCounts(context.Background(), adminActor(model.RoleSuperAdmin))

		assert.NoError(t, err)
		assert.Equal(t, int64(3), tally.Administrators)
		assert.Equal(t, int64(12), tally.Students.Total)
		assert.Equal(t, int64(10), tally.Students.ByStatus["enrolled"])
		stats.AssertExpectations(t)
	})

	t.Run("plain admin rejected", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		_, err := svc.UserCounts(context.Background(), adminActor(model.RoleAdmin))

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		stats.AssertNotCalled(t, "UserTally")
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		stats.On("UserTally", mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := svc.UserCounts(context.Background(), adminActor(model.RoleSuperAdmin))

		assert.Error(t, err)
	})
}

func TestDashboardService_PaymentCounts(t *testing.T) {
	t.Run("summarizes the current year", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		stats.On("PaymentTally", mock.Anything, time.Now().Year()).Return(&model.PaymentTally{
			Total:      5,
			Full:       2,
			AmountFull: 9000.50,
			ByMode:     map[string]int64{"cash": 3, "gcash": 2},
			Pending:    1,
			Verified:   4,
		}, nil).Once()

		tally, err := svc.PaymentCounts(context.Background(), adminActor(model.RoleSuperAdmin))

		assert.NoError(t, err)
		assert.Equal(t, int64(5), tally.Total)
		assert.Equal(t, int64(3), tally.ByMode["cash"])
		stats.AssertExpectations(t)
	})

	t.Run("plain admin rejected", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		_, err := svc.PaymentCounts(context.Background(), adminActor(model.RoleAdmin))

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		stats.AssertNotCalled(t, "PaymentTally")
	})
}

func TestDashboardService_RecentActivities(t *testing.T) {
	t.Run("maps the newest entries", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		now := time.Now()
		stats.On("RecentUserLogs", mock.Anything, time.Now().Year(), 10).Return([]model.UserLog{
			{ID: 2, Description: "verified payment", CreatedAt: now},
			{ID: 1, Description: "created student", CreatedAt: now.Add(-time.Hour)},
		}, nil).Once()

		entries, err := svc.RecentActivities(context.Background(), adminActor(model.RoleSuperAdmin))

		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "verified payment", entries[0].Description)
		stats.AssertExpectations(t)
	})

	t.Run("empty feed is not an error", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		stats.On("RecentUserLogs", mock.Anything, time.Now().Year(), 10).Return([]model.UserLog{}, nil).Once()

		entries, err := svc.RecentActivities(context.Background(), adminActor(model.RoleSuperAdmin))

		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("student rejected", func(t *testing.T) {
		stats := new(repoMocks.MockDashboardRepository)
		svc := NewDashboardService(stats)

		_, err := svc.RecentActivities(context.Background(), studentActor(model.StatusEnrolled))

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		stats.AssertNotCalled(t, "RecentUserLogs")
	})
}
