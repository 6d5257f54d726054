package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/service"
)

// DashboardUserCounts returns the account overview. Super-admin only.
func DashboardUserCounts(dash service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tally, err := dash.UserCounts(c.UserContext(), actorFromCtx(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(tally)
	}
}

// DashboardPaymentCounts returns the current year's payment summary.
// Super-admin only.
func DashboardPaymentCounts(dash service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tally, err := dash.PaymentCounts(c.UserContext(), actorFromCtx(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(tally)
	}
}

// DashboardRecentActivities returns the latest audit entries of the current
// year. Super-admin only.
func DashboardRecentActivities(dash service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := dash.RecentActivities(c.UserContext(), actorFromCtx(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": entries})
	}
}
