package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/service"
)

// AppendUserLog records a page-level activity entry for the acting user.
func AppendUserLog(logs service.UserLogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Description string `json:"description"`
			Page        string `json:"page"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := logs.Append(c.UserContext(), actorFromCtx(c), req.Description, req.Page); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusCreated)
	}
}

// ListUserLogs returns the full activity trail. Super-admin only.
func ListUserLogs(logs service.UserLogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := logs.List(c.UserContext(), actorFromCtx(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": entries})
	}
}
