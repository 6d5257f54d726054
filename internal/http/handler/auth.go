package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/http/middleware"
	"recordsapi/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdministratorLogin exchanges staff credentials for a bearer token.
func AdministratorLogin(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		token, admin, err := auth.LoginAdministrator(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"token": token,
			"user":  admin,
		})
	}
}

// StudentLogin exchanges student credentials for a bearer token.
func StudentLogin(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		token, student, err := auth.LoginStudent(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"token": token,
			"user":  student,
		})
	}
}

// Logout revokes the presented bearer token.
func Logout(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Logout(c.UserContext(), middleware.BearerFromCtx(c)); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
