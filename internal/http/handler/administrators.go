package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/model"
	"recordsapi/internal/service"
)

type createAdministratorRequest struct {
	FirstName  string     `json:"first_name"`
	MiddleName string     `json:"middle_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Role       model.Role `json:"role"`
}

// CreateAdministrator registers a new administrator account. Super-admin only.
func CreateAdministrator(admins service.AdministratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createAdministratorRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		view, err := admins.Create(c.UserContext(), actorFromCtx(c), service.CreateAdministratorInput{
			FirstName:  req.FirstName,
			MiddleName: req.MiddleName,
			LastName:   req.LastName,
			Email:      req.Email,
			Password:   req.Password,
			Role:       req.Role,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// ListAdministrators returns every regular administrator account.
func ListAdministrators(admins service.AdministratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := admins.List(c.UserContext(), actorFromCtx(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": views})
	}
}

// UpdateAdministratorName updates an administrator's name.
func UpdateAdministratorName(admins service.AdministratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			FirstName  string `json:"first_name"`
			MiddleName string `json:"middle_name"`
			LastName   string `json:"last_name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := admins.UpdateName(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.FirstName, req.MiddleName, req.LastName); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateAdministratorEmail updates an administrator's email address.
func UpdateAdministratorEmail(admins service.AdministratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := admins.UpdateEmail(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.Email); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleAdministratorStatus deactivates an active administrator account or
// reactivates a deactivated one. Super-admin only.
func ToggleAdministratorStatus(admins service.AdministratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		active, err := admins.ToggleStatus(c.UserContext(), actorFromCtx(c), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"active": active})
	}
}

// UpdateAdministratorPassword rotates an administrator's password.
func UpdateAdministratorPassword(admins service.AdministratorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := admins.UpdatePassword(c.UserContext(), actorFromCtx(c), c.Params("slug"), req.Password); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
