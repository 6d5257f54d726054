package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/model"
	"recordsapi/internal/service"
)

// CreateRegistrarFile creates a registrar file aggregate for a student
// (multipart fields + files under "files").
func CreateRegistrarFile(registrar service.RegistrarFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		attrs := service.RegistrarFileAttrs{
			Description: c.FormValue("description"),
			Course:      c.FormValue("course"),
			Year:        c.FormValue("year"),
			Term:        c.FormValue("term"),
		}
		uploads, cleanup, err := formUploads(c, "files")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded files")
		}
		defer cleanup()

		view, err := registrar.Create(c.UserContext(), actorFromCtx(c), c.Params("slug"), attrs, uploads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// ListRegistrarFiles returns a student's registrar file aggregates, or 204
// when none.
func ListRegistrarFiles(registrar service.RegistrarFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := registrar.ListFor(c.UserContext(), actorFromCtx(c), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": views})
	}
}

// UpdateRegistrarFile writes the status and description and optionally
// replaces the attached files.
func UpdateRegistrarFile(registrar service.RegistrarFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := model.RecordStatus(c.FormValue("status"))
		description := c.FormValue("description")
		uploads, cleanup, err := formUploads(c, "files")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded files")
		}
		defer cleanup()

		view, err := registrar.Update(c.UserContext(), actorFromCtx(c), c.Params("slug"), status, description, uploads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}

// DestroyRegistrarFile destroys a registrar file aggregate. Super-admin only.
func DestroyRegistrarFile(registrar service.RegistrarFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := registrar.Destroy(c.UserContext(), actorFromCtx(c), c.Params("slug")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
