package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/service"
)

// The COR and permit endpoints share one handler set over
// service.SingletonFileService; routes bind them to the concrete slot.

// GetSingletonFile returns the slot's active file, or 204 when empty.
func GetSingletonFile(svc service.SingletonFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := svc.ListFor(c.UserContext(), actorFromCtx(c), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": views})
	}
}

// StoreSingletonFile uploads the first version into an empty slot (multipart
// field: file).
func StoreSingletonFile(svc service.SingletonFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		up, close, err := uploadFromHeader(fh)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer close()

		view, err := svc.Store(c.UserContext(), actorFromCtx(c), c.Params("slug"), up, slotAttrsFromForm(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// UpdateSingletonFile supersedes the active version with a new upload.
func UpdateSingletonFile(svc service.SingletonFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		up, close, err := uploadFromHeader(fh)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer close()

		view, err := svc.Update(c.UserContext(), actorFromCtx(c), c.Params("slug"), up, slotAttrsFromForm(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}

// DestroySingletonFile retires the active version without a replacement.
func DestroySingletonFile(svc service.SingletonFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Destroy(c.UserContext(), actorFromCtx(c), c.Params("slug")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func slotAttrsFromForm(c *fiber.Ctx) service.SlotAttrs {
	return service.SlotAttrs{
		Description: c.FormValue("description"),
		Course:      c.FormValue("course"),
		Year:        c.FormValue("year"),
		Term:        c.FormValue("term"),
	}
}
