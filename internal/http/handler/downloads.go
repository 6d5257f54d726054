package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/service"
)

func sendDownload(c *fiber.Ctx, dl *service.Download) error {
	defer dl.Reader.Close()

	c.Set(fiber.HeaderContentType, dl.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", dl.Filename))
	if dl.Size > 0 {
		return c.SendStream(dl.Reader, int(dl.Size))
	}
	return c.SendStream(dl.Reader)
}

// AdministratorDownload streams any active file to an administrator.
func AdministratorDownload(downloads service.DownloadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dl, err := downloads.ForAdministrator(c.UserContext(), actorFromCtx(c), c.Params("fileSlug"))
		if err != nil {
			return serviceError(c, err)
		}
		return sendDownload(c, dl)
	}
}

// StudentDownload streams a file to the student who owns it.
func StudentDownload(downloads service.DownloadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dl, err := downloads.ForStudent(c.UserContext(), actorFromCtx(c), c.Params("slug"), c.Params("fileSlug"))
		if err != nil {
			return serviceError(c, err)
		}
		return sendDownload(c, dl)
	}
}
