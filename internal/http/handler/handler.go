package handler

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/http/middleware"
	"recordsapi/internal/model"
	"recordsapi/internal/service"
)

// Package handler contains the Fiber HTTP handlers. Handlers parse the
// request, call exactly one service operation, and translate the outcome;
// business rules live in the service layer.

func actorFromCtx(c *fiber.Ctx) *model.Actor {
	return middleware.ActorFromCtx(c)
}

// uploadFromHeader opens one multipart file as a service upload. The returned
// close func must run after the service call.
func uploadFromHeader(fh *multipart.FileHeader) (service.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileUpload{}, nil, err
	}
	return service.FileUpload{
		Reader:      f,
		Size:        fh.Size,
		Extension:   strings.TrimPrefix(filepath.Ext(fh.Filename), "."),
		ContentType: fh.Header.Get("Content-Type"),
	}, func() { _ = f.Close() }, nil
}

// formUploads opens every multipart file under the field name. A request
// without a multipart body yields no uploads. On success the cleanup func
// closes all of them; it is safe to call exactly once.
func formUploads(c *fiber.Ctx, field string) ([]service.FileUpload, func(), error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, func() {}, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	headers := form.File[field]
	uploads := make([]service.FileUpload, 0, len(headers))
	closers := make([]func(), 0, len(headers))
	cleanup := func() {
		for _, close := range closers {
			close()
		}
	}

	for _, fh := range headers {
		up, close, err := uploadFromHeader(fh)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		uploads = append(uploads, up)
		closers = append(closers, close)
	}
	return uploads, cleanup, nil
}
