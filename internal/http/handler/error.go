package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// clientMessage strips the sentinel suffix so the annotation the service
// attached ("invalid mode_of_payment", "student does not exist or might be
// deleted") reaches the client without the internal wrapping.
func clientMessage(err, sentinel error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

// serviceError translates service-layer sentinels into the standardized
// response. Not-found and validation annotations are client-safe by
// construction and pass through; everything else stays server-side.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrEmpty):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, apperrors.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", clientMessage(err, apperrors.ErrNotFound))
	case errors.Is(err, apperrors.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	case errors.Is(err, apperrors.ErrValidation):
		return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", clientMessage(err, apperrors.ErrValidation))
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "unauthorized")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "payload too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
