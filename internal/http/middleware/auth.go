package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"recordsapi/internal/model"
	"recordsapi/internal/service"
)

// ActorLocalKey is the key used to store the authenticated actor in Fiber's
// context locals.
const ActorLocalKey = "actor"

// Authenticate resolves the bearer token on the request and stores the actor
// in context locals. Requests without a valid token are rejected with 401.
func Authenticate(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized)
		}

		actor, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized)
		}

		c.Locals(ActorLocalKey, actor)
		return c.Next()
	}
}

// ActorFromCtx returns the actor stored by Authenticate, or nil.
func ActorFromCtx(c *fiber.Ctx) *model.Actor {
	if v, ok := c.Locals(ActorLocalKey).(*model.Actor); ok {
		return v
	}
	return nil
}

// BearerFromCtx returns the plain bearer token on the request, or "".
func BearerFromCtx(c *fiber.Ctx) string {
	return bearerToken(c.Get(fiber.HeaderAuthorization))
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
