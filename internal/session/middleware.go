package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

const sessionKey = "web_session"

// Middleware loads the caller's session for every request.
// A browser without a cookie gets a guest id so all its tabs share one identity.
func Middleware(manager *Manager, opts CookieOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := ReadCookie(c, opts)
		if id == "" {
			id = NewID()
			SetCookie(c, opts, id, time.Time{})
		}
		c.Locals(sessionKey, manager.Current(c.UserContext(), id))
		return c.Next()
	}
}

// FromContext returns the session loaded for this request, or guest defaults.
func FromContext(c *fiber.Ctx) domain.Session {
	if s, ok := c.Locals(sessionKey).(domain.Session); ok {
		return s
	}
	return domain.GuestSession("")
}

// Attach replaces the session seen by the rest of this request.
func Attach(c *fiber.Ctx, s domain.Session) {
	c.Locals(sessionKey, s)
}
