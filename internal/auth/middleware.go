package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/observability"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// Guard enforces rule for every request below the route, including actions.
// The decision is recomputed per request from the session loaded for it.
func Guard(rule RouteRule, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := Decide(rule, session.FromContext(c))
		if decision.Allow {
			return c.Next()
		}
		metrics.RecordDenial(rule.Path, decision.RedirectTo)
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}
}
