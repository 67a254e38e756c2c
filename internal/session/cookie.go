package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Name     string
	Path     string
	Secure   bool
	SameSite string
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Name == "" {
		o.Name = "phoneshop_session"
	}
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == "" {
		o.SameSite = fiber.CookieSameSiteLaxMode
	}
	return o
}

// SetCookie issues the session cookie to the client.
func SetCookie(c *fiber.Ctx, opts CookieOptions, id string, expiresAt time.Time) {
	opts = opts.normalize()
	c.Cookie(&fiber.Cookie{
		Name:     opts.Name,
		Value:    id,
		Path:     opts.Path,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(c *fiber.Ctx, opts CookieOptions) {
	opts = opts.normalize()
	c.Cookie(&fiber.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     opts.Path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ReadCookie returns the session id presented by the client, if any.
func ReadCookie(c *fiber.Ctx, opts CookieOptions) string {
	return c.Cookies(opts.normalize().Name)
}
