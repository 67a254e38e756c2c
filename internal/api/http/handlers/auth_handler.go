package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/auth"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// AuthHandler serves the login, registration and logout screens.
type AuthHandler struct {
	auth    *service.AuthService
	cookies session.CookieOptions
	notices notice.Builder
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies session.CookieOptions, notices notice.Builder) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies, notices: notices}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return render(c, ViewLogin, nil, nil)
}

// LoginAdminPage handles GET /loginAdmin.
func (h *AuthHandler) LoginAdminPage(c *fiber.Ctx) error {
	return render(c, ViewLoginAdmin, nil, nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, ViewLogin, h.auth.LoginCustomer)
}

// LoginAdmin handles POST /loginAdmin.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	return h.login(c, ViewLoginAdmin, h.auth.LoginManager)
}

func (h *AuthHandler) login(
	c *fiber.Ctx,
	view string,
	exchange func(ctx context.Context, previousID, email, password string) (domain.Session, error),
) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sess, err := exchange(c.UserContext(), session.FromContext(c).ID, req.Email, req.Password)
	if err != nil {
		return err
	}

	session.SetCookie(c, h.cookies, sess.ID, sess.ExpiresAt)
	session.Attach(c, sess)

	resp := sessionResponse(sess)
	resp.Redirect = auth.HomePath
	return render(c, view, resp, h.notices.Success("Login successfully"))
}

// Register handles POST /login/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	msg, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return renderStatus(c, fiber.StatusCreated, ViewLogin, nil, h.notices.Success(msg))
}

// ForgotPassword handles POST /login/forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	msg, err := h.auth.ForgotPassword(c.UserContext(), req.Email)
	if err != nil {
		return err
	}
	return render(c, ViewLogin, nil, h.notices.Success(msg))
}

// Logout handles GET and POST /logout. The whole record goes at once.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	current := session.FromContext(c)
	if err := h.auth.Logout(c.UserContext(), current.ID); err != nil {
		return err
	}
	session.ClearCookie(c, h.cookies)

	guest := domain.GuestSession("")
	session.Attach(c, guest)

	resp := sessionResponse(guest)
	resp.Redirect = auth.LoginPath
	var n *notice.Notice
	if current.LoggedIn() {
		n = h.notices.Info("You have been logged out")
	}
	return render(c, ViewLogout, resp, n)
}
