package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// ProfileHandler serves the profile screen of any signed-in account.
type ProfileHandler struct {
	profiles *service.ProfileService
	notices  notice.Builder
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles *service.ProfileService, notices notice.Builder) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, notices: notices}
}

// Show GET /profile.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	account, err := h.profiles.Get(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewProfile, account, nil)
}

// Update PATCH /profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	account, msg, err := h.profiles.Update(c.UserContext(), session.FromContext(c), client.AccountInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return render(c, ViewProfile, account, h.notices.Success(msg))
}

// ChangePassword POST /profile/password.
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	msg, err := h.profiles.ChangePassword(c.UserContext(), session.FromContext(c), client.ChangePasswordRequest{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}
	return render(c, ViewProfile, nil, h.notices.Success(msg))
}
