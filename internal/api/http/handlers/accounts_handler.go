package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// AccountsHandler serves the manage-accounts screen.
type AccountsHandler struct {
	accounts *service.AccountService
	notices  notice.Builder
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService, notices notice.Builder) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, notices: notices}
}

// List GET /manage-accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	view, err := h.accounts.List(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewManageAccounts, view, nil)
}

// CreateManager POST /manage-accounts/managers.
func (h *AccountsHandler) CreateManager(c *fiber.Ctx) error {
	var req dto.AccountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	account, msg, err := h.accounts.CreateManager(c.UserContext(), session.FromContext(c), accountInput(req))
	if err != nil {
		return err
	}
	return renderStatus(c, fiber.StatusCreated, ViewManageAccounts, account, h.notices.Success(msg))
}

// UpdateCustomer PATCH /manage-accounts/customers/:id.
func (h *AccountsHandler) UpdateCustomer(c *fiber.Ctx) error {
	return h.update(c, domain.SubjectTypeCustomer)
}

// UpdateManager PATCH /manage-accounts/managers/:id.
func (h *AccountsHandler) UpdateManager(c *fiber.Ctx) error {
	return h.update(c, domain.SubjectTypeManager)
}

// DeleteCustomer DELETE /manage-accounts/customers/:id.
func (h *AccountsHandler) DeleteCustomer(c *fiber.Ctx) error {
	return h.delete(c, domain.SubjectTypeCustomer)
}

// DeleteManager DELETE /manage-accounts/managers/:id.
func (h *AccountsHandler) DeleteManager(c *fiber.Ctx) error {
	return h.delete(c, domain.SubjectTypeManager)
}

func (h *AccountsHandler) update(c *fiber.Ctx, kind domain.SubjectType) error {
	var req dto.AccountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	account, msg, err := h.accounts.Update(c.UserContext(), session.FromContext(c), kind, c.Params("id"), accountInput(req))
	if err != nil {
		return err
	}
	return render(c, ViewManageAccounts, account, h.notices.Success(msg))
}

func (h *AccountsHandler) delete(c *fiber.Ctx, kind domain.SubjectType) error {
	msg, err := h.accounts.Delete(c.UserContext(), session.FromContext(c), kind, c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewManageAccounts, nil, h.notices.Success(msg))
}

func accountInput(req dto.AccountRequest) client.AccountInput {
	return client.AccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	}
}
