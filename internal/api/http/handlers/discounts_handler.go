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

// DiscountsHandler serves the manage-discounts screen.
type DiscountsHandler struct {
	discounts *service.DiscountService
	notices   notice.Builder
}

// NewDiscountsHandler constructs handler.
func NewDiscountsHandler(discounts *service.DiscountService, notices notice.Builder) *DiscountsHandler {
	return &DiscountsHandler{discounts: discounts, notices: notices}
}

// List GET /manage-discounts.
func (h *DiscountsHandler) List(c *fiber.Ctx) error {
	discounts, err := h.discounts.List(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewManageDiscounts, fiber.Map{"discounts": discounts}, nil)
}

// Get GET /manage-discounts/:id.
func (h *DiscountsHandler) Get(c *fiber.Ctx) error {
	d, err := h.discounts.Get(c.UserContext(), session.FromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewManageDiscounts, d, nil)
}

// Create POST /manage-discounts.
func (h *DiscountsHandler) Create(c *fiber.Ctx) error {
	var req dto.DiscountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	d, msg, err := h.discounts.Create(c.UserContext(), session.FromContext(c), discountInput(req))
	if err != nil {
		return err
	}
	return renderStatus(c, fiber.StatusCreated, ViewManageDiscounts, d, h.notices.Success(msg))
}

// Update PATCH /manage-discounts/:id.
func (h *DiscountsHandler) Update(c *fiber.Ctx) error {
	var req dto.DiscountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	d, msg, err := h.discounts.Update(c.UserContext(), session.FromContext(c), c.Params("id"), discountInput(req))
	if err != nil {
		return err
	}
	return render(c, ViewManageDiscounts, d, h.notices.Success(msg))
}

// Delete DELETE /manage-discounts/:id.
func (h *DiscountsHandler) Delete(c *fiber.Ctx) error {
	msg, err := h.discounts.Delete(c.UserContext(), session.FromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewManageDiscounts, nil, h.notices.Success(msg))
}

func discountInput(req dto.DiscountRequest) client.DiscountInput {
	return client.DiscountInput{
		Code:      req.Code,
		Type:      domain.DiscountType(req.Type),
		Value:     req.Value,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}
