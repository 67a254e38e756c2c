package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/notice"
)

// View names returned to the browser.
const (
	ViewHome            = "home"
	ViewShop            = "shop"
	ViewProduct         = "product"
	ViewCart            = "cart"
	ViewWishlist        = "wishlist"
	ViewMyOrders        = "my-orders"
	ViewOrderDetails    = "order-details"
	ViewManageOrders    = "manage-orders"
	ViewManageProducts  = "manage-products"
	ViewManageAccounts  = "manage-accounts"
	ViewManageDiscounts = "manage-discounts"
	ViewReportOrders    = "report-orders"
	ViewReportProducts  = "report-products"
	ViewProfile         = "profile"
	ViewLogin           = "login"
	ViewLoginAdmin      = "login-admin"
	ViewLogout          = "logout"
	ViewSession         = "session"
	ViewNotFound        = "not-found"
)

func render(c *fiber.Ctx, view string, data any, n *notice.Notice) error {
	return renderStatus(c, http.StatusOK, view, data, n)
}

func renderStatus(c *fiber.Ctx, status int, view string, data any, n *notice.Notice) error {
	body := fiber.Map{"view": view, "data": data}
	if n != nil {
		body["notice"] = n
	}
	return c.Status(status).JSON(body)
}

func sessionResponse(s domain.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Role:       string(s.Role),
		IsLoggedIn: s.LoggedIn(),
		SubjectID:  s.SubjectID,
	}
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// NotFound renders the not-found view for unmatched paths.
func NotFound(c *fiber.Ctx) error {
	return renderStatus(c, http.StatusNotFound, ViewNotFound, fiber.Map{"path": c.Path()}, nil)
}
