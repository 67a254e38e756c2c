package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// OrdersHandler serves customer and back-office order screens.
type OrdersHandler struct {
	orders  *service.OrderService
	notices notice.Builder
	loc     *time.Location
}

// NewOrdersHandler constructs handler. The date filter names a calendar day in loc; nil means UTC.
func NewOrdersHandler(orders *service.OrderService, notices notice.Builder, loc *time.Location) *OrdersHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &OrdersHandler{orders: orders, notices: notices, loc: loc}
}

// MyOrders GET /my-orders.
func (h *OrdersHandler) MyOrders(c *fiber.Ctx) error {
	orders, err := h.orders.MyOrders(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewMyOrders, fiber.Map{"orders": orders}, nil)
}

// Details GET /my-orders/:id and GET /manage-orders/:id.
func (h *OrdersHandler) Details(c *fiber.Ctx) error {
	detail, err := h.orders.Details(c.UserContext(), session.FromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewOrderDetails, detail, nil)
}

// Manage GET /manage-orders.
func (h *OrdersHandler) Manage(c *fiber.Ctx) error {
	filter, err := parseOrderFilter(c, h.loc)
	if err != nil {
		return err
	}
	page, err := h.orders.Manage(c.UserContext(), session.FromContext(c), filter)
	if err != nil {
		return err
	}
	return render(c, ViewManageOrders, page, nil)
}

// ChangeStatus PUT /manage-orders/:id.
func (h *OrdersHandler) ChangeStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	order, msg, err := h.orders.ChangeStatus(c.UserContext(), session.FromContext(c), c.Params("id"), client.OrderStatusUpdate{
		Status: domain.OrderStatus(req.Status),
		IsPaid: req.IsPaid,
	})
	if err != nil {
		return err
	}
	return render(c, ViewManageOrders, order, h.notices.Success(msg))
}

// Cancel DELETE /manage-orders/:id.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	msg, err := h.orders.Cancel(c.UserContext(), session.FromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewManageOrders, nil, h.notices.Success(msg))
}

func parseOrderFilter(c *fiber.Ctx, loc *time.Location) (service.OrderFilter, error) {
	filter := service.OrderFilter{
		Customer: c.Query("customer"),
		OrderID:  c.Query("orderId"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", service.DefaultOrdersPerPage),
	}
	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation(client.ReportDateLayout, raw, loc)
		if err != nil {
			return filter, fiber.NewError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		filter.Date = &day
	}
	return filter, nil
}
