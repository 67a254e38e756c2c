package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// ReportsHandler serves both sales reports.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Orders GET /report-orders?startDate=&endDate=.
func (h *ReportsHandler) Orders(c *fiber.Ctx) error {
	window, err := h.reports.ParseWindow(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return err
	}
	report, err := h.reports.Orders(c.UserContext(), session.FromContext(c), window)
	if err != nil {
		return err
	}
	return render(c, ViewReportOrders, report, nil)
}

// Products GET /report-products?startDate=&endDate=&q=.
func (h *ReportsHandler) Products(c *fiber.Ctx) error {
	window, err := h.reports.ParseWindow(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return err
	}
	report, err := h.reports.Products(c.UserContext(), session.FromContext(c), window, c.Query("q"))
	if err != nil {
		return err
	}
	return render(c, ViewReportProducts, report, nil)
}
