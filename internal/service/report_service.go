package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// ReportWindow is an inclusive date range.
type ReportWindow struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// OrdersReport is the sales report by order.
type OrdersReport struct {
	Window ReportWindow            `json:"window"`
	Rows   []domain.OrderReportRow `json:"rows"`
	Totals domain.ReportTotals     `json:"totals"`
}

// ProductsReport is the sales report by product.
type ProductsReport struct {
	Window ReportWindow              `json:"window"`
	Rows   []domain.ProductReportRow `json:"rows"`
	Totals domain.ReportTotals       `json:"totals"`
}

// ReportService builds the sales reports.
type ReportService struct {
	api *client.Client
	now func() time.Time
}

// NewReportService builds the service.
func NewReportService(api *client.Client) *ReportService {
	return &ReportService{api: api, now: time.Now}
}

// DefaultWindow is the calendar month containing now.
func DefaultWindow(now time.Time) ReportWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return ReportWindow{Start: start, End: start.AddDate(0, 1, -1)}
}

// ParseWindow reads startDate/endDate, defaulting each to the current month.
func (s *ReportService) ParseWindow(start, end string) (ReportWindow, error) {
	w := DefaultWindow(s.now())
	if start != "" {
		t, err := time.ParseInLocation(client.ReportDateLayout, start, w.Start.Location())
		if err != nil {
			return ReportWindow{}, apperrors.NewValidationError("invalid startDate", map[string]any{"startDate": start})
		}
		w.Start = t
	}
	if end != "" {
		t, err := time.ParseInLocation(client.ReportDateLayout, end, w.End.Location())
		if err != nil {
			return ReportWindow{}, apperrors.NewValidationError("invalid endDate", map[string]any{"endDate": end})
		}
		w.End = t
	}
	if w.End.Before(w.Start) {
		return ReportWindow{}, apperrors.NewValidationError("endDate must not precede startDate", nil)
	}
	return w, nil
}

// Orders builds the order report for w.
func (s *ReportService) Orders(ctx context.Context, sess domain.Session, w ReportWindow) (*OrdersReport, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	rows, err := api.OrdersReport(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	report := &OrdersReport{Window: w, Rows: make([]domain.OrderReportRow, 0, len(rows))}
	for _, r := range rows {
		r.ProfitMargin = ProfitMargin(r.Profit, r.TotalPrice)
		report.Totals.Quantity += r.TotalQuantity
		report.Totals.ImportPrice += r.TotalImportPrice
		report.Totals.Retail += r.TotalPrice
		report.Totals.Payment += r.PaymentPrice
		report.Totals.Profit += r.Profit
		report.Rows = append(report.Rows, r)
	}
	report.Totals.ProfitMargin = ProfitMargin(report.Totals.Profit, report.Totals.Retail)
	return report, nil
}

// Products builds the product report for w. Totals cover the whole window;
// query only narrows the rows, matching product names.
func (s *ReportService) Products(ctx context.Context, sess domain.Session, w ReportWindow, query string) (*ProductsReport, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	rows, err := api.ProductsReport(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	report := &ProductsReport{Window: w, Rows: make([]domain.ProductReportRow, 0, len(rows))}
	for _, r := range rows {
		r.ProfitMargin = ProfitMargin(r.Profit, r.TotalPrice)
		report.Totals.Quantity += r.QuantitySold
		report.Totals.ImportPrice += r.TotalImportPrice
		report.Totals.Retail += r.TotalPrice
		report.Totals.Payment += r.TotalPrice
		report.Totals.Profit += r.Profit
		if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		report.Rows = append(report.Rows, r)
	}
	report.Totals.ProfitMargin = ProfitMargin(report.Totals.Profit, report.Totals.Retail)
	return report, nil
}

// ProfitMargin is profit/retail as a percentage rounded to two decimals.
func ProfitMargin(profit, retail float64) float64 {
	if retail == 0 {
		return 0
	}
	return math.Round(profit/retail*100*100) / 100
}
