package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// ReportDateLayout is the date format the reports endpoints accept.
const ReportDateLayout = "2006-01-02"

// OrdersReport lists orders placed within [start, end].
func (c *Client) OrdersReport(ctx context.Context, start, end time.Time) ([]domain.OrderReportRow, error) {
	var rows []domain.OrderReportRow
	if _, err := c.call(ctx, http.MethodGet, "/reports/orders?"+reportQuery(start, end), nil, &rows); err != nil {
		return nil, fmt.Errorf("client.OrdersReport: %w", err)
	}
	return rows, nil
}

// ProductsReport lists product sales within [start, end].
func (c *Client) ProductsReport(ctx context.Context, start, end time.Time) ([]domain.ProductReportRow, error) {
	var rows []domain.ProductReportRow
	if _, err := c.call(ctx, http.MethodGet, "/reports/products?"+reportQuery(start, end), nil, &rows); err != nil {
		return nil, fmt.Errorf("client.ProductsReport: %w", err)
	}
	return rows, nil
}

func reportQuery(start, end time.Time) string {
	params := url.Values{}
	params.Set("startDate", start.Format(ReportDateLayout))
	params.Set("endDate", end.Format(ReportDateLayout))
	return params.Encode()
}
