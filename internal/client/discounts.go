package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// DiscountInput creates or edits a discount.
type DiscountInput struct {
	Code      string              `json:"code"`
	Type      domain.DiscountType `json:"type"`
	Value     float64             `json:"value"`
	StartDate *time.Time          `json:"start_date"`
	EndDate   *time.Time          `json:"end_date"`
}

// ListDiscounts lists every discount.
func (c *Client) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	var discounts []domain.Discount
	if _, err := c.call(ctx, http.MethodGet, "/discounts", nil, &discounts); err != nil {
		return nil, fmt.Errorf("client.ListDiscounts: %w", err)
	}
	return discounts, nil
}

// GetDiscount fetches one discount.
func (c *Client) GetDiscount(ctx context.Context, id string) (*domain.Discount, error) {
	var d domain.Discount
	if _, err := c.call(ctx, http.MethodGet, "/discounts/"+url.PathEscape(id), nil, &d); err != nil {
		return nil, fmt.Errorf("client.GetDiscount: %w", err)
	}
	return &d, nil
}

// CreateDiscount adds a discount.
func (c *Client) CreateDiscount(ctx context.Context, in DiscountInput) (*domain.Discount, string, error) {
	var d domain.Discount
	msg, err := c.call(ctx, http.MethodPost, "/discounts", in, &d)
	if err != nil {
		return nil, "", fmt.Errorf("client.CreateDiscount: %w", err)
	}
	return &d, msg, nil
}

// UpdateDiscount edits a discount.
func (c *Client) UpdateDiscount(ctx context.Context, id string, in DiscountInput) (*domain.Discount, string, error) {
	var d domain.Discount
	msg, err := c.call(ctx, http.MethodPatch, "/discounts/"+url.PathEscape(id), in, &d)
	if err != nil {
		return nil, "", fmt.Errorf("client.UpdateDiscount: %w", err)
	}
	return &d, msg, nil
}

// DeleteDiscount removes a discount.
func (c *Client) DeleteDiscount(ctx context.Context, id string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/discounts/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.DeleteDiscount: %w", err)
	}
	return msg, nil
}
