package domain

import "time"

// DiscountType selects how a discount value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is a redeemable code.
type Discount struct {
	ID        string       `json:"_id"`
	Code      string       `json:"code"`
	Type      DiscountType `json:"type"`
	Value     float64      `json:"value"`
	StartDate *time.Time   `json:"start_date,omitempty"`
	EndDate   *time.Time   `json:"end_date,omitempty"`
}
