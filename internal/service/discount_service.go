package service

import (
	"context"
	"strings"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// DiscountService is the admin's discount management.
type DiscountService struct {
	api *client.Client
}

// NewDiscountService builds the service.
func NewDiscountService(api *client.Client) *DiscountService {
	return &DiscountService{api: api}
}

// List returns every discount.
func (s *DiscountService) List(ctx context.Context, sess domain.Session) ([]domain.Discount, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	discounts, err := api.ListDiscounts(ctx)
	if err != nil {
		return nil, err
	}
	if discounts == nil {
		discounts = []domain.Discount{}
	}
	return discounts, nil
}

// Get returns one discount.
func (s *DiscountService) Get(ctx context.Context, sess domain.Session, id string) (*domain.Discount, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	return api.GetDiscount(ctx, id)
}

// Create adds a discount.
func (s *DiscountService) Create(ctx context.Context, sess domain.Session, in client.DiscountInput) (*domain.Discount, string, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := ValidateDiscount(in); err != nil {
		return nil, "", err
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	d, msg, err := api.CreateDiscount(ctx, in)
	if err != nil {
		return nil, "", err
	}
	return d, fallback(msg, "Discount created"), nil
}

// Update edits a discount.
func (s *DiscountService) Update(ctx context.Context, sess domain.Session, id string, in client.DiscountInput) (*domain.Discount, string, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := ValidateDiscount(in); err != nil {
		return nil, "", err
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	d, msg, err := api.UpdateDiscount(ctx, id, in)
	if err != nil {
		return nil, "", err
	}
	return d, fallback(msg, "Discount updated"), nil
}

// Delete removes a discount.
func (s *DiscountService) Delete(ctx context.Context, sess domain.Session, id string) (string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.DeleteDiscount(ctx, id)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Discount deleted"), nil
}

// ValidateDiscount checks the form before it reaches the API.
func ValidateDiscount(in client.DiscountInput) error {
	details := map[string]any{}
	if in.Code == "" {
		details["code"] = "required"
	}
	switch in.Type {
	case domain.DiscountPercentage:
		if in.Value <= 0 || in.Value > 100 {
			details["value"] = "percentage must be in (0, 100]"
		}
	case domain.DiscountFixed:
		if in.Value <= 0 {
			details["value"] = "must be positive"
		}
	default:
		details["type"] = "must be percentage or fixed"
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		details["end_date"] = "must not precede start_date"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid discount", details)
	}
	return nil
}
