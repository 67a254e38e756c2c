package service

import (
	"context"
	"strings"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// CartView is the cart with its running totals.
type CartView struct {
	Items         []domain.CartItem `json:"items"`
	TotalPrice    float64           `json:"totalPrice"`
	TotalQuantity int               `json:"totalQuantity"`
}

// CheckoutInput places an order from the cart.
type CheckoutInput struct {
	Method       domain.PaymentMethod
	DiscountCode string
}

// CartService manages the customer's cart.
type CartService struct {
	api *client.Client
}

// NewCartService builds the service.
func NewCartService(api *client.Client) *CartService {
	return &CartService{api: api}
}

// View returns the cart with line totals filled in.
func (s *CartService) View(ctx context.Context, sess domain.Session) (*CartView, error) {
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return nil, err
	}
	items, err := api.Cart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return summarizeCart(items), nil
}

// Increment adds one unit of a product.
func (s *CartService) Increment(ctx context.Context, sess domain.Session, productID string) (string, error) {
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.AddToCart(ctx, customerID, productID)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Added to cart"), nil
}

// Decrement removes one unit of a cart line.
func (s *CartService) Decrement(ctx context.Context, sess domain.Session, cartItemID string) (string, error) {
	api, _, err := customer(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.RemoveFromCart(ctx, cartItemID)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Removed from cart"), nil
}

// ApplyDiscount quotes a code against the current cart total.
func (s *CartService) ApplyDiscount(ctx context.Context, sess domain.Session, code string) (*domain.DiscountQuote, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("discount code required", nil)
	}
	view, err := s.View(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.api.WithToken(sess.Token).ApplyDiscount(ctx, code, view.TotalPrice)
}

// Checkout turns the cart into an order.
func (s *CartService) Checkout(ctx context.Context, sess domain.Session, in CheckoutInput) (*domain.Order, string, error) {
	if in.Method == "" {
		in.Method = domain.PaymentCash
	}
	if in.Method != domain.PaymentCash && in.Method != domain.PaymentOnline {
		return nil, "", apperrors.NewValidationError("invalid payment method", map[string]any{"method": in.Method})
	}
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	items, err := api.Cart(ctx, customerID)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return nil, "", apperrors.NewValidationError("cart is empty", nil)
	}
	order, msg, err := api.PlaceOrder(ctx, customerID, client.PlaceOrderRequest{
		Method:       in.Method,
		IsPaid:       in.Method == domain.PaymentOnline,
		DiscountCode: strings.TrimSpace(in.DiscountCode),
	})
	if err != nil {
		return nil, "", err
	}
	return order, fallback(msg, "Order placed successfully"), nil
}

func summarizeCart(items []domain.CartItem) *CartView {
	view := &CartView{Items: make([]domain.CartItem, 0, len(items))}
	for _, item := range items {
		if item.TotalPrice == 0 {
			item.TotalPrice = item.Price * float64(item.Quantity)
		}
		view.TotalPrice += item.TotalPrice
		view.TotalQuantity += item.Quantity
		view.Items = append(view.Items, item)
	}
	return view
}
