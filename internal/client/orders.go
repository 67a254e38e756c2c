package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// PlaceOrderRequest turns the cart into an order.
type PlaceOrderRequest struct {
	Method       domain.PaymentMethod `json:"method"`
	IsPaid       bool                 `json:"isPaid"`
	DiscountCode string               `json:"discountCode,omitempty"`
}

// OrderStatusUpdate changes fulfillment state.
type OrderStatusUpdate struct {
	Status domain.OrderStatus `json:"status"`
	IsPaid bool               `json:"isPaid"`
}

// ListOrders lists every order for the back office.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := c.call(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("client.ListOrders: %w", err)
	}
	return orders, nil
}

// MyOrders lists a customer's orders.
func (c *Client) MyOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := c.call(ctx, http.MethodGet, "/orders/my-orders/"+url.PathEscape(customerID), nil, &orders); err != nil {
		return nil, fmt.Errorf("client.MyOrders: %w", err)
	}
	return orders, nil
}

// OrderDetails lists the lines of an order.
func (c *Client) OrderDetails(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	if _, err := c.call(ctx, http.MethodGet, "/orders/details/"+url.PathEscape(orderID), nil, &lines); err != nil {
		return nil, fmt.Errorf("client.OrderDetails: %w", err)
	}
	return lines, nil
}

// PlaceOrder checks out a customer's cart.
func (c *Client) PlaceOrder(ctx context.Context, customerID string, req PlaceOrderRequest) (*domain.Order, string, error) {
	var order domain.Order
	msg, err := c.call(ctx, http.MethodPost, "/orders/create/"+url.PathEscape(customerID), req, &order)
	if err != nil {
		return nil, "", fmt.Errorf("client.PlaceOrder: %w", err)
	}
	return &order, msg, nil
}

// ChangeOrderStatus updates fulfillment state.
func (c *Client) ChangeOrderStatus(ctx context.Context, orderID string, update OrderStatusUpdate) (*domain.Order, string, error) {
	var order domain.Order
	msg, err := c.call(ctx, http.MethodPut, "/orders/change-status-order/"+url.PathEscape(orderID), update, &order)
	if err != nil {
		return nil, "", fmt.Errorf("client.ChangeOrderStatus: %w", err)
	}
	return &order, msg, nil
}

// CancelOrder cancels an order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/orders/cancel/"+url.PathEscape(orderID), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.CancelOrder: %w", err)
	}
	return msg, nil
}
