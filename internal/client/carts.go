package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// Cart lists a customer's cart lines.
func (c *Client) Cart(ctx context.Context, customerID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if _, err := c.call(ctx, http.MethodGet, "/carts/"+url.PathEscape(customerID), nil, &items); err != nil {
		return nil, fmt.Errorf("client.Cart: %w", err)
	}
	return items, nil
}

// AddToCart adds one unit of a product.
func (c *Client) AddToCart(ctx context.Context, customerID, productID string) (string, error) {
	msg, err := c.call(ctx, http.MethodPost, "/carts/add/"+url.PathEscape(customerID)+"/"+url.PathEscape(productID), struct{}{}, nil)
	if err != nil {
		return "", fmt.Errorf("client.AddToCart: %w", err)
	}
	return msg, nil
}

// RemoveFromCart removes one unit of a cart line.
func (c *Client) RemoveFromCart(ctx context.Context, cartItemID string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/carts/remove/"+url.PathEscape(cartItemID), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.RemoveFromCart: %w", err)
	}
	return msg, nil
}

// Wishlist lists a customer's saved products.
func (c *Client) Wishlist(ctx context.Context, customerID string) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if _, err := c.call(ctx, http.MethodGet, "/wishlists/"+url.PathEscape(customerID), nil, &items); err != nil {
		return nil, fmt.Errorf("client.Wishlist: %w", err)
	}
	return items, nil
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, customerID, productID string) (string, error) {
	msg, err := c.call(ctx, http.MethodPost, "/wishlists/add/"+url.PathEscape(customerID)+"/"+url.PathEscape(productID), struct{}{}, nil)
	if err != nil {
		return "", fmt.Errorf("client.AddToWishlist: %w", err)
	}
	return msg, nil
}

// RemoveFromWishlist drops a saved product.
func (c *Client) RemoveFromWishlist(ctx context.Context, customerID, productID string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/wishlists/remove/"+url.PathEscape(customerID)+"/"+url.PathEscape(productID), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.RemoveFromWishlist: %w", err)
	}
	return msg, nil
}

// ApplyDiscount quotes a discount code against a price.
// This endpoint answers with the quote at the top level, not under data.
func (c *Client) ApplyDiscount(ctx context.Context, code string, price float64) (*domain.DiscountQuote, error) {
	body, err := json.Marshal(map[string]any{"code": code, "price": price})
	if err != nil {
		return nil, fmt.Errorf("client.ApplyDiscount: %w", err)
	}
	raw, err := c.send(ctx, http.MethodPost, "/discounts/apply", bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, fmt.Errorf("client.ApplyDiscount: %w", err)
	}
	var quote domain.DiscountQuote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, fmt.Errorf("client.ApplyDiscount: decode response: %w", err)
	}
	return &quote, nil
}
