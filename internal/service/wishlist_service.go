package service

import (
	"context"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// WishlistService manages saved products.
type WishlistService struct {
	api *client.Client
}

// NewWishlistService builds the service.
func NewWishlistService(api *client.Client) *WishlistService {
	return &WishlistService{api: api}
}

// List returns the customer's wishlist.
func (s *WishlistService) List(ctx context.Context, sess domain.Session) ([]domain.WishlistItem, error) {
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return nil, err
	}
	items, err := api.Wishlist(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return items, nil
}

// Add saves a product.
func (s *WishlistService) Add(ctx context.Context, sess domain.Session, productID string) (string, error) {
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.AddToWishlist(ctx, customerID, productID)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Added to wishlist"), nil
}

// Remove drops a product from the wishlist.
func (s *WishlistService) Remove(ctx context.Context, sess domain.Session, productID string) (string, error) {
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.RemoveFromWishlist(ctx, customerID, productID)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Removed from wishlist"), nil
}

// AddToCart puts a saved product in the cart. The wishlist entry stays.
func (s *WishlistService) AddToCart(ctx context.Context, sess domain.Session, productID string) (string, error) {
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
