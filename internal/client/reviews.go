package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// ReviewInput is a new rating.
type ReviewInput struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// Reviews lists the reviews of a product.
func (c *Client) Reviews(ctx context.Context, productID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if _, err := c.call(ctx, http.MethodGet, "/reviews/"+url.PathEscape(productID), nil, &reviews); err != nil {
		return nil, fmt.Errorf("client.Reviews: %w", err)
	}
	return reviews, nil
}

// AddReview posts a customer review.
func (c *Client) AddReview(ctx context.Context, customerID, productID string, in ReviewInput) (*domain.Review, string, error) {
	var review domain.Review
	msg, err := c.call(ctx, http.MethodPost, "/reviews/add/"+url.PathEscape(customerID)+"/"+url.PathEscape(productID), in, &review)
	if err != nil {
		return nil, "", fmt.Errorf("client.AddReview: %w", err)
	}
	return &review, msg, nil
}

// DeleteOwnReview removes a review written by the customer.
func (c *Client) DeleteOwnReview(ctx context.Context, customerID, reviewID string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/reviews/delete/"+url.PathEscape(customerID)+"/"+url.PathEscape(reviewID), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.DeleteOwnReview: %w", err)
	}
	return msg, nil
}

// DeleteReviewAsManager removes any review.
func (c *Client) DeleteReviewAsManager(ctx context.Context, reviewID string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/reviews/delete-by-manager/"+url.PathEscape(reviewID), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.DeleteReviewAsManager: %w", err)
	}
	return msg, nil
}
