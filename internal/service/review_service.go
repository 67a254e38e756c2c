package service

import (
	"context"
	"strings"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// ReviewService posts and removes product reviews.
type ReviewService struct {
	api *client.Client
}

// NewReviewService builds the service.
func NewReviewService(api *client.Client) *ReviewService {
	return &ReviewService{api: api}
}

// Add posts a review as the session's customer.
func (s *ReviewService) Add(ctx context.Context, sess domain.Session, productID string, in client.ReviewInput) (*domain.Review, string, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, "", apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}
	in.Comment = strings.TrimSpace(in.Comment)
	if in.Comment == "" {
		return nil, "", apperrors.NewValidationError("comment required", nil)
	}
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	return api.AddReview(ctx, customerID, productID, in)
}

// Delete removes a review. Staff may delete any review; customers only their own.
func (s *ReviewService) Delete(ctx context.Context, sess domain.Session, reviewID string) (string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return "", err
	}
	switch sess.Role {
	case domain.RoleManager, domain.RoleAdmin:
		return api.DeleteReviewAsManager(ctx, reviewID)
	default:
		if sess.CustomerID() == "" {
			return "", apperrors.NewForbidden("customer account required")
		}
		return api.DeleteOwnReview(ctx, sess.CustomerID(), reviewID)
	}
}
