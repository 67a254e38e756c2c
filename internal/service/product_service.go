package service

import (
	"context"
	"strings"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// ProductService is the back-office product management.
type ProductService struct {
	api *client.Client
}

// NewProductService builds the service.
func NewProductService(api *client.Client) *ProductService {
	return &ProductService{api: api}
}

// List returns every product including hidden ones.
func (s *ProductService) List(ctx context.Context, sess domain.Session) ([]domain.Product, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	products, err := api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Details returns one product with its reviews.
func (s *ProductService) Details(ctx context.Context, sess domain.Session, id string) (*ProductView, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	return NewCatalogService(api, 0).Product(ctx, id)
}

// Brands lists the brand names offered by the product form.
func (s *ProductService) Brands(ctx context.Context, sess domain.Session) ([]string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	brands, err := api.Brands(ctx)
	if err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []string{}
	}
	return brands, nil
}

// Add creates a product. The image is required.
func (s *ProductService) Add(ctx context.Context, sess domain.Session, in client.ProductInput, image *client.Image) (*domain.Product, string, error) {
	if err := validateProduct(in, true); err != nil {
		return nil, "", err
	}
	if image == nil || image.Data == nil {
		return nil, "", apperrors.NewValidationError("invalid product", map[string]any{"image": "required"})
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	p, msg, err := api.AddProduct(ctx, in, image)
	if err != nil {
		return nil, "", err
	}
	return p, fallback(msg, "Product added"), nil
}

// Update edits a product.
func (s *ProductService) Update(ctx context.Context, sess domain.Session, id string, in client.ProductInput) (*domain.Product, string, error) {
	if err := validateProduct(in, false); err != nil {
		return nil, "", err
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	p, msg, err := api.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, "", err
	}
	return p, fallback(msg, "Product updated"), nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, sess domain.Session, id string) (string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.DeleteProduct(ctx, id)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Product deleted"), nil
}

func validateProduct(in client.ProductInput, create bool) error {
	details := map[string]any{}
	if create && strings.TrimSpace(in.Name) == "" {
		details["name"] = "required"
	}
	if create && strings.TrimSpace(in.Brand) == "" {
		details["brand"] = "required"
	}
	if in.ImportPrice < 0 {
		details["import_price"] = "must not be negative"
	}
	if in.RetailPrice < 0 || (create && in.RetailPrice == 0) {
		details["retail_price"] = "must be positive"
	}
	if in.Amount < 0 {
		details["amount"] = "must not be negative"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product", details)
	}
	return nil
}
