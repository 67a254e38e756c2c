package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// ProductInput creates or edits a product.
type ProductInput struct {
	Name        string              `json:"name,omitempty"`
	Brand       string              `json:"brand,omitempty"`
	ImportPrice float64             `json:"import_price,omitempty"`
	RetailPrice float64             `json:"retail_price,omitempty"`
	Amount      int                 `json:"amount,omitempty"`
	Details     domain.ProductSpecs `json:"detailsProduct"`
}

// Image is an uploaded product picture.
type Image struct {
	Filename string
	Data     io.Reader
}

// DisplayProducts lists products visible in the shop.
func (c *Client) DisplayProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if _, err := c.call(ctx, http.MethodGet, "/products/display", nil, &products); err != nil {
		return nil, fmt.Errorf("client.DisplayProducts: %w", err)
	}
	return products, nil
}

// ListProducts lists every product including stock and import prices.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if _, err := c.call(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("client.ListProducts: %w", err)
	}
	return products, nil
}

// ProductDetails fetches a product sheet.
func (c *Client) ProductDetails(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if _, err := c.call(ctx, http.MethodGet, "/products/details/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, fmt.Errorf("client.ProductDetails: %w", err)
	}
	return &product, nil
}

// Brands lists the brand names known to the API.
func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	if _, err := c.call(ctx, http.MethodGet, "/products/brands", nil, &brands); err != nil {
		return nil, fmt.Errorf("client.Brands: %w", err)
	}
	return brands, nil
}

// AddProduct uploads a new product as multipart form data.
func (c *Client) AddProduct(ctx context.Context, in ProductInput, image *Image) (*domain.Product, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"name", in.Name},
		{"brand", in.Brand},
		{"import_price", strconv.FormatFloat(in.ImportPrice, 'f', -1, 64)},
		{"retail_price", strconv.FormatFloat(in.RetailPrice, 'f', -1, 64)},
		{"amount", strconv.Itoa(in.Amount)},
		{"os", in.Details.OS},
		{"ram", in.Details.RAM},
		{"storage", in.Details.Storage},
		{"battery", in.Details.Battery},
		{"screen_size", in.Details.ScreenSize},
		{"color", in.Details.Color},
		{"description", in.Details.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("client.AddProduct: %w", err)
		}
	}
	if image != nil && image.Data != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("client.AddProduct: %w", err)
		}
		if _, err := io.Copy(part, image.Data); err != nil {
			return nil, "", fmt.Errorf("client.AddProduct: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("client.AddProduct: %w", err)
	}

	raw, err := c.send(ctx, http.MethodPost, "/products/add", &buf, w.FormDataContentType())
	if err != nil {
		return nil, "", fmt.Errorf("client.AddProduct: %w", err)
	}
	var product domain.Product
	msg, err := decodeEnvelope(raw, &product)
	if err != nil {
		return nil, "", fmt.Errorf("client.AddProduct: %w", err)
	}
	return &product, msg, nil
}

// UpdateProduct edits a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, string, error) {
	var product domain.Product
	msg, err := c.call(ctx, http.MethodPatch, "/products/"+url.PathEscape(id), in, &product)
	if err != nil {
		return nil, "", fmt.Errorf("client.UpdateProduct: %w", err)
	}
	return &product, msg, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.DeleteProduct: %w", err)
	}
	return msg, nil
}
