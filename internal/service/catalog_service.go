package service

import (
	"context"
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// AllBrands is the brand filter value that disables brand filtering.
const AllBrands = "All"

// Price sort orders understood by the shop.
const (
	SortPriceAsc  = "asc"
	SortPriceDesc = "desc"
)

// ShopFilter narrows the shop grid.
type ShopFilter struct {
	Query string
	Brand string
	Sort  string
}

// ShopView is the shop grid plus the brand picker.
type ShopView struct {
	Products []domain.Product `json:"products"`
	Brands   []string         `json:"brands"`
}

// ProductView is the product sheet with its reviews.
type ProductView struct {
	Product       domain.Product  `json:"product"`
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
}

// CatalogService serves the public product screens.
type CatalogService struct {
	api      *client.Client
	featured int
}

// NewCatalogService builds the service. featured caps the home page grid.
func NewCatalogService(api *client.Client, featured int) *CatalogService {
	if featured <= 0 {
		featured = 8
	}
	return &CatalogService{api: api, featured: featured}
}

// Featured returns the first products of the display list.
func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.api.DisplayProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > s.featured {
		products = products[:s.featured]
	}
	return products, nil
}

// Shop lists display products with every filter applied together.
func (s *CatalogService) Shop(ctx context.Context, f ShopFilter) (*ShopView, error) {
	products, err := s.api.DisplayProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ShopView{
		Products: FilterProducts(products, f),
		Brands:   BrandOptions(products),
	}, nil
}

// Product returns a product sheet with reviews and the average rating.
func (s *CatalogService) Product(ctx context.Context, id string) (*ProductView, error) {
	product, err := s.api.ProductDetails(ctx, id)
	if client.IsStatus(err, http.StatusNotFound) {
		return nil, apperrors.NewNotFound("product", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	reviews, err := s.api.Reviews(ctx, id)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return &ProductView{
		Product:       *product,
		Reviews:       reviews,
		AverageRating: AverageRating(reviews),
		TotalReviews:  len(reviews),
	}, nil
}

// FilterProducts applies name search, brand and price sort without touching the input.
func FilterProducts(products []domain.Product, f ShopFilter) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	brand := strings.TrimSpace(f.Brand)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if brand != "" && brand != AllBrands && p.Brand != brand {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RetailPrice < out[j].RetailPrice })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RetailPrice > out[j].RetailPrice })
	}
	return out
}

// BrandOptions returns "All" followed by each brand in first-seen order.
func BrandOptions(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := []string{AllBrands}
	for _, p := range products {
		if _, ok := seen[p.Brand]; ok || p.Brand == "" {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	return brands
}

// AverageRating is the mean rating rounded to one decimal, 0 without reviews.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return math.Round(float64(total)/float64(len(reviews))*10) / 10
}
