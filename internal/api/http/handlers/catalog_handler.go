package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// CatalogHandler serves the home page, the shop and the product sheet.
type CatalogHandler struct {
	catalog  *service.CatalogService
	cart     *service.CartService
	wishlist *service.WishlistService
	reviews  *service.ReviewService
	notices  notice.Builder
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(
	catalog *service.CatalogService,
	cart *service.CartService,
	wishlist *service.WishlistService,
	reviews *service.ReviewService,
	notices notice.Builder,
) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, cart: cart, wishlist: wishlist, reviews: reviews, notices: notices}
}

// Home GET /.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.catalog.Featured(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, ViewHome, fiber.Map{"products": products}, nil)
}

// Shop GET /shop.
func (h *CatalogHandler) Shop(c *fiber.Ctx) error {
	view, err := h.catalog.Shop(c.UserContext(), service.ShopFilter{
		Query: c.Query("q"),
		Brand: c.Query("brand"),
		Sort:  c.Query("sort"),
	})
	if err != nil {
		return err
	}
	return render(c, ViewShop, view, nil)
}

// Product GET /shop/products/:id.
func (h *CatalogHandler) Product(c *fiber.Ctx) error {
	view, err := h.catalog.Product(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewProduct, view, nil)
}

// AddToCart POST /shop/cart/:productId.
func (h *CatalogHandler) AddToCart(c *fiber.Ctx) error {
	msg, err := h.cart.Increment(c.UserContext(), session.FromContext(c), c.Params("productId"))
	if err != nil {
		return err
	}
	return render(c, ViewShop, nil, h.notices.Success(msg))
}

// AddToWishlist POST /shop/wishlist/:productId.
func (h *CatalogHandler) AddToWishlist(c *fiber.Ctx) error {
	msg, err := h.wishlist.Add(c.UserContext(), session.FromContext(c), c.Params("productId"))
	if err != nil {
		return err
	}
	return render(c, ViewShop, nil, h.notices.Success(msg))
}

// AddReview POST /shop/products/:id/reviews.
func (h *CatalogHandler) AddReview(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	review, msg, err := h.reviews.Add(c.UserContext(), session.FromContext(c), c.Params("id"), client.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return renderStatus(c, fiber.StatusCreated, ViewProduct, review, h.notices.Success(orDefault(msg, "Review added")))
}

// DeleteReview DELETE /shop/products/:id/reviews/:reviewId.
func (h *CatalogHandler) DeleteReview(c *fiber.Ctx) error {
	msg, err := h.reviews.Delete(c.UserContext(), session.FromContext(c), c.Params("reviewId"))
	if err != nil {
		return err
	}
	return render(c, ViewProduct, nil, h.notices.Success(orDefault(msg, "Review deleted")))
}

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
