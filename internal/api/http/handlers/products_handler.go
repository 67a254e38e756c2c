package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// ProductsHandler serves the manage-products screen.
type ProductsHandler struct {
	products *service.ProductService
	reviews  *service.ReviewService
	notices  notice.Builder
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService, reviews *service.ReviewService, notices notice.Builder) *ProductsHandler {
	return &ProductsHandler{products: products, reviews: reviews, notices: notices}
}

// List GET /manage-products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewManageProducts, fiber.Map{"products": products}, nil)
}

// Brands GET /manage-products/brands feeds the brand picker of the product form.
func (h *ProductsHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.products.Brands(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewManageProducts, fiber.Map{"brands": brands}, nil)
}

// Details GET /manage-products/:id.
func (h *ProductsHandler) Details(c *fiber.Ctx) error {
	view, err := h.products.Details(c.UserContext(), session.FromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewManageProducts, view, nil)
}

// Add POST /manage-products as multipart/form-data with an "image" file.
func (h *ProductsHandler) Add(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	var image *client.Image
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "unreadable image")
		}
		defer f.Close() //nolint:errcheck
		image = &client.Image{Filename: fh.Filename, Data: f}
	}

	product, msg, err := h.products.Add(c.UserContext(), session.FromContext(c), productInput(req), image)
	if err != nil {
		return err
	}
	return renderStatus(c, fiber.StatusCreated, ViewManageProducts, product, h.notices.Success(msg))
}

// Update PATCH /manage-products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, msg, err := h.products.Update(c.UserContext(), session.FromContext(c), c.Params("id"), productInput(req))
	if err != nil {
		return err
	}
	return render(c, ViewManageProducts, product, h.notices.Success(msg))
}

// Delete DELETE /manage-products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	msg, err := h.products.Delete(c.UserContext(), session.FromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return render(c, ViewManageProducts, nil, h.notices.Success(msg))
}

// DeleteReview DELETE /manage-products/:id/reviews/:reviewId.
func (h *ProductsHandler) DeleteReview(c *fiber.Ctx) error {
	msg, err := h.reviews.Delete(c.UserContext(), session.FromContext(c), c.Params("reviewId"))
	if err != nil {
		return err
	}
	return render(c, ViewManageProducts, nil, h.notices.Success(orDefault(msg, "Review deleted")))
}

func productInput(req dto.ProductRequest) client.ProductInput {
	return client.ProductInput{
		Name:        req.Name,
		Brand:       req.Brand,
		ImportPrice: req.ImportPrice,
		RetailPrice: req.RetailPrice,
		Amount:      req.Amount,
		Details: domain.ProductSpecs{
			OS:          req.OS,
			RAM:         req.RAM,
			Storage:     req.Storage,
			Battery:     req.Battery,
			ScreenSize:  req.ScreenSize,
			Color:       req.Color,
			Description: req.Description,
		},
	}
}
