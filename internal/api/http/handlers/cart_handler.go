package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/dto"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// CartHandler serves the cart and wishlist screens.
type CartHandler struct {
	cart     *service.CartService
	wishlist *service.WishlistService
	notices  notice.Builder
}

// NewCartHandler constructs handler.
func NewCartHandler(cart *service.CartService, wishlist *service.WishlistService, notices notice.Builder) *CartHandler {
	return &CartHandler{cart: cart, wishlist: wishlist, notices: notices}
}

// View GET /cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	view, err := h.cart.View(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewCart, view, nil)
}

// Increment POST /cart/items/:productId.
func (h *CartHandler) Increment(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if _, err := h.cart.Increment(c.UserContext(), sess, c.Params("productId")); err != nil {
		return err
	}
	return h.refresh(c, sess, nil)
}

// Decrement DELETE /cart/items/:cartItemId.
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if _, err := h.cart.Decrement(c.UserContext(), sess, c.Params("cartItemId")); err != nil {
		return err
	}
	return h.refresh(c, sess, nil)
}

// ApplyDiscount POST /cart/discount.
func (h *CartHandler) ApplyDiscount(c *fiber.Ctx) error {
	var req dto.DiscountCodeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	quote, err := h.cart.ApplyDiscount(c.UserContext(), session.FromContext(c), req.Code)
	if err != nil {
		return err
	}
	return render(c, ViewCart, quote, h.notices.Success("Discount applied"))
}

// Checkout POST /cart/checkout.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	order, msg, err := h.cart.Checkout(c.UserContext(), session.FromContext(c), service.CheckoutInput{
		Method:       domain.PaymentMethod(req.Method),
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		return err
	}
	return renderStatus(c, fiber.StatusCreated, ViewMyOrders, order, h.notices.Success(msg))
}

// Wishlist GET /wishlist.
func (h *CartHandler) Wishlist(c *fiber.Ctx) error {
	items, err := h.wishlist.List(c.UserContext(), session.FromContext(c))
	if err != nil {
		return err
	}
	return render(c, ViewWishlist, fiber.Map{"items": items}, nil)
}

// RemoveFromWishlist DELETE /wishlist/:productId.
func (h *CartHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	msg, err := h.wishlist.Remove(c.UserContext(), session.FromContext(c), c.Params("productId"))
	if err != nil {
		return err
	}
	return render(c, ViewWishlist, nil, h.notices.Success(msg))
}

// WishlistToCart POST /wishlist/:productId/cart.
func (h *CartHandler) WishlistToCart(c *fiber.Ctx) error {
	msg, err := h.wishlist.AddToCart(c.UserContext(), session.FromContext(c), c.Params("productId"))
	if err != nil {
		return err
	}
	return render(c, ViewWishlist, nil, h.notices.Success(msg))
}

// refresh re-reads the cart so quantities and totals match the API.
func (h *CartHandler) refresh(c *fiber.Ctx, sess domain.Session, n *notice.Notice) error {
	view, err := h.cart.View(c.UserContext(), sess)
	if err != nil {
		return err
	}
	return render(c, ViewCart, view, n)
}
