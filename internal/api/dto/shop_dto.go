package dto

// ReviewRequest posts a rating.
type ReviewRequest struct {
	Rating  int    `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
}

// DiscountCodeRequest applies a code to the cart.
type DiscountCodeRequest struct {
	Code string `json:"code" form:"code"`
}

// CheckoutRequest places an order.
type CheckoutRequest struct {
	Method       string `json:"method" form:"method"`
	DiscountCode string `json:"discountCode" form:"discountCode"`
}
