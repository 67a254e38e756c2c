package dto

import "time"

// OrderStatusRequest changes fulfillment state.
type OrderStatusRequest struct {
	Status string `json:"status" form:"status"`
	IsPaid bool   `json:"isPaid" form:"isPaid"`
}

// ProductRequest creates or edits a product. Multipart forms use the same keys.
type ProductRequest struct {
	Name        string  `json:"name" form:"name"`
	Brand       string  `json:"brand" form:"brand"`
	ImportPrice float64 `json:"import_price" form:"import_price"`
	RetailPrice float64 `json:"retail_price" form:"retail_price"`
	Amount      int     `json:"amount" form:"amount"`
	OS          string  `json:"os" form:"os"`
	RAM         string  `json:"ram" form:"ram"`
	Storage     string  `json:"storage" form:"storage"`
	Battery     string  `json:"battery" form:"battery"`
	ScreenSize  string  `json:"screen_size" form:"screen_size"`
	Color       string  `json:"color" form:"color"`
	Description string  `json:"description" form:"description"`
}

// AccountRequest creates or edits a customer or manager.
type AccountRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// DiscountRequest creates or edits a discount. Dates are RFC3339.
type DiscountRequest struct {
	Code      string     `json:"code"`
	Type      string     `json:"type"`
	Value     float64    `json:"value"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
