package domain

// CartItem is one line of a customer's cart.
type CartItem struct {
	ID          string  `json:"_id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
	ImageURL    string  `json:"url_image,omitempty"`
}

// WishlistItem is a product saved for later.
type WishlistItem struct {
	ID          string  `json:"_id"`
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	RetailPrice float64 `json:"retail_price"`
	ImageURL    string  `json:"url_image,omitempty"`
}

// DiscountQuote is the upstream answer to applying a code against a price.
type DiscountQuote struct {
	DiscountPrice float64 `json:"discountPrice"`
	PaymentPrice  float64 `json:"paymentPrice"`
}
