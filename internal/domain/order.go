package domain

import "time"

// OrderStatus represents fulfillment states.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipping, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is how an order is paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// Order summarizes a placed order.
type Order struct {
	ID              string      `json:"_id"`
	CustomerID      string      `json:"customerId,omitempty"`
	CustomerName    string      `json:"customerName"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	CreatedAt       time.Time   `json:"creation_date"`
	Status          OrderStatus `json:"status"`
	IsPaid          bool        `json:"isPaid"`
	IsCompleted     bool        `json:"isCompleted"`
	Method          string      `json:"method,omitempty"`
	DiscountCode    string      `json:"discountCode,omitempty"`
	TotalQuantity   int         `json:"totalQuantity,omitempty"`
	TotalPrice      float64     `json:"totalPrice"`
	DiscountPrice   float64     `json:"discountPrice"`
	PaymentPrice    float64     `json:"paymentPrice"`
}

// OrderLine is one product within an order.
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
	ImageURL    string  `json:"url_image,omitempty"`
}
