package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// DefaultOrdersPerPage is the manage-orders page size.
const DefaultOrdersPerPage = 5

// OrderFilter narrows the back-office order list. Filters combine.
type OrderFilter struct {
	Customer string
	OrderID  string
	// Date is midnight of the wanted day in the zone the day is counted in.
	Date     *time.Time
	Page     int
	PageSize int
}

// OrderPage is one page of filtered orders.
type OrderPage struct {
	Orders     []domain.Order `json:"orders"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// OrderDetail is an order with its lines.
type OrderDetail struct {
	ID    string             `json:"id"`
	Lines []domain.OrderLine `json:"lines"`
}

// OrderService serves customer and back-office order screens.
type OrderService struct {
	api *client.Client
}

// NewOrderService builds the service.
func NewOrderService(api *client.Client) *OrderService {
	return &OrderService{api: api}
}

// MyOrders lists the customer's orders, newest first.
func (s *OrderService) MyOrders(ctx context.Context, sess domain.Session) ([]domain.Order, error) {
	api, customerID, err := customer(s.api, sess)
	if err != nil {
		return nil, err
	}
	orders, err := api.MyOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Details returns the lines of an order.
func (s *OrderService) Details(ctx context.Context, sess domain.Session, orderID string) (*OrderDetail, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	lines, err := api.OrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	return &OrderDetail{ID: orderID, Lines: lines}, nil
}

// Manage lists every order with the filter and pagination applied.
func (s *OrderService) Manage(ctx context.Context, sess domain.Session, f OrderFilter) (*OrderPage, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	orders, err := api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return Paginate(FilterOrders(orders, f), f.Page, f.PageSize), nil
}

// ChangeStatus updates fulfillment state.
func (s *OrderService) ChangeStatus(ctx context.Context, sess domain.Session, orderID string, update client.OrderStatusUpdate) (*domain.Order, string, error) {
	if !update.Status.Valid() {
		return nil, "", apperrors.NewValidationError("invalid order status", map[string]any{"status": update.Status})
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	order, msg, err := api.ChangeOrderStatus(ctx, orderID, update)
	if err != nil {
		return nil, "", err
	}
	return order, fallback(msg, "Order status updated"), nil
}

// Cancel cancels an order.
func (s *OrderService) Cancel(ctx context.Context, sess domain.Session, orderID string) (string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.CancelOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Order cancelled"), nil
}

// FilterOrders keeps orders matching every set filter.
func FilterOrders(orders []domain.Order, f OrderFilter) []domain.Order {
	name := strings.ToLower(strings.TrimSpace(f.Customer))
	id := strings.ToLower(strings.TrimSpace(f.OrderID))

	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if name != "" && !strings.Contains(strings.ToLower(o.CustomerName), name) {
			continue
		}
		if id != "" && !strings.Contains(strings.ToLower(o.ID), id) {
			continue
		}
		if f.Date != nil && !sameDay(o.CreatedAt, *f.Date) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Paginate slices orders into a 1-based page. Out of range pages are clamped.
func Paginate(orders []domain.Order, page, size int) *OrderPage {
	if size <= 0 {
		size = DefaultOrdersPerPage
	}
	total := len(orders)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return &OrderPage{
		Orders:     append([]domain.Order{}, orders[start:end]...),
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
	}
}

// sameDay reports whether instant a falls on the calendar day of day, read in day's zone.
func sameDay(a, day time.Time) bool {
	ay, am, ad := a.In(day.Location()).Date()
	by, bm, bd := day.Date()
	return ay == by && am == bm && ad == bd
}

func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
}
