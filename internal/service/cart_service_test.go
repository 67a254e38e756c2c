package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

func cartMux(t *testing.T, items []domain.CartItem) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /carts/{customerId}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("customerId") != "c1" {
			t.Errorf("cart requested for %q, want c1", r.PathValue("customerId"))
		}
		if r.Header.Get("Authorization") != "Bearer cust-token" {
			writeEnvelope(w, http.StatusUnauthorized, "You need to login", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "", items)
	})
	return mux
}

func TestCartViewTotals(t *testing.T) {
	items := []domain.CartItem{
		{ID: "ci1", ProductID: "p1", Price: 100, Quantity: 2},
		{ID: "ci2", ProductID: "p2", Price: 50, Quantity: 1, TotalPrice: 50},
	}
	svc := NewCartService(fakeAPI(t, cartMux(t, items)))

	view, err := svc.View(context.Background(), customerSession)
	if err != nil {
		t.Fatalf("View() error: %v", err)
	}
	if view.TotalPrice != 250 || view.TotalQuantity != 3 {
		t.Errorf("totals = %v/%d, want 250/3", view.TotalPrice, view.TotalQuantity)
	}
	if view.Items[0].TotalPrice != 200 {
		t.Errorf("line total = %v, want 200", view.Items[0].TotalPrice)
	}
}

func TestCartRequiresCustomer(t *testing.T) {
	svc := NewCartService(fakeAPI(t, http.NewServeMux()))

	_, err := svc.View(context.Background(), guestSession)
	if de := apperrors.ToDomainError(err); de.Code != "UNAUTHORIZED" || de.Message != needLoginMessage {
		t.Errorf("guest: got %s %q", de.Code, de.Message)
	}
	_, err = svc.View(context.Background(), managerSession)
	if de := apperrors.ToDomainError(err); de.Code != "FORBIDDEN" {
		t.Errorf("manager: got %s, want FORBIDDEN", de.Code)
	}
}

func TestCartApplyDiscountQuotesCurrentTotal(t *testing.T) {
	mux := cartMux(t, []domain.CartItem{{ID: "ci1", Price: 200, Quantity: 2}})
	mux.HandleFunc("POST /discounts/apply", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Code  string  `json:"code"`
			Price float64 `json:"price"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Code != "SALE10" || body.Price != 400 {
			t.Errorf("quote request = %+v, want SALE10 against 400", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.DiscountQuote{DiscountPrice: 40, PaymentPrice: 360})
	})
	svc := NewCartService(fakeAPI(t, mux))

	quote, err := svc.ApplyDiscount(context.Background(), customerSession, " SALE10 ")
	if err != nil {
		t.Fatalf("ApplyDiscount() error: %v", err)
	}
	if quote.PaymentPrice != 360 {
		t.Errorf("PaymentPrice = %v, want 360", quote.PaymentPrice)
	}
}

func TestCartCheckout(t *testing.T) {
	mux := cartMux(t, []domain.CartItem{{ID: "ci1", Price: 10, Quantity: 1}})
	mux.HandleFunc("POST /orders/create/{customerId}", func(w http.ResponseWriter, r *http.Request) {
		var req client.PlaceOrderRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Method != domain.PaymentOnline || !req.IsPaid {
			t.Errorf("order request = %+v, want paid online order", req)
		}
		writeEnvelope(w, http.StatusCreated, "", domain.Order{ID: "o1", Status: domain.OrderStatusProcessing})
	})
	svc := NewCartService(fakeAPI(t, mux))

	order, msg, err := svc.Checkout(context.Background(), customerSession, CheckoutInput{Method: domain.PaymentOnline})
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}
	if order.ID != "o1" || msg == "" {
		t.Errorf("order = %+v msg = %q", order, msg)
	}

	if _, _, err := svc.Checkout(context.Background(), customerSession, CheckoutInput{Method: "barter"}); apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("unknown method should fail validation, got %v", err)
	}
}

func TestCartCheckoutEmptyCart(t *testing.T) {
	svc := NewCartService(fakeAPI(t, cartMux(t, nil)))
	_, _, err := svc.Checkout(context.Background(), customerSession, CheckoutInput{})
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Fatalf("err = %v, want validation failure", err)
	}
}
