package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/phoneshop-web/internal/api/http/handlers"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/events"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/observability"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

const cookieName = "test_session"

type viewBody struct {
	View   string          `json:"view"`
	Data   json.RawMessage `json:"data"`
	Notice *notice.Notice  `json:"notice"`
	Error  *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"message": message, "data": data}) //nolint:errcheck
}

func newTestApp(t *testing.T, upstream *http.ServeMux) (*fiber.App, *session.Manager) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	api := client.New(srv.URL, time.Second)
	manager := session.NewManager(session.NewMemoryStore(), events.NewInMemoryDispatcher(), time.Hour, nil)
	metrics := observability.NewMetrics()
	notices := notice.NewBuilder(0)
	cookies := session.CookieOptions{Name: cookieName}

	reviews := service.NewReviewService(api)
	cart := service.NewCartService(api)
	wishlist := service.NewWishlistService(api)
	sessionHandler := handlers.NewSessionHandler(manager, time.Second)
	t.Cleanup(sessionHandler.Close)

	app := fiber.New()
	RegisterMiddlewares(app, MiddlewareConfig{
		Logger:   zap.NewNop(),
		Metrics:  metrics,
		Notices:  notices,
		Timeout:  5 * time.Second,
		Sessions: manager,
		Cookies:  cookies,
	})
	RegisterRoutes(app, RouteConfig{
		Health:    handlers.NewHealthHandler("phoneshop-web", "test", map[string]handlers.Pinger{"sessions": manager}, metrics),
		Auth:      handlers.NewAuthHandler(service.NewAuthService(api, manager, nil), cookies, notices),
		Session:   sessionHandler,
		Catalog:   handlers.NewCatalogHandler(service.NewCatalogService(api, 4), cart, wishlist, reviews, notices),
		Cart:      handlers.NewCartHandler(cart, wishlist, notices),
		Orders:    handlers.NewOrdersHandler(service.NewOrderService(api), notices, time.UTC),
		Products:  handlers.NewProductsHandler(service.NewProductService(api), reviews, notices),
		Accounts:  handlers.NewAccountsHandler(service.NewAccountService(api), notices),
		Discounts: handlers.NewDiscountsHandler(service.NewDiscountService(api), notices),
		Reports:   handlers.NewReportsHandler(service.NewReportService(api)),
		Profile:   handlers.NewProfileHandler(service.NewProfileService(api), notices),
		Metrics:   metrics,
	})
	return app, manager
}

func seedSession(t *testing.T, m *session.Manager, id string, role domain.Role, subject domain.SubjectType) {
	t.Helper()
	if _, err := m.Set(context.Background(), id, session.Grant{Token: "tok-" + id, SubjectID: "subj-" + id, Subject: subject, Role: role}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func do(t *testing.T, app *fiber.App, method, path, sid string, body any) (*http.Response, viewBody) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.Header.Set("Cookie", cookieName+"="+sid)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test(%s %s) error: %v", method, path, err)
	}
	var v viewBody
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &v)
	return resp, v
}

func TestGuardRedirects(t *testing.T) {
	app, manager := newTestApp(t, http.NewServeMux())
	seedSession(t, manager, "cust", domain.RoleCustomer, domain.SubjectTypeCustomer)
	seedSession(t, manager, "mgr", domain.RoleManager, domain.SubjectTypeManager)

	tests := []struct {
		name     string
		method   string
		path     string
		sid      string
		location string
	}{
		{"guest to cart", http.MethodGet, "/cart", "", "/login"},
		{"guest checkout", http.MethodPost, "/cart/checkout", "", "/login"},
		{"guest to profile", http.MethodGet, "/profile", "", "/login"},
		{"customer to back office", http.MethodGet, "/manage-products", "cust", "/"},
		{"manager to accounts", http.MethodGet, "/manage-accounts", "mgr", "/"},
		{"manager to shop", http.MethodGet, "/shop", "mgr", "/"},
		{"logged in to login", http.MethodGet, "/login", "cust", "/"},
		{"logged in to admin login", http.MethodPost, "/loginAdmin", "mgr", "/"},
		{"customer deleting discount", http.MethodDelete, "/manage-discounts/d1", "cust", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, app, tt.method, tt.path, tt.sid, nil)
			if resp.StatusCode != http.StatusFound {
				t.Fatalf("status = %d, want 302", resp.StatusCode)
			}
			if got := resp.Header.Get("Location"); got != tt.location {
				t.Errorf("Location = %q, want %q", got, tt.location)
			}
		})
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	app, _ := newTestApp(t, http.NewServeMux())
	resp, v := do(t, app, http.MethodGet, "/no-such-screen", "", nil)
	if resp.StatusCode != http.StatusNotFound || v.View != handlers.ViewNotFound {
		t.Fatalf("got %d %q, want 404 not-found", resp.StatusCode, v.View)
	}
}

func TestHomeIsPublic(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /products/display", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []domain.Product{{ID: "p1"}, {ID: "p2"}})
	})
	app, _ := newTestApp(t, upstream)

	resp, v := do(t, app, http.MethodGet, "/", "", nil)
	if resp.StatusCode != http.StatusOK || v.View != handlers.ViewHome {
		t.Fatalf("got %d %q, want 200 home", resp.StatusCode, v.View)
	}
}

func TestLoginSetsCookieAndOpensScreens(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":     "customer",
		"customer": map[string]any{"id": "c42"},
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /customers/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", map[string]string{"token": token})
	})
	upstream.HandleFunc("GET /carts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "c42" || r.Header.Get("Authorization") != "Bearer "+token {
			writeEnvelope(w, http.StatusUnauthorized, "You need to login", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "", []domain.CartItem{{ID: "ci", Price: 5, Quantity: 2}})
	})
	app, _ := newTestApp(t, upstream)

	resp, v := do(t, app, http.MethodPost, "/login", "", map[string]string{"email": "a@b.c", "password": "pw"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body %+v", resp.StatusCode, v)
	}
	if v.Notice == nil || v.Notice.Message != "Login successfully" {
		t.Errorf("notice = %+v", v.Notice)
	}
	var sid string
	for _, ck := range resp.Cookies() {
		if ck.Name == cookieName && ck.Value != "" {
			sid = ck.Value
		}
	}
	if sid == "" {
		t.Fatal("login should issue the session cookie")
	}

	resp, v = do(t, app, http.MethodGet, "/cart", sid, nil)
	if resp.StatusCode != http.StatusOK || v.View != handlers.ViewCart {
		t.Fatalf("cart: got %d %q", resp.StatusCode, v.View)
	}
	var cart service.CartView
	if err := json.Unmarshal(v.Data, &cart); err != nil || cart.TotalPrice != 10 {
		t.Errorf("cart = %+v (%v)", cart, err)
	}

	resp, v = do(t, app, http.MethodGet, "/session", sid, nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(v.Data), `"isLoggedIn":true`) {
		t.Errorf("session view = %s", v.Data)
	}
}

func TestLoginFailureKeepsGuest(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /customers/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
	})
	upstream.HandleFunc("POST /managers/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", map[string]string{"token": "garbage"})
	})
	app, _ := newTestApp(t, upstream)

	resp, v := do(t, app, http.MethodPost, "/login", "guest-sid", map[string]string{"email": "a@b.c", "password": "bad"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if v.Notice == nil || v.Notice.Message != "Invalid email or password" || v.Notice.Severity != "warning" {
		t.Errorf("notice = %+v", v.Notice)
	}
	if v.Notice.DismissAfterMs != 3000 {
		t.Errorf("DismissAfterMs = %d, want 3000", v.Notice.DismissAfterMs)
	}

	resp, v = do(t, app, http.MethodPost, "/loginAdmin", "guest-sid", map[string]string{"email": "m@b.c", "password": "pw"})
	if resp.StatusCode != http.StatusBadGateway || v.Error == nil || v.Error.Code != "MALFORMED_CREDENTIAL" {
		t.Fatalf("malformed credential: got %d %+v", resp.StatusCode, v.Error)
	}
	if v.Notice == nil || v.Notice.Severity != "warning" {
		t.Errorf("malformed credential notice = %+v, want warning", v.Notice)
	}

	_, v = do(t, app, http.MethodGet, "/session", "guest-sid", nil)
	if !strings.Contains(string(v.Data), `"isLoggedIn":false`) {
		t.Errorf("session after failed logins = %s", v.Data)
	}
}

func TestGuestShopActionAsksForLogin(t *testing.T) {
	app, _ := newTestApp(t, http.NewServeMux())
	resp, v := do(t, app, http.MethodPost, "/shop/cart/p1", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if v.Notice == nil || v.Notice.Message != "You need to login" {
		t.Errorf("notice = %+v", v.Notice)
	}
}

func TestUpstreamOutageIsBadGateway(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /products/display", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>down</html>", http.StatusServiceUnavailable)
	})
	app, _ := newTestApp(t, upstream)

	resp, v := do(t, app, http.MethodGet, "/shop", "", nil)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	if v.Notice == nil || v.Notice.Severity != "error" {
		t.Errorf("notice = %+v", v.Notice)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app, manager := newTestApp(t, http.NewServeMux())
	seedSession(t, manager, "adm", domain.RoleAdmin, domain.SubjectTypeManager)

	resp, v := do(t, app, http.MethodPost, "/logout", "adm", nil)
	if resp.StatusCode != http.StatusOK || v.View != handlers.ViewLogout {
		t.Fatalf("logout: got %d %q", resp.StatusCode, v.View)
	}
	if manager.Current(context.Background(), "adm").LoggedIn() {
		t.Fatal("session record should be gone")
	}
	resp, _ = do(t, app, http.MethodGet, "/manage-accounts", "adm", nil)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login" {
		t.Errorf("after logout got %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestManageOrdersFiltersAndPaginates(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		orders := make([]domain.Order, 0, 7)
		for i := 0; i < 7; i++ {
			orders = append(orders, domain.Order{ID: "o" + string(rune('a'+i)), CustomerName: "Alice", CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		}
		writeEnvelope(w, http.StatusOK, "", orders)
	})
	app, manager := newTestApp(t, upstream)
	seedSession(t, manager, "mgr", domain.RoleManager, domain.SubjectTypeManager)

	resp, v := do(t, app, http.MethodGet, "/manage-orders?customer=alice&date=2024-03-01&page=2", "mgr", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var page service.OrderPage
	if err := json.Unmarshal(v.Data, &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Page != 2 || page.Total != 7 || len(page.Orders) != 2 {
		t.Errorf("page = %+v", page)
	}

	resp, v = do(t, app, http.MethodGet, "/manage-orders?date=03/01/2024", "mgr", nil)
	if resp.StatusCode != http.StatusBadRequest || v.Error == nil || v.Error.Code != "VALIDATION_FAILED" {
		t.Errorf("bad date: got %d %+v", resp.StatusCode, v.Error)
	}
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t, http.NewServeMux())
	for _, path := range []string{"/health/live", "/health/ready", "/health/metrics"} {
		resp, _ := do(t, app, http.MethodGet, path, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d", path, resp.StatusCode)
		}
	}
}

func TestManageProductsBrandPicker(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /products/brands", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []string{"Apple", "Samsung"})
	})
	app, manager := newTestApp(t, upstream)
	seedSession(t, manager, "mgr", domain.RoleManager, domain.SubjectTypeManager)

	resp, v := do(t, app, http.MethodGet, "/manage-products/brands", "mgr", nil)
	if resp.StatusCode != http.StatusOK || v.View != handlers.ViewManageProducts {
		t.Fatalf("got %d %q", resp.StatusCode, v.View)
	}
	if string(v.Data) != `{"brands":["Apple","Samsung"]}` {
		t.Errorf("data = %s", v.Data)
	}

	resp, _ = do(t, app, http.MethodGet, "/manage-products/brands", "", nil)
	if resp.StatusCode != http.StatusFound {
		t.Errorf("guest got %d, want redirect", resp.StatusCode)
	}
}
