package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/api/http/handlers"
	"github.com/spec-kit/phoneshop-web/internal/auth"
	"github.com/spec-kit/phoneshop-web/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Session   *handlers.SessionHandler
	Catalog   *handlers.CatalogHandler
	Cart      *handlers.CartHandler
	Orders    *handlers.OrdersHandler
	Products  *handlers.ProductsHandler
	Accounts  *handlers.AccountsHandler
	Discounts *handlers.DiscountsHandler
	Reports   *handlers.ReportsHandler
	Profile   *handlers.ProfileHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Every action is mounted under the
// screen it belongs to so the screen's access rule gates it as well.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	guard := func(rule auth.RouteRule) fiber.Handler {
		return auth.Guard(rule, cfg.Metrics)
	}

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Get("/session", cfg.Session.Current)
	app.Get("/session/events", cfg.Session.Events)

	app.Get(auth.RouteHome.Path, guard(auth.RouteHome), cfg.Catalog.Home)

	// Login screens are registered per route: "/login" is a prefix of "/loginAdmin".
	app.Get(auth.RouteLogin.Path, guard(auth.RouteLogin), cfg.Auth.LoginPage)
	app.Post(auth.RouteLogin.Path, guard(auth.RouteLogin), cfg.Auth.Login)
	app.Post(auth.RouteLogin.Path+"/register", guard(auth.RouteLogin), cfg.Auth.Register)
	app.Post(auth.RouteLogin.Path+"/forgot-password", guard(auth.RouteLogin), cfg.Auth.ForgotPassword)
	app.Get(auth.RouteLoginAdmin.Path, guard(auth.RouteLoginAdmin), cfg.Auth.LoginAdminPage)
	app.Post(auth.RouteLoginAdmin.Path, guard(auth.RouteLoginAdmin), cfg.Auth.LoginAdmin)

	app.Get(auth.RouteLogout.Path, guard(auth.RouteLogout), cfg.Auth.Logout)
	app.Post(auth.RouteLogout.Path, guard(auth.RouteLogout), cfg.Auth.Logout)

	shop := app.Group(auth.RouteShop.Path, guard(auth.RouteShop))
	shop.Get("/", cfg.Catalog.Shop)
	shop.Get("/products/:id", cfg.Catalog.Product)
	shop.Post("/products/:id/reviews", cfg.Catalog.AddReview)
	shop.Delete("/products/:id/reviews/:reviewId", cfg.Catalog.DeleteReview)
	shop.Post("/cart/:productId", cfg.Catalog.AddToCart)
	shop.Post("/wishlist/:productId", cfg.Catalog.AddToWishlist)

	cart := app.Group(auth.RouteCart.Path, guard(auth.RouteCart))
	cart.Get("/", cfg.Cart.View)
	cart.Post("/items/:productId", cfg.Cart.Increment)
	cart.Delete("/items/:cartItemId", cfg.Cart.Decrement)
	cart.Post("/discount", cfg.Cart.ApplyDiscount)
	cart.Post("/checkout", cfg.Cart.Checkout)

	wishlist := app.Group(auth.RouteWishlist.Path, guard(auth.RouteWishlist))
	wishlist.Get("/", cfg.Cart.Wishlist)
	wishlist.Delete("/:productId", cfg.Cart.RemoveFromWishlist)
	wishlist.Post("/:productId/cart", cfg.Cart.WishlistToCart)

	myOrders := app.Group(auth.RouteMyOrders.Path, guard(auth.RouteMyOrders))
	myOrders.Get("/", cfg.Orders.MyOrders)
	myOrders.Get("/:id", cfg.Orders.Details)

	manageOrders := app.Group(auth.RouteManageOrders.Path, guard(auth.RouteManageOrders))
	manageOrders.Get("/", cfg.Orders.Manage)
	manageOrders.Get("/:id", cfg.Orders.Details)
	manageOrders.Put("/:id", cfg.Orders.ChangeStatus)
	manageOrders.Delete("/:id", cfg.Orders.Cancel)

	products := app.Group(auth.RouteManageProducts.Path, guard(auth.RouteManageProducts))
	products.Get("/", cfg.Products.List)
	products.Post("/", cfg.Products.Add)
	products.Get("/brands", cfg.Products.Brands)
	products.Get("/:id", cfg.Products.Details)
	products.Patch("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)
	products.Delete("/:id/reviews/:reviewId", cfg.Products.DeleteReview)

	accounts := app.Group(auth.RouteManageAccounts.Path, guard(auth.RouteManageAccounts))
	accounts.Get("/", cfg.Accounts.List)
	accounts.Post("/managers", cfg.Accounts.CreateManager)
	accounts.Patch("/customers/:id", cfg.Accounts.UpdateCustomer)
	accounts.Delete("/customers/:id", cfg.Accounts.DeleteCustomer)
	accounts.Patch("/managers/:id", cfg.Accounts.UpdateManager)
	accounts.Delete("/managers/:id", cfg.Accounts.DeleteManager)

	discounts := app.Group(auth.RouteManageDiscounts.Path, guard(auth.RouteManageDiscounts))
	discounts.Get("/", cfg.Discounts.List)
	discounts.Post("/", cfg.Discounts.Create)
	discounts.Get("/:id", cfg.Discounts.Get)
	discounts.Patch("/:id", cfg.Discounts.Update)
	discounts.Delete("/:id", cfg.Discounts.Delete)

	app.Get(auth.RouteReportOrders.Path, guard(auth.RouteReportOrders), cfg.Reports.Orders)
	app.Get(auth.RouteReportProducts.Path, guard(auth.RouteReportProducts), cfg.Reports.Products)

	profile := app.Group(auth.RouteProfile.Path, guard(auth.RouteProfile))
	profile.Get("/", cfg.Profile.Show)
	profile.Patch("/", cfg.Profile.Update)
	profile.Post("/password", cfg.Profile.ChangePassword)

	app.Use(handlers.NotFound)
}
