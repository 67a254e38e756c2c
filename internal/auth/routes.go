package auth

import "github.com/spec-kit/phoneshop-web/internal/domain"

var (
	staffRoles = []domain.Role{domain.RoleManager, domain.RoleAdmin}
	adminRoles = []domain.Role{domain.RoleAdmin}
	shopRoles  = []domain.Role{domain.RoleCustomer}
)

// Client routes and their access rules.
var (
	RouteHome            = RouteRule{Path: "/", AllowGuest: true}
	RouteShop            = RouteRule{Path: "/shop", AllowGuest: true, RequiredRoles: shopRoles}
	RouteMyOrders        = RouteRule{Path: "/my-orders", RequiredRoles: shopRoles}
	RouteWishlist        = RouteRule{Path: "/wishlist", RequiredRoles: shopRoles}
	RouteCart            = RouteRule{Path: "/cart", RequiredRoles: shopRoles}
	RouteManageProducts  = RouteRule{Path: "/manage-products", RequiredRoles: staffRoles}
	RouteManageOrders    = RouteRule{Path: "/manage-orders", RequiredRoles: staffRoles}
	RouteReportProducts  = RouteRule{Path: "/report-products", RequiredRoles: staffRoles}
	RouteReportOrders    = RouteRule{Path: "/report-orders", RequiredRoles: staffRoles}
	RouteManageAccounts  = RouteRule{Path: "/manage-accounts", RequiredRoles: adminRoles}
	RouteManageDiscounts = RouteRule{Path: "/manage-discounts", RequiredRoles: adminRoles}
	RouteLogin           = RouteRule{Path: "/login", RequiredNotLogged: true}
	RouteLoginAdmin      = RouteRule{Path: "/loginAdmin", RequiredNotLogged: true}
	RouteProfile         = RouteRule{Path: "/profile"}
	RouteLogout          = RouteRule{Path: "/logout", AllowGuest: true}
)

// Routes lists every client route in registration order.
var Routes = []RouteRule{
	RouteHome,
	RouteShop,
	RouteMyOrders,
	RouteWishlist,
	RouteCart,
	RouteManageProducts,
	RouteManageOrders,
	RouteReportProducts,
	RouteReportOrders,
	RouteManageAccounts,
	RouteManageDiscounts,
	RouteLogin,
	RouteLoginAdmin,
	RouteProfile,
	RouteLogout,
}

// Lookup returns the rule registered for path.
func Lookup(path string) (RouteRule, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return RouteRule{}, false
}
