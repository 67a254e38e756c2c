package auth

import (
	"github.com/spec-kit/phoneshop-web/internal/domain"
)

const (
	// HomePath is where authenticated sessions are sent when a route refuses them.
	HomePath = "/"
	// LoginPath is where anonymous visitors are sent when a route needs a login.
	LoginPath = "/login"
)

// RouteRule is the declarative access policy of one client route.
type RouteRule struct {
	Path              string
	AllowGuest        bool
	RequiredRoles     []domain.Role
	RequiredNotLogged bool
}

// Decision is the outcome of evaluating a rule.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide evaluates rule against the session.
// RequiredNotLogged wins over the login requirement, which wins over the role
// requirement. Roles are only checked once a session exists, so AllowGuest
// waives the login but not the role.
func Decide(rule RouteRule, s domain.Session) Decision {
	loggedIn := s.LoggedIn()

	if rule.RequiredNotLogged {
		if loggedIn {
			return Decision{RedirectTo: HomePath}
		}
		return Decision{Allow: true}
	}

	if !loggedIn {
		if rule.AllowGuest {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: LoginPath}
	}

	if len(rule.RequiredRoles) == 0 {
		return Decision{Allow: true}
	}
	for _, role := range rule.RequiredRoles {
		if role == s.Role {
			return Decision{Allow: true}
		}
	}
	return Decision{RedirectTo: HomePath}
}
