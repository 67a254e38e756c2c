package domain

// Role determines which routes and actions a session may reach.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// SubjectType differentiates customer vs manager credentials.
type SubjectType string

const (
	SubjectTypeCustomer SubjectType = "customer"
	SubjectTypeManager  SubjectType = "manager"
)

// SubjectTypeFor returns the account kind backing a role. Admins are managers upstream.
func SubjectTypeFor(r Role) SubjectType {
	if r == RoleManager || r == RoleAdmin {
		return SubjectTypeManager
	}
	return SubjectTypeCustomer
}
