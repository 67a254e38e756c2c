package domain

import "time"

// Session is the single record describing who is browsing. It is written as a whole.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token,omitempty"`
	SubjectID string      `json:"subject_id,omitempty"`
	Subject   SubjectType `json:"subject,omitempty"`
	Role      Role        `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// GuestSession returns the defaults read when no session exists.
func GuestSession(id string) Session {
	return Session{ID: id, Role: RoleGuest}
}

// LoggedIn is derived from the record, never stored separately.
func (s Session) LoggedIn() bool {
	return s.Token != "" && s.Role != "" && s.Role != RoleGuest
}

// IsExpired reports whether the record is past its expiry at reference.
func (s Session) IsExpired(reference time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}

// CustomerID returns the subject id when the session belongs to a customer.
func (s Session) CustomerID() string {
	if s.Subject == SubjectTypeCustomer {
		return s.SubjectID
	}
	return ""
}
