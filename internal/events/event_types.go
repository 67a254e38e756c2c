package events

import (
	"time"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionStarted EventType = "session_started"
	EventSessionEnded   EventType = "session_ended"
	EventSessionRotated EventType = "session_rotated"
)

// Event represents a change emitted by the session manager.
// NextSessionID is set on rotation to the id that replaced SessionID.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	SessionID     string      `json:"-"`
	NextSessionID string      `json:"-"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// SessionChangedPayload is what open tabs need to re-render navigation.
type SessionChangedPayload struct {
	Role      domain.Role `json:"role"`
	LoggedIn  bool        `json:"isLoggedIn"`
	SubjectID string      `json:"subjectId,omitempty"`
}
