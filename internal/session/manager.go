package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/events"
)

var (
	// ErrEmptyToken rejects a login that produced no credential.
	ErrEmptyToken = errors.New("session: empty token")
	// ErrInvalidRole rejects a grant for guest or an unknown role.
	ErrInvalidRole = errors.New("session: invalid role")
)

// Grant is everything needed to open an authenticated session.
type Grant struct {
	Token     string
	SubjectID string
	Subject   domain.SubjectType
	Role      domain.Role
	ExpiresAt time.Time
}

// Manager is the only writer of session records and the single place
// session changes are announced from.
type Manager struct {
	store      Store
	dispatcher events.Dispatcher
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewManager wires a manager over store.
func NewManager(store Store, dispatcher events.Dispatcher, ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, dispatcher: dispatcher, ttl: ttl, logger: logger, now: time.Now}
}

// NewID generates an opaque session identifier.
func NewID() string {
	return uuid.NewString()
}

// Set replaces the record stored under id with an authenticated session.
func (m *Manager) Set(ctx context.Context, id string, g Grant) (domain.Session, error) {
	s, err := m.write(ctx, id, g)
	if err != nil {
		return domain.Session{}, err
	}
	m.publish(ctx, events.EventSessionStarted, s, "")
	return s, nil
}

// Rotate opens the session under a fresh id and retires previousID.
// Subscribers of previousID are told where the session moved.
func (m *Manager) Rotate(ctx context.Context, previousID string, g Grant) (domain.Session, error) {
	s, err := m.write(ctx, NewID(), g)
	if err != nil {
		return domain.Session{}, err
	}
	if previousID != "" && previousID != s.ID {
		if err := m.store.Delete(ctx, previousID); err != nil {
			m.logger.Warn("failed to drop previous session", zap.Error(err))
		}
		prev := s
		prev.ID = previousID
		m.publish(ctx, events.EventSessionRotated, prev, s.ID)
	}
	m.publish(ctx, events.EventSessionStarted, s, "")
	return s, nil
}

func (m *Manager) write(ctx context.Context, id string, g Grant) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, errors.New("session: missing id")
	}
	if g.Token == "" {
		return domain.Session{}, ErrEmptyToken
	}
	if !g.Role.Valid() || g.Role == domain.RoleGuest {
		return domain.Session{}, fmt.Errorf("%w: %q", ErrInvalidRole, g.Role)
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	if !g.ExpiresAt.IsZero() && g.ExpiresAt.Before(expiresAt) {
		expiresAt = g.ExpiresAt
	}

	s := domain.Session{
		ID:        id,
		Token:     g.Token,
		SubjectID: g.SubjectID,
		Subject:   g.Subject,
		Role:      g.Role,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := m.store.Save(ctx, s); err != nil {
		return domain.Session{}, fmt.Errorf("session: save: %w", err)
	}
	return s, nil
}

// Clear removes the record; later reads return guest defaults.
func (m *Manager) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	m.publish(ctx, events.EventSessionEnded, domain.GuestSession(id), "")
	return nil
}

// Current never fails: anything other than a live record reads as guest.
func (m *Manager) Current(ctx context.Context, id string) domain.Session {
	if id == "" {
		return domain.GuestSession("")
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		m.logger.Warn("session lookup failed", zap.Error(err))
		return domain.GuestSession(id)
	}
	if s == nil {
		return domain.GuestSession(id)
	}
	if s.IsExpired(m.now()) {
		if err := m.store.Delete(ctx, id); err != nil {
			m.logger.Warn("expired session delete failed", zap.Error(err))
		}
		return domain.GuestSession(id)
	}
	return *s
}

// Sweep purges expired records from the store.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	return m.store.DeleteExpired(ctx, m.now())
}

// Ping checks the backing store.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

// Subscribe delivers changes of one session to fn until the returned func is called.
func (m *Manager) Subscribe(id string, fn func(events.Event)) func() {
	handler := func(_ context.Context, e events.Event) error {
		if e.SessionID == id {
			fn(e)
		}
		return nil
	}
	unsubs := []func(){
		m.dispatcher.Subscribe(events.EventSessionStarted, handler),
		m.dispatcher.Subscribe(events.EventSessionEnded, handler),
		m.dispatcher.Subscribe(events.EventSessionRotated, handler),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func (m *Manager) publish(ctx context.Context, t events.EventType, s domain.Session, nextID string) {
	if m.dispatcher == nil {
		return
	}
	err := m.dispatcher.Publish(ctx, events.Event{
		ID:            uuid.NewString(),
		Type:          t,
		SessionID:     s.ID,
		NextSessionID: nextID,
		Timestamp:     m.now(),
		Payload: events.SessionChangedPayload{
			Role:      s.Role,
			LoggedIn:  s.LoggedIn(),
			SubjectID: s.SubjectID,
		},
	})
	if err != nil {
		m.logger.Warn("session event handler failed", zap.String("type", string(t)), zap.Error(err))
	}
}
