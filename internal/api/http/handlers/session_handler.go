package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/phoneshop-web/internal/events"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

// SessionHandler exposes the current session and streams its changes.
type SessionHandler struct {
	sessions  *session.Manager
	heartbeat time.Duration
	stop      chan struct{}
	closeOnce sync.Once
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *session.Manager, heartbeat time.Duration) *SessionHandler {
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	return &SessionHandler{sessions: sessions, heartbeat: heartbeat, stop: make(chan struct{})}
}

// Close ends every open event stream.
func (h *SessionHandler) Close() {
	h.closeOnce.Do(func() { close(h.stop) })
}

// Current handles GET /session.
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	return render(c, ViewSession, sessionResponse(session.FromContext(c)), nil)
}

// Events handles GET /session/events as a server-sent event stream.
func (h *SessionHandler) Events(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	stream := newSessionStream(h.sessions, sess.ID)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	initial := sessionResponse(sess)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer stream.close()

		ticker := time.NewTicker(h.heartbeat)
		defer ticker.Stop()

		if err := writeEvent(w, "session", initial); err != nil {
			return
		}
		for {
			select {
			case e := <-stream.updates:
				stream.follow(e)
				if err := writeEvent(w, "session", e.Payload); err != nil {
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-h.stop:
				return
			}
		}
	})
	return nil
}

// sessionStream buffers the changes of one browser's session and follows it
// across id rotation.
type sessionStream struct {
	sessions    *session.Manager
	updates     chan events.Event
	unsubscribe func()
}

func newSessionStream(sessions *session.Manager, id string) *sessionStream {
	s := &sessionStream{sessions: sessions, updates: make(chan events.Event, 16)}
	s.unsubscribe = sessions.Subscribe(id, s.push)
	return s
}

func (s *sessionStream) push(e events.Event) {
	select {
	case s.updates <- e:
	default:
	}
}

func (s *sessionStream) follow(e events.Event) {
	if e.Type != events.EventSessionRotated || e.NextSessionID == "" {
		return
	}
	s.unsubscribe()
	s.unsubscribe = s.sessions.Subscribe(e.NextSessionID, s.push)
}

func (s *sessionStream) close() {
	s.unsubscribe()
}

func writeEvent(w *bufio.Writer, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	return w.Flush()
}
