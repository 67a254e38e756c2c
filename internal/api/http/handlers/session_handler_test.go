package handlers

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/events"
	"github.com/spec-kit/phoneshop-web/internal/session"
)

func nextEvent(t *testing.T, s *sessionStream) events.Event {
	t.Helper()
	select {
	case e := <-s.updates:
		return e
	case <-time.After(time.Second):
		t.Fatal("no session event delivered")
		return events.Event{}
	}
}

func TestSessionStreamFollowsRotation(t *testing.T) {
	manager := session.NewManager(session.NewMemoryStore(), events.NewInMemoryDispatcher(), time.Hour, nil)
	ctx := context.Background()

	stream := newSessionStream(manager, "browser-1")
	defer stream.close()

	sess, err := manager.Rotate(ctx, "browser-1", session.Grant{Token: "tok", Role: domain.RoleCustomer, Subject: domain.SubjectTypeCustomer, SubjectID: "c1"})
	if err != nil {
		t.Fatalf("Rotate() error: %v", err)
	}

	rotated := nextEvent(t, stream)
	if rotated.Type != events.EventSessionRotated || rotated.NextSessionID != sess.ID {
		t.Fatalf("first event = %+v, want rotation to %s", rotated, sess.ID)
	}
	stream.follow(rotated)

	if err := manager.Clear(ctx, sess.ID); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	ended := nextEvent(t, stream)
	if ended.Type != events.EventSessionEnded {
		t.Fatalf("second event = %s, want session_ended", ended.Type)
	}
	payload := ended.Payload.(events.SessionChangedPayload)
	if payload.LoggedIn || payload.Role != domain.RoleGuest {
		t.Errorf("payload = %+v, want guest", payload)
	}
}

func TestSessionStreamIgnoresOtherBrowsers(t *testing.T) {
	manager := session.NewManager(session.NewMemoryStore(), events.NewInMemoryDispatcher(), time.Hour, nil)
	stream := newSessionStream(manager, "mine")
	defer stream.close()

	if _, err := manager.Set(context.Background(), "theirs", session.Grant{Token: "tok", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	select {
	case e := <-stream.updates:
		t.Fatalf("unexpected event %+v", e)
	default:
	}
}

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := writeEvent(w, "session", events.SessionChangedPayload{Role: domain.RoleCustomer, LoggedIn: true}); err != nil {
		t.Fatalf("writeEvent() error: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "event: session\ndata: ") || !strings.HasSuffix(got, "\n\n") {
		t.Fatalf("frame = %q", got)
	}
	if !strings.Contains(got, `"isLoggedIn":true`) {
		t.Errorf("frame = %q, want isLoggedIn", got)
	}
}
