package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
)

var (
	customerSession = domain.Session{ID: "sid-c", Token: "cust-token", SubjectID: "c1", Subject: domain.SubjectTypeCustomer, Role: domain.RoleCustomer}
	managerSession  = domain.Session{ID: "sid-m", Token: "mgr-token", SubjectID: "m1", Subject: domain.SubjectTypeManager, Role: domain.RoleManager}
	adminSession    = domain.Session{ID: "sid-a", Token: "adm-token", SubjectID: "a1", Subject: domain.SubjectTypeManager, Role: domain.RoleAdmin}
	guestSession    = domain.GuestSession("sid-g")
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"message": message, "data": data}) //nolint:errcheck
}

// fakeAPI serves mux as the upstream API and returns a client pointed at it.
func fakeAPI(t *testing.T, mux *http.ServeMux) *client.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, time.Second)
}
