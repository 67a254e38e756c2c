package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
)

func TestProfileUsesSubjectEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /managers/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", domain.Account{ID: r.PathValue("id"), Name: "Manager"})
	})
	mux.HandleFunc("GET /customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", domain.Account{ID: r.PathValue("id"), Name: "Customer"})
	})
	svc := NewProfileService(fakeAPI(t, mux))

	account, err := svc.Get(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if account.ID != "a1" || account.Name != "Manager" {
		t.Errorf("admin profile = %+v", account)
	}
	account, err = svc.Get(context.Background(), customerSession)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if account.Name != "Customer" {
		t.Errorf("customer profile = %+v", account)
	}
}

func TestProfileUpdateStripsPrivilegedFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in client.AccountInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Role != "" || in.Password != "" {
			t.Errorf("profile update forwarded role/password: %+v", in)
		}
		writeEnvelope(w, http.StatusOK, "Updated", domain.Account{ID: "c1", Name: in.Name})
	})
	svc := NewProfileService(fakeAPI(t, mux))

	_, msg, err := svc.Update(context.Background(), customerSession, client.AccountInput{Name: "Ann", Role: domain.RoleAdmin, Password: "x"})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if msg != "Updated" {
		t.Errorf("msg = %q, want upstream message", msg)
	}
}

func TestChangePasswordValidates(t *testing.T) {
	svc := NewProfileService(fakeAPI(t, http.NewServeMux()))
	if _, err := svc.ChangePassword(context.Background(), customerSession, client.ChangePasswordRequest{OldPassword: "a", NewPassword: "a"}); err == nil {
		t.Fatal("expected error when new password equals old")
	}
}
