package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

func TestAccountListFetchesBothKinds(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []domain.Account{{ID: "c1"}, {ID: "c2"}})
	})
	mux.HandleFunc("GET /managers", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []domain.Account{{ID: "m1", Role: domain.RoleAdmin}})
	})
	svc := NewAccountService(fakeAPI(t, mux))

	view, err := svc.List(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(view.Customers) != 2 || len(view.Managers) != 1 {
		t.Errorf("view = %+v", view)
	}
}

func TestAccountListFailsWhenOneKindFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []domain.Account{})
	})
	mux.HandleFunc("GET /managers", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, "Admins only", nil)
	})
	svc := NewAccountService(fakeAPI(t, mux))

	if _, err := svc.List(context.Background(), adminSession); !client.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("err = %v, want upstream 403", err)
	}
}

func TestCreateManagerDefaultsRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /managers", func(w http.ResponseWriter, r *http.Request) {
		var in client.AccountInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeEnvelope(w, http.StatusCreated, "", domain.Account{ID: "m9", Name: in.Name, Role: in.Role})
	})
	svc := NewAccountService(fakeAPI(t, mux))

	account, _, err := svc.CreateManager(context.Background(), adminSession, client.AccountInput{Name: "Mia", Email: "mia@shop", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateManager() error: %v", err)
	}
	if account.Role != domain.RoleManager {
		t.Errorf("Role = %q, want manager", account.Role)
	}

	_, _, err = svc.CreateManager(context.Background(), adminSession, client.AccountInput{Name: "X", Email: "x@shop", Password: "pw", Role: domain.RoleCustomer})
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("customer role should be rejected, got %v", err)
	}
}

func TestDeleteOwnManagerAccountRejected(t *testing.T) {
	svc := NewAccountService(fakeAPI(t, http.NewServeMux()))
	_, err := svc.Delete(context.Background(), adminSession, domain.SubjectTypeManager, adminSession.SubjectID)
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Fatalf("err = %v, want validation failure", err)
	}
}
