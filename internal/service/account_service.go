package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// AccountsView lists both account kinds.
type AccountsView struct {
	Customers []domain.Account `json:"customers"`
	Managers  []domain.Account `json:"managers"`
}

// AccountService is the admin's account management.
type AccountService struct {
	api *client.Client
}

// NewAccountService builds the service.
func NewAccountService(api *client.Client) *AccountService {
	return &AccountService{api: api}
}

// List fetches customers and managers concurrently.
func (s *AccountService) List(ctx context.Context, sess domain.Session) (*AccountsView, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}

	var view AccountsView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := api.ListAccounts(gctx, domain.SubjectTypeCustomer)
		view.Customers = accounts
		return err
	})
	g.Go(func() error {
		accounts, err := api.ListAccounts(gctx, domain.SubjectTypeManager)
		view.Managers = accounts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if view.Customers == nil {
		view.Customers = []domain.Account{}
	}
	if view.Managers == nil {
		view.Managers = []domain.Account{}
	}
	return &view, nil
}

// CreateManager adds a back-office account.
func (s *AccountService) CreateManager(ctx context.Context, sess domain.Session, in client.AccountInput) (*domain.Account, string, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, "", apperrors.NewValidationError("name, email, password required", nil)
	}
	if in.Role == "" {
		in.Role = domain.RoleManager
	}
	if in.Role != domain.RoleManager && in.Role != domain.RoleAdmin {
		return nil, "", apperrors.NewValidationError("role must be manager or admin", map[string]any{"role": in.Role})
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	account, msg, err := api.CreateManager(ctx, in)
	if err != nil {
		return nil, "", err
	}
	return account, fallback(msg, "Manager created"), nil
}

// Update edits a customer or manager.
func (s *AccountService) Update(ctx context.Context, sess domain.Session, kind domain.SubjectType, id string, in client.AccountInput) (*domain.Account, string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	// Passwords change through the dedicated endpoint only.
	in.Password = ""
	account, msg, err := api.UpdateAccount(ctx, kind, id, in)
	if err != nil {
		return nil, "", err
	}
	return account, fallback(msg, "Account updated"), nil
}

// Delete removes a customer or manager.
func (s *AccountService) Delete(ctx context.Context, sess domain.Session, kind domain.SubjectType, id string) (string, error) {
	if kind == domain.SubjectTypeManager && id == sess.SubjectID {
		return "", apperrors.NewValidationError("cannot delete the signed-in account", nil)
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.DeleteAccount(ctx, kind, id)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Account deleted"), nil
}
