package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// LoginRequest is the payload of both login endpoints.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a customer account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountInput creates or edits a customer or manager profile.
type AccountInput struct {
	Name     string      `json:"name,omitempty"`
	Email    string      `json:"email,omitempty"`
	Phone    string      `json:"phone,omitempty"`
	Address  string      `json:"address,omitempty"`
	Password string      `json:"password,omitempty"`
	Role     domain.Role `json:"role,omitempty"`
}

// ChangePasswordRequest rotates a password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type loginData struct {
	Token string `json:"token"`
}

// LoginCustomer exchanges customer credentials for a signed token.
func (c *Client) LoginCustomer(ctx context.Context, req LoginRequest) (string, error) {
	var out loginData
	if _, err := c.call(ctx, http.MethodPost, "/customers/login", req, &out); err != nil {
		return "", fmt.Errorf("client.LoginCustomer: %w", err)
	}
	return out.Token, nil
}

// LoginManager exchanges manager or admin credentials for a signed token.
func (c *Client) LoginManager(ctx context.Context, req LoginRequest) (string, error) {
	var out loginData
	if _, err := c.call(ctx, http.MethodPost, "/managers/login", req, &out); err != nil {
		return "", fmt.Errorf("client.LoginManager: %w", err)
	}
	return out.Token, nil
}

// RegisterCustomer creates a customer account.
func (c *Client) RegisterCustomer(ctx context.Context, req RegisterRequest) (string, error) {
	msg, err := c.call(ctx, http.MethodPost, "/customers/", req, nil)
	if err != nil {
		return "", fmt.Errorf("client.RegisterCustomer: %w", err)
	}
	return msg, nil
}

// ForgotPassword asks the API to email a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	msg, err := c.call(ctx, http.MethodPost, "/customers/forgotPassword", map[string]string{"email": email}, nil)
	if err != nil {
		return "", fmt.Errorf("client.ForgotPassword: %w", err)
	}
	return msg, nil
}

// ListAccounts lists customers or managers.
func (c *Client) ListAccounts(ctx context.Context, kind domain.SubjectType) ([]domain.Account, error) {
	var accounts []domain.Account
	if _, err := c.call(ctx, http.MethodGet, accountsPath(kind), nil, &accounts); err != nil {
		return nil, fmt.Errorf("client.ListAccounts: %w", err)
	}
	return accounts, nil
}

// GetAccount fetches one customer or manager.
func (c *Client) GetAccount(ctx context.Context, kind domain.SubjectType, id string) (*domain.Account, error) {
	var account domain.Account
	if _, err := c.call(ctx, http.MethodGet, accountsPath(kind)+"/"+url.PathEscape(id), nil, &account); err != nil {
		return nil, fmt.Errorf("client.GetAccount: %w", err)
	}
	return &account, nil
}

// CreateManager adds a back-office account.
func (c *Client) CreateManager(ctx context.Context, in AccountInput) (*domain.Account, string, error) {
	var account domain.Account
	msg, err := c.call(ctx, http.MethodPost, "/managers", in, &account)
	if err != nil {
		return nil, "", fmt.Errorf("client.CreateManager: %w", err)
	}
	return &account, msg, nil
}

// UpdateAccount edits a customer or manager.
func (c *Client) UpdateAccount(ctx context.Context, kind domain.SubjectType, id string, in AccountInput) (*domain.Account, string, error) {
	var account domain.Account
	msg, err := c.call(ctx, http.MethodPatch, accountsPath(kind)+"/"+url.PathEscape(id), in, &account)
	if err != nil {
		return nil, "", fmt.Errorf("client.UpdateAccount: %w", err)
	}
	return &account, msg, nil
}

// DeleteAccount removes a customer or manager.
func (c *Client) DeleteAccount(ctx context.Context, kind domain.SubjectType, id string) (string, error) {
	msg, err := c.call(ctx, http.MethodDelete, accountsPath(kind)+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return "", fmt.Errorf("client.DeleteAccount: %w", err)
	}
	return msg, nil
}

// ChangePassword rotates the password of a customer or manager.
func (c *Client) ChangePassword(ctx context.Context, kind domain.SubjectType, id string, req ChangePasswordRequest) (string, error) {
	msg, err := c.call(ctx, http.MethodPatch, accountsPath(kind)+"/changePassword/"+url.PathEscape(id), req, nil)
	if err != nil {
		return "", fmt.Errorf("client.ChangePassword: %w", err)
	}
	return msg, nil
}

func accountsPath(kind domain.SubjectType) string {
	if kind == domain.SubjectTypeManager {
		return "/managers"
	}
	return "/customers"
}
