package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/phoneshop-web/internal/auth"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/session"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// AuthService coordinates login, registration and logout.
type AuthService struct {
	api      *client.Client
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(api *client.Client, sessions *session.Manager, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: api, sessions: sessions, logger: logger}
}

// LoginCustomer authenticates a shopper and opens a session under a fresh id,
// retiring previousID.
func (s *AuthService) LoginCustomer(ctx context.Context, previousID, email, password string) (domain.Session, error) {
	return s.login(ctx, previousID, email, password, s.api.LoginCustomer)
}

// LoginManager authenticates back-office staff.
func (s *AuthService) LoginManager(ctx context.Context, previousID, email, password string) (domain.Session, error) {
	return s.login(ctx, previousID, email, password, s.api.LoginManager)
}

func (s *AuthService) login(
	ctx context.Context,
	previousID, email, password string,
	exchange func(context.Context, client.LoginRequest) (string, error),
) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, apperrors.NewValidationError("email and password required", nil)
	}

	token, err := exchange(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, err
	}

	// Nothing is written until the credential decodes.
	cred, err := auth.DecodeCredential(token)
	if err != nil {
		s.logger.Warn("rejected credential from login", zap.Error(err))
		if errors.Is(err, auth.ErrCredentialExpired) {
			return domain.Session{}, credentialRejected("CREDENTIAL_EXPIRED", "Login failed: the credential has already expired")
		}
		return domain.Session{}, credentialRejected("MALFORMED_CREDENTIAL", "Login failed: the server returned an unreadable credential")
	}

	sess, err := s.sessions.Rotate(ctx, previousID, session.Grant{
		Token:     cred.Token,
		SubjectID: cred.SubjectID,
		Subject:   cred.Subject,
		Role:      cred.Role,
		ExpiresAt: cred.ExpiresAt,
	})
	if err != nil {
		return domain.Session{}, apperrors.NewInternalError(err)
	}
	return sess, nil
}

// Register creates a customer account. The shopper logs in afterwards.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return "", apperrors.NewValidationError("name, email, password required", nil)
	}
	msg, err := s.api.RegisterCustomer(ctx, client.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return fallback(msg, "Register successfully! Please login."), nil
}

// ForgotPassword requests a reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", apperrors.NewValidationError("email required", nil)
	}
	msg, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		return "", err
	}
	return fallback(msg, "The password reset request has been sent! Please check your email."), nil
}

// Logout destroys the session wholesale.
func (s *AuthService) Logout(ctx context.Context, id string) error {
	return s.sessions.Clear(ctx, id)
}

func fallback(msg, def string) string {
	if strings.TrimSpace(msg) == "" {
		return def
	}
	return msg
}

// credentialRejected reports an unusable login credential as a 502 shown with a warning banner.
func credentialRejected(code, message string) error {
	de := apperrors.NewDomainError(code, message, http.StatusBadGateway, nil)
	de.Severity = apperrors.SeverityWarning
	return de
}
