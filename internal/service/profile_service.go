package service

import (
	"context"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// ProfileService reads and edits the signed-in account.
type ProfileService struct {
	api *client.Client
}

// NewProfileService builds the service.
func NewProfileService(api *client.Client) *ProfileService {
	return &ProfileService{api: api}
}

// Get returns the account behind the session.
func (s *ProfileService) Get(ctx context.Context, sess domain.Session) (*domain.Account, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, err
	}
	return api.GetAccount(ctx, subjectOf(sess), sess.SubjectID)
}

// Update edits name, phone and address. Role and password are not editable here.
func (s *ProfileService) Update(ctx context.Context, sess domain.Session, in client.AccountInput) (*domain.Account, string, error) {
	api, err := authorized(s.api, sess)
	if err != nil {
		return nil, "", err
	}
	in.Password = ""
	in.Role = ""
	account, msg, err := api.UpdateAccount(ctx, subjectOf(sess), sess.SubjectID, in)
	if err != nil {
		return nil, "", err
	}
	return account, fallback(msg, "Profile updated"), nil
}

// ChangePassword rotates the signed-in account's password.
func (s *ProfileService) ChangePassword(ctx context.Context, sess domain.Session, req client.ChangePasswordRequest) (string, error) {
	if req.OldPassword == "" || req.NewPassword == "" {
		return "", apperrors.NewValidationError("old and new password required", nil)
	}
	if req.OldPassword == req.NewPassword {
		return "", apperrors.NewValidationError("new password must differ from the old one", nil)
	}
	api, err := authorized(s.api, sess)
	if err != nil {
		return "", err
	}
	msg, err := api.ChangePassword(ctx, subjectOf(sess), sess.SubjectID, req)
	if err != nil {
		return "", err
	}
	return fallback(msg, "Password changed"), nil
}

func subjectOf(sess domain.Session) domain.SubjectType {
	if sess.Subject != "" {
		return sess.Subject
	}
	return domain.SubjectTypeFor(sess.Role)
}
