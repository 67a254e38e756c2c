package service

import (
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

const needLoginMessage = "You need to login"

// authorized returns an API client bound to the session's credential.
func authorized(api *client.Client, s domain.Session) (*client.Client, error) {
	if !s.LoggedIn() {
		return nil, apperrors.NewUnauthorized(needLoginMessage)
	}
	return api.WithToken(s.Token), nil
}

// customer returns the bound client and the customer id of the session.
func customer(api *client.Client, s domain.Session) (*client.Client, string, error) {
	c, err := authorized(api, s)
	if err != nil {
		return nil, "", err
	}
	id := s.CustomerID()
	if id == "" {
		return nil, "", apperrors.NewForbidden("customer account required")
	}
	return c, id, nil
}
