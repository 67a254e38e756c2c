package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

var (
	// ErrMalformedCredential signals a credential whose payload cannot be used.
	ErrMalformedCredential = errors.New("auth: malformed credential")
	// ErrCredentialExpired signals a credential already past its exp claim.
	ErrCredentialExpired = errors.New("auth: credential expired")
)

// Credential is what the client learns from a login response.
type Credential struct {
	Token     string
	Role      domain.Role
	SubjectID string
	Subject   domain.SubjectType
	ExpiresAt time.Time
}

type claimSubject struct {
	ID string `json:"id"`
}

// credentialClaims mirrors the payload issued by the API. The identity sits under
// "subject", or under "customer"/"manager" depending on which login issued it.
type credentialClaims struct {
	Role     string        `json:"role"`
	Subject  *claimSubject `json:"subject,omitempty"`
	Customer *claimSubject `json:"customer,omitempty"`
	Manager  *claimSubject `json:"manager,omitempty"`
	jwt.RegisteredClaims
}

// DecodeCredential reads role and subject from the payload segment.
// The signature is not verified; that is the API's job.
func DecodeCredential(token string) (*Credential, error) {
	return decodeCredentialAt(token, time.Now())
}

func decodeCredentialAt(token string, now time.Time) (*Credential, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedCredential)
	}

	claims := &credentialClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	role := domain.Role(strings.ToLower(strings.TrimSpace(claims.Role)))
	if !role.Valid() || role == domain.RoleGuest {
		return nil, fmt.Errorf("%w: unknown role %q", ErrMalformedCredential, claims.Role)
	}

	cred := &Credential{Token: token, Role: role}
	switch {
	case claims.Subject != nil && claims.Subject.ID != "":
		cred.SubjectID = claims.Subject.ID
		cred.Subject = domain.SubjectTypeFor(role)
	case claims.Customer != nil && claims.Customer.ID != "":
		cred.SubjectID = claims.Customer.ID
		cred.Subject = domain.SubjectTypeCustomer
	case claims.Manager != nil && claims.Manager.ID != "":
		cred.SubjectID = claims.Manager.ID
		cred.Subject = domain.SubjectTypeManager
	default:
		return nil, fmt.Errorf("%w: missing subject id", ErrMalformedCredential)
	}

	if claims.ExpiresAt != nil {
		cred.ExpiresAt = claims.ExpiresAt.Time
		if !cred.ExpiresAt.After(now) {
			return nil, ErrCredentialExpired
		}
	}
	return cred, nil
}
