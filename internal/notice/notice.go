// Package notice reduces every outcome shown to the shopper to a transient banner.
package notice

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/client"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

// GenericMessage is shown when the failure carries nothing readable.
const GenericMessage = "Something went wrong. Please try again later."

// DefaultDismiss is how long a banner stays up.
const DefaultDismiss = 3 * time.Second

// Notice is a self-dismissing banner.
type Notice struct {
	Message        string             `json:"message"`
	Severity       apperrors.Severity `json:"severity"`
	DismissAfterMs int64              `json:"dismissAfterMs"`
}

// Builder stamps notices with the configured dismissal delay.
type Builder struct {
	dismiss time.Duration
}

// NewBuilder returns a builder; non-positive delays fall back to DefaultDismiss.
func NewBuilder(dismiss time.Duration) Builder {
	if dismiss <= 0 {
		dismiss = DefaultDismiss
	}
	return Builder{dismiss: dismiss}
}

// Success reports a completed action.
func (b Builder) Success(message string) *Notice {
	return b.make(message, apperrors.SeveritySuccess)
}

// Info reports something neutral.
func (b Builder) Info(message string) *Notice {
	return b.make(message, apperrors.SeverityInfo)
}

// FromError classifies a failed operation.
func (b Builder) FromError(err error) *Notice {
	if err == nil {
		return nil
	}

	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = GenericMessage
		}
		return b.make(msg, apperrors.SeverityFor(httpErr.StatusCode))
	}

	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.Code != "INTERNAL_ERROR" {
		sev := domainErr.Severity
		if sev == "" {
			sev = apperrors.SeverityFor(domainErr.HTTPStatus)
		}
		return b.make(domainErr.Message, sev)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return b.make("The server took too long to respond. Please try again.", apperrors.SeverityError)
	}
	return b.make(GenericMessage, apperrors.SeverityError)
}

func (b Builder) make(message string, sev apperrors.Severity) *Notice {
	return &Notice{Message: message, Severity: sev, DismissAfterMs: b.dismiss.Milliseconds()}
}
