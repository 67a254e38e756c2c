package session

import (
	"context"
	"time"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// Store defines how session records are stored and retrieved.
// Records are always written whole.
type Store interface {
	Save(ctx context.Context, s domain.Session) error
	// Get returns (nil, nil) when no record exists.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired purges records whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Ping(ctx context.Context) error
}
