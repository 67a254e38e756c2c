package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/phoneshop-web/internal/domain"
	"github.com/spec-kit/phoneshop-web/internal/persistence"
)

func TestPostgresStoreIntegration(t *testing.T) {
	dsn := os.Getenv("SESSION_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SESSION_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if err := persistence.RunMigrations(ctx, pool, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := NewPostgresStore(pool)
	id := NewID()
	t.Cleanup(func() { _ = store.Delete(context.Background(), id) })

	s := domain.Session{ID: id, Token: "tok", SubjectID: "c1", Subject: domain.SubjectTypeCustomer, Role: domain.RoleCustomer, CreatedAt: time.Now().UTC(), ExpiresAt: time.Now().Add(-time.Second).UTC()}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := store.Get(ctx, id)
	if err != nil || got == nil || got.SubjectID != "c1" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}

	removed, err := store.DeleteExpired(ctx, time.Now())
	if err != nil || removed < 1 {
		t.Fatalf("DeleteExpired() = %d, %v; want >=1", removed, err)
	}
	if got, _ := store.Get(ctx, id); got != nil {
		t.Fatal("expired session should be gone")
	}
}
