package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/phoneshop-web/internal/domain"
)

// pgxQuerier is the subset of pgxpool.Pool used by PostgresStore.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore keeps sessions in the sessions table.
type PostgresStore struct {
	db pgxQuerier
}

// NewPostgresStore builds a store over a pgx pool.
func NewPostgresStore(db pgxQuerier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Save(ctx context.Context, s domain.Session) error {
	if s.ID == "" {
		return errors.New("session: missing id")
	}
	const query = `
INSERT INTO sessions (id, token, subject_id, subject, role, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    token = EXCLUDED.token,
    subject_id = EXCLUDED.subject_id,
    subject = EXCLUDED.subject,
    role = EXCLUDED.role,
    created_at = EXCLUDED.created_at,
    expires_at = EXCLUDED.expires_at`
	_, err := p.db.Exec(ctx, query, s.ID, s.Token, s.SubjectID, string(s.Subject), string(s.Role), s.CreatedAt, nullableTime(s.ExpiresAt))
	return err
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	const query = `
SELECT id, token, subject_id, subject, role, created_at, expires_at
FROM sessions WHERE id = $1`

	var (
		s         domain.Session
		subject   string
		role      string
		expiresAt *time.Time
	)
	err := p.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Token, &s.SubjectID, &subject, &role, &s.CreatedAt, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.Subject = domain.SubjectType(subject)
	s.Role = domain.Role(role)
	if expiresAt != nil {
		s.ExpiresAt = *expiresAt
	}
	return &s, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
