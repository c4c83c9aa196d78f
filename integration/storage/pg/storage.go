package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrforge/cvclient/core/credential"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS cvclient_credentials (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at TIMESTAMPTZ
)`

// Storage persists credential entries in a single Postgres table. Entries
// past their deadline are treated as absent on read; the row itself is only
// overwritten or removed by later writes, matching the lazy-expiry contract
// of credential.Storage.
type Storage struct {
	pool *pgxpool.Pool
}

var _ credential.Storage = (*Storage)(nil)

// NewStorage wraps an established connection pool as a credential storage.
// Call EnsureSchema once at startup before first use.
func NewStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// EnsureSchema creates the credentials table when it does not exist yet. The
// statement is idempotent and safe to run on every startup.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return errors.Join(ErrSchemaSetupFailed, err)
	}
	return nil
}

// Get returns the stored value or credential.ErrNotFound for absent and
// expired keys alike.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM cvclient_credentials
		 WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", credential.ErrNotFound
		}
		return "", errors.Join(credential.ErrStorageFailed, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous entry. A zero expiresAt
// persists the entry without a deadline.
func (s *Storage) Set(ctx context.Context, key, value string, expiresAt time.Time) error {
	var deadline *time.Time
	if !expiresAt.IsZero() {
		deadline = &expiresAt
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cvclient_credentials (key, value, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, deadline,
	)
	if err != nil {
		return errors.Join(credential.ErrStorageFailed, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing a missing key is not an error.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM cvclient_credentials WHERE key = $1`, key); err != nil {
		return errors.Join(credential.ErrStorageFailed, err)
	}
	return nil
}
