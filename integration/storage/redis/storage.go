package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrforge/cvclient/core/credential"
)

// Storage persists credential entries in Redis. Expiration is delegated to
// Redis key TTLs, so expired entries disappear without any sweeping on our
// side. Safe for concurrent use and for sharing credentials across processes.
type Storage struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ credential.Storage = (*Storage)(nil)

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithKeyPrefix namespaces all keys written by the storage. The default
// prefix is "cvclient:".
func WithKeyPrefix(prefix string) StorageOption {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// WithStorageTimeFunc overrides the clock used to convert absolute deadlines
// into TTLs.
func WithStorageTimeFunc(now func() time.Time) StorageOption {
	return func(s *Storage) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStorage wraps an established Redis client as a credential storage.
func NewStorage(client *redis.Client, opts ...StorageOption) *Storage {
	s := &Storage{
		client: client,
		prefix: "cvclient:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored value or credential.ErrNotFound for absent and
// expired keys alike.
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", credential.ErrNotFound
		}
		return "", errors.Join(credential.ErrStorageFailed, err)
	}
	return value, nil
}

// Set stores value under key. A zero expiresAt persists the entry without a
// TTL; a deadline already in the past drops the entry instead of writing a
// dead key.
func (s *Storage) Set(ctx context.Context, key, value string, expiresAt time.Time) error {
	var ttl time.Duration
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Remove(ctx, key)
		}
	}
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return errors.Join(credential.ErrStorageFailed, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing a missing key is not an error.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(credential.ErrStorageFailed, err)
	}
	return nil
}
