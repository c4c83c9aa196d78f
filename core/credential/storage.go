package credential

import (
	"context"
	"sync"
	"time"
)

// Storage is the durable key-value backend the Store persists credentials in.
// Implementations must honor per-entry expiration: Get returns ErrNotFound
// for absent keys and for keys whose deadline has passed. Expired entries are
// invalidated lazily on read; no background sweeping is required.
type Storage interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A zero expiresAt means the entry never
	// expires on its own.
	Set(ctx context.Context, key, value string, expiresAt time.Time) error
	// Remove deletes the entry unconditionally. Removing a missing key is
	// not an error.
	Remove(ctx context.Context, key string) error
}

// memoryEntry is a value with an optional deadline.
type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStorage is an in-process Storage. It is safe for concurrent use and
// suits single-instance deployments and tests; multi-instance deployments
// should use one of the integration/storage backends.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// MemoryStorageOption configures a MemoryStorage.
type MemoryStorageOption func(*MemoryStorage)

// WithTimeFunc overrides the clock used for expiry checks.
func WithTimeFunc(now func() time.Time) MemoryStorageOption {
	return func(s *MemoryStorage) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage(opts ...MemoryStorageOption) *MemoryStorage {
	s := &MemoryStorage{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored value, lazily dropping the entry when its deadline
// has passed.
func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	if entry.expired(s.now()) {
		delete(s.entries, key)
		return "", ErrNotFound
	}
	return entry.value, nil
}

// Set stores value under key with an optional deadline.
func (s *MemoryStorage) Set(_ context.Context, key, value string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{value: value, expiresAt: expiresAt}
	return nil
}

// Remove deletes the entry for key.
func (s *MemoryStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
