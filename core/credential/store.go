package credential

import (
	"context"
	"errors"
	"time"

	"github.com/hrforge/cvclient/pkg/jwt"
)

// Role names a credential slot. Two slots exist per session: a short-lived
// access token authorizing API calls and a longer-lived refresh token used
// only to mint new access tokens.
type Role string

const (
	// RoleAccess is the short-lived credential attached to API requests.
	RoleAccess Role = "accessToken"
	// RoleRefresh is the long-lived credential exchanged for access tokens.
	RoleRefresh Role = "refreshToken"
)

const (
	// bearerPrefix is prepended to credentials at persistence time so the
	// stored value is attachable to an authorization header verbatim.
	bearerPrefix = "Bearer "

	// accessExpiryBackoff shortens the persisted lifetime of access
	// credentials so one never expires between the validity check and its
	// arrival at the server.
	accessExpiryBackoff = 5 * time.Second

	// wasAuthorizedKey persists the "user has logged in before" flag used by
	// consumers to decide whether silent re-authentication is worth a try.
	wasAuthorizedKey = "wasAuthorized"
)

// Store owns the persisted access and refresh credentials. It is the only
// writer of the underlying entries; all other components read credentials
// through it.
type Store struct {
	storage Storage
}

// NewStore creates a credential store over the given storage backend.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Get returns the persisted credential for role exactly as stored, including
// the "Bearer " prefix. Returns ErrNoCredential when the slot is empty or
// the entry's deadline has passed; the miss has no side effects beyond the
// storage's own lazy invalidation.
func (s *Store) Get(ctx context.Context, role Role) (string, error) {
	value, err := s.storage.Get(ctx, string(role))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNoCredential
		}
		return "", errors.Join(ErrStorageFailed, err)
	}
	return value, nil
}

// Set decodes the credential's embedded expiry and persists the token under
// role with that expiry as the entry deadline. Access credentials are stored
// with the deadline backed off by accessExpiryBackoff; refresh credentials
// keep their exact expiry. A credential whose expiry cannot be extracted is
// rejected with ErrMalformedCredential.
func (s *Store) Set(ctx context.Context, role Role, token string) error {
	expiresAt, err := jwt.ExpiresAt(token)
	if err != nil {
		return errors.Join(ErrMalformedCredential, err)
	}

	if role == RoleAccess {
		expiresAt = expiresAt.Add(-accessExpiryBackoff)
	}

	if err := s.storage.Set(ctx, string(role), bearerPrefix+token, expiresAt); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// Remove deletes the credential for role unconditionally.
func (s *Store) Remove(ctx context.Context, role Role) error {
	if err := s.storage.Remove(ctx, string(role)); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// Clear removes both credential slots. The first storage failure is
// returned, but both removals are always attempted.
func (s *Store) Clear(ctx context.Context) error {
	return errors.Join(
		s.Remove(ctx, RoleAccess),
		s.Remove(ctx, RoleRefresh),
	)
}

// SetWasAuthorized persists or clears the bootstrap flag marking that a user
// has logged in at least once from this storage.
func (s *Store) SetWasAuthorized(ctx context.Context, authorized bool) error {
	if !authorized {
		if err := s.storage.Remove(ctx, wasAuthorizedKey); err != nil {
			return errors.Join(ErrStorageFailed, err)
		}
		return nil
	}
	if err := s.storage.Set(ctx, wasAuthorizedKey, "true", time.Time{}); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// WasAuthorized reports whether the bootstrap flag is set. Storage failures
// read as false.
func (s *Store) WasAuthorized(ctx context.Context) bool {
	value, err := s.storage.Get(ctx, wasAuthorizedKey)
	return err == nil && value == "true"
}
