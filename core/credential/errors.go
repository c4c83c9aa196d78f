package credential

import "errors"

var (
	// ErrNotFound is returned by a Storage when a key is absent or its entry
	// has lazily expired.
	ErrNotFound = errors.New("credential entry not found")
	// ErrNoCredential is returned by the Store when no valid credential is
	// persisted for the requested role.
	ErrNoCredential = errors.New("no valid credential stored")
	// ErrMalformedCredential is returned by Set when the expiry cannot be
	// extracted from the credential. Persisting such a token would create an
	// entry with no computable deadline, so this is fatal to the caller.
	ErrMalformedCredential = errors.New("cannot extract expiry from credential")
	// ErrStorageFailed is returned when the underlying storage rejects an
	// operation for reasons other than a missing key.
	ErrStorageFailed = errors.New("credential storage operation failed")
)
