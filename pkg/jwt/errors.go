package jwt

import "errors"

var (
	// ErrMalformedToken is returned when a token is not a three-segment JWT
	// or its payload segment cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")
	// ErrMissingExpiry is returned when the token payload has no exp claim.
	ErrMissingExpiry = errors.New("token has no expiry claim")
	// ErrMissingSubject is returned when the token payload has no sub claim.
	ErrMissingSubject = errors.New("token has no subject claim")
)
