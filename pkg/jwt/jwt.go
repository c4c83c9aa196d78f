package jwt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Claims holds the payload fields the client inspects. Signature verification
// is the server's job; the client only needs expiry and subject.
type Claims struct {
	// Subject identifies the user the token was issued for.
	Subject string `json:"sub"`

	// ExpiresAt is the expiration time as Unix seconds.
	ExpiresAt int64 `json:"exp"`

	// IssuedAt is the issue time as Unix seconds.
	IssuedAt int64 `json:"iat"`

	// Email is an optional identity hint some issuers embed.
	Email string `json:"email,omitempty"`
}

// Expiry returns the expiration as time.Time.
// Returns the zero time when the claim is absent.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(c.ExpiresAt, 0)
}

// IsExpired reports whether the token expired relative to now.
// Tokens without an exp claim are treated as expired.
func (c Claims) IsExpired(now time.Time) bool {
	if c.ExpiresAt == 0 {
		return true
	}
	return !now.Before(c.Expiry())
}

// Decode extracts the claims from a compact JWT without verifying the
// signature. A leading "Bearer " prefix is tolerated: it becomes part of the
// first segment, which Decode never inspects.
func Decode(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}

	return claims, nil
}

// ExpiresAt returns the embedded expiration time of the token.
// Fails with ErrMissingExpiry when the payload carries no exp claim.
func ExpiresAt(token string) (time.Time, error) {
	claims, err := Decode(token)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == 0 {
		return time.Time{}, ErrMissingExpiry
	}
	return claims.Expiry(), nil
}

// Subject returns the sub claim of the token.
func Subject(token string) (string, error) {
	claims, err := Decode(token)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

// decodeSegment handles the base64 variants seen in the wild: RFC 7515
// mandates raw URL encoding, but some issuers emit padded or standard
// alphabets.
func decodeSegment(seg string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	if b, err := base64.URLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.StdEncoding.DecodeString(seg)
}
