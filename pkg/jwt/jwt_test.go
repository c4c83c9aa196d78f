package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrforge/cvclient/pkg/jwt"
)

// makeToken builds an unsigned three-segment token with the given payload.
func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("extracts standard claims", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(time.Hour).Unix()
		token := makeToken(t, map[string]any{"sub": "42", "exp": exp, "iat": exp - 3600})

		claims, err := jwt.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "42", claims.Subject)
		assert.Equal(t, exp, claims.ExpiresAt)
		assert.Equal(t, exp-3600, claims.IssuedAt)
	})

	t.Run("tolerates bearer prefix", func(t *testing.T) {
		t.Parallel()

		token := "Bearer " + makeToken(t, map[string]any{"sub": "7", "exp": time.Now().Add(time.Minute).Unix()})

		claims, err := jwt.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "7", claims.Subject)
	})

	t.Run("tolerates padded base64 payloads", func(t *testing.T) {
		t.Parallel()

		body, err := json.Marshal(map[string]any{"sub": "9"})
		require.NoError(t, err)
		token := "hdr." + base64.StdEncoding.EncodeToString(body) + ".sig"

		claims, err := jwt.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "9", claims.Subject)
	})

	t.Run("rejects non three-segment input", func(t *testing.T) {
		t.Parallel()

		_, err := jwt.Decode("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrMalformedToken)

		_, err = jwt.Decode("a.b")
		assert.ErrorIs(t, err, jwt.ErrMalformedToken)
	})

	t.Run("rejects undecodable payload", func(t *testing.T) {
		t.Parallel()

		_, err := jwt.Decode("hdr.!!!not-base64!!!.sig")
		assert.ErrorIs(t, err, jwt.ErrMalformedToken)
	})

	t.Run("rejects non-json payload", func(t *testing.T) {
		t.Parallel()

		seg := base64.RawURLEncoding.EncodeToString([]byte("plain text"))
		_, err := jwt.Decode("hdr." + seg + ".sig")
		assert.ErrorIs(t, err, jwt.ErrMalformedToken)
	})
}

func TestExpiresAt(t *testing.T) {
	t.Parallel()

	t.Run("returns embedded expiry", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(10 * time.Minute).Truncate(time.Second)
		token := makeToken(t, map[string]any{"exp": exp.Unix()})

		got, err := jwt.ExpiresAt(token)
		require.NoError(t, err)
		assert.True(t, got.Equal(exp))
	})

	t.Run("fails without exp claim", func(t *testing.T) {
		t.Parallel()

		token := makeToken(t, map[string]any{"sub": "42"})

		_, err := jwt.ExpiresAt(token)
		assert.ErrorIs(t, err, jwt.ErrMissingExpiry)
	})
}

func TestSubject(t *testing.T) {
	t.Parallel()

	t.Run("returns sub claim", func(t *testing.T) {
		t.Parallel()

		token := makeToken(t, map[string]any{"sub": "user-1"})

		sub, err := jwt.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", sub)
	})

	t.Run("fails without sub claim", func(t *testing.T) {
		t.Parallel()

		token := makeToken(t, map[string]any{"exp": time.Now().Unix()})

		_, err := jwt.Subject(token)
		assert.ErrorIs(t, err, jwt.ErrMissingSubject)
	})
}

func TestClaimsIsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.False(t, jwt.Claims{ExpiresAt: now.Add(time.Minute).Unix()}.IsExpired(now))
	assert.True(t, jwt.Claims{ExpiresAt: now.Add(-time.Minute).Unix()}.IsExpired(now))
	assert.True(t, jwt.Claims{}.IsExpired(now), "missing exp is treated as expired")
}
