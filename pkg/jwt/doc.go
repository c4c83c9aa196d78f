// Package jwt provides decode-only inspection of JSON Web Tokens.
//
// The package extracts claims from the payload segment without verifying the
// signature. It exists for clients that need to know when a server-issued
// bearer token expires or which subject it was minted for; trust decisions
// stay with the server that validates the signature.
//
// # Usage
//
//	claims, err := jwt.Decode(token)
//	if err != nil {
//		// token is not a JWT
//	}
//	if claims.IsExpired(time.Now()) {
//		// request a fresh one
//	}
//
// Tokens prefixed with "Bearer " decode transparently since the prefix only
// touches the header segment, which is never inspected.
package jwt
