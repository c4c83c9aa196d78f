// Package credential persists the two bearer credentials of a session: the
// short-lived access token and the longer-lived refresh token.
//
// The Store decodes each token's embedded expiry at write time and persists
// the token with that expiry as the storage entry's own deadline, so a read
// never returns a credential the server would already reject. Access tokens
// are stored with the deadline pulled in by a small safety margin to close
// the race between an expiry check and the request reaching the server.
//
// Storage backends implement the Storage interface. MemoryStorage covers
// single-process use; redis- and postgres-backed implementations live under
// integration/storage for deployments that share credentials across
// instances.
//
// # Usage
//
//	store := credential.NewStore(credential.NewMemoryStorage())
//
//	if err := store.Set(ctx, credential.RoleAccess, accessToken); err != nil {
//		// token was not a decodable JWT
//	}
//
//	header, err := store.Get(ctx, credential.RoleAccess)
//	// header == "Bearer <token>" while the token is still fresh,
//	// credential.ErrNoCredential afterwards.
package credential
