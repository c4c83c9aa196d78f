// Package auth implements the authenticated request pipeline: attaching
// bearer credentials to outgoing GraphQL operations and acquiring new
// access credentials when the stored one is missing or expired.
//
// The Authenticator is a gql.Interceptor. Per request it reads the access
// credential, awaits a refresh when the credential is absent and the
// operation is not auth-exempt (SIGN_IN, SIGN_UP and the refresh mutation
// itself), and attaches the resolved credential — falling back to the
// refresh credential, or to no header at all. Within one request the
// refresh strictly precedes header attachment and dispatch, so no request
// leaves with a known-stale credential.
//
// Concurrent requests that need a refresh share one in-flight exchange;
// they all wait for the same outcome instead of issuing duplicates.
//
// The Refresher performs the exchange itself: one UPDATE_TOKEN mutation,
// no internal retries. Without a locally present refresh credential it
// fails as unauthorized before any network call — the signal the session
// controller turns into a logout.
//
// Wiring order matters because the refresher dispatches through the same
// client the authenticator decorates:
//
//	client, _ := gql.New(endpoint)
//	refresher := auth.NewRefresher(store, client)
//	client.Use(auth.NewAuthenticator(store, refresher).Authorize())
package auth
