package auth

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hrforge/cvclient/core/credential"
	"github.com/hrforge/cvclient/core/gql"
)

// authorizationHeader is the header the resolved credential is attached to.
const authorizationHeader = "Authorization"

// RefreshInvoker acquires a new access credential. Satisfied by *Refresher.
type RefreshInvoker interface {
	Refresh(ctx context.Context) (string, error)
}

// Authenticator resolves the authorization header for every outgoing
// request and transparently recovers from a missing or expired access
// credential by invoking the refresher.
//
// Concurrent requests that all find the access credential missing share a
// single in-flight refresh instead of each issuing their own exchange; all
// of them wait for the shared exchange to settle before dispatching.
type Authenticator struct {
	store     *credential.Store
	refresher RefreshInvoker

	mu      sync.Mutex
	pending *refreshCall
}

// refreshCall is one in-flight refresh shared by its waiters.
type refreshCall struct {
	done chan struct{}
	err  error
}

// NewAuthenticator creates an authenticator over the given store and
// refresher.
func NewAuthenticator(store *credential.Store, refresher RefreshInvoker) *Authenticator {
	return &Authenticator{
		store:     store,
		refresher: refresher,
	}
}

// exempt reports whether the operation may proceed without a valid access
// credential. Unknown and empty operation names require authentication.
func exempt(operationName string) bool {
	switch operationName {
	case OpUpdateToken, OpSignIn, OpSignUp:
		return true
	}
	return false
}

// Authorize returns the interceptor that decorates every outgoing request
// with an authorization header before it reaches the network:
//
//  1. read the access credential
//  2. if absent and the operation is not auth-exempt, await a refresh and
//     re-read
//  3. attach the access credential; fall back to a fresh refresh-credential
//     read; attach nothing when both are absent
//
// A failed refresh propagates and the request never reaches the network.
func (a *Authenticator) Authorize() gql.Interceptor {
	return func(next gql.DoFunc) gql.DoFunc {
		return func(ctx context.Context, req gql.Request) (json.RawMessage, error) {
			req = req.Clone()

			access, _ := a.store.Get(ctx, credential.RoleAccess)
			if access == "" && !exempt(req.OperationName) {
				if err := a.awaitRefresh(ctx); err != nil {
					return nil, err
				}
				access, _ = a.store.Get(ctx, credential.RoleAccess)
			}

			header := access
			if header == "" {
				header, _ = a.store.Get(ctx, credential.RoleRefresh)
			}
			if header != "" {
				req.Header.Set(authorizationHeader, header)
			}

			return next(ctx, req)
		}
	}
}

// awaitRefresh joins the in-flight refresh, starting one when none is
// running. Every waiter observes the same outcome.
func (a *Authenticator) awaitRefresh(ctx context.Context) error {
	a.mu.Lock()
	if call := a.pending; call != nil {
		a.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	a.pending = call
	a.mu.Unlock()

	_, err := a.refresher.Refresh(ctx)
	call.err = err

	a.mu.Lock()
	a.pending = nil
	a.mu.Unlock()
	close(call.done)

	return err
}
