package auth

import (
	"context"
	"log/slog"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/credential"
	"github.com/hrforge/cvclient/core/gql"
	"github.com/hrforge/cvclient/core/logger"
)

// Operation names the authorization layer treats specially. These are the
// only operations allowed to proceed without a valid access credential;
// everything else, including requests with no declared operation name,
// requires authentication.
const (
	OpUpdateToken = "UPDATE_TOKEN"
	OpSignIn      = "SIGN_IN"
	OpSignUp      = "SIGN_UP"
)

const updateTokenMutation = `mutation UPDATE_TOKEN {
  updateToken {
    access_token
  }
}`

// Dispatcher issues a GraphQL operation. Satisfied by *gql.Client; the
// refresher's own mutation flows through the same interceptor chain as
// every other request, which is safe because UPDATE_TOKEN is auth-exempt.
type Dispatcher interface {
	Do(ctx context.Context, req gql.Request, out any) error
}

// Refresher trades the stored refresh credential for a new access
// credential. One invocation performs at most one network exchange and
// never retries; callers decide whether to call again.
type Refresher struct {
	store  *credential.Store
	client Dispatcher
	log    *slog.Logger
}

// RefresherOption configures the Refresher.
type RefresherOption func(*Refresher)

// WithRefresherLogger sets the logger.
func WithRefresherLogger(log *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRefresher creates a refresher over the given store and dispatcher.
func NewRefresher(store *credential.Store, client Dispatcher, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		store:  store,
		client: client,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refresh exchanges the stored refresh credential for a new access
// credential, persists it, and returns it. Fails with the unauthorized
// category before touching the network when no refresh credential is
// present locally. Network and protocol failures propagate unchanged.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	if _, err := r.store.Get(ctx, credential.RoleRefresh); err != nil {
		return "", apierror.New(apierror.KindUnauthorized, err)
	}

	var out struct {
		UpdateToken struct {
			AccessToken string `json:"access_token"`
		} `json:"updateToken"`
	}
	if err := r.client.Do(ctx, gql.Request{
		OperationName: OpUpdateToken,
		Query:         updateTokenMutation,
	}, &out); err != nil {
		r.log.LogAttrs(ctx, slog.LevelWarn, "access token refresh failed",
			logger.Component("auth"),
			logger.Error(err),
		)
		return "", err
	}

	if err := r.store.Set(ctx, credential.RoleAccess, out.UpdateToken.AccessToken); err != nil {
		return "", err
	}

	r.log.LogAttrs(ctx, slog.LevelDebug, "access token refreshed",
		logger.Component("auth"),
	)
	return out.UpdateToken.AccessToken, nil
}
