package auth_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/auth"
	"github.com/hrforge/cvclient/core/credential"
	"github.com/hrforge/cvclient/core/gql"
)

// mockDispatcher implements auth.Dispatcher for testing.
type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Do(ctx context.Context, req gql.Request, out any) error {
	args := m.Called(ctx, req, out)
	return args.Error(0)
}

// tokenExpiringAt builds an unsigned JWT carrying the given exp claim.
func tokenExpiringAt(exp time.Time) string {
	payload := base64.RawURLEncoding.EncodeToString(
		fmt.Appendf(nil, `{"sub":"42","exp":%d}`, exp.Unix()),
	)
	return "hdr." + payload + ".sig"
}

func newStoreWithRefresh(t *testing.T) *credential.Store {
	t.Helper()
	store := credential.NewStore(credential.NewMemoryStorage())
	require.NoError(t, store.Set(context.Background(), credential.RoleRefresh,
		tokenExpiringAt(time.Now().Add(24*time.Hour))))
	return store
}

func TestRefresherRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects unauthorized without refresh credential and without network calls", func(t *testing.T) {
		t.Parallel()

		store := credential.NewStore(credential.NewMemoryStorage())
		client := &mockDispatcher{}

		refresher := auth.NewRefresher(store, client)
		_, err := refresher.Refresh(ctx)

		assert.True(t, apierror.IsUnauthorized(err))
		client.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exchanges refresh credential and stores the new access token", func(t *testing.T) {
		t.Parallel()

		store := newStoreWithRefresh(t)
		newAccess := tokenExpiringAt(time.Now().Add(10 * time.Minute))

		client := &mockDispatcher{}
		client.On("Do", mock.Anything, mock.MatchedBy(func(req gql.Request) bool {
			return req.OperationName == auth.OpUpdateToken
		}), mock.Anything).Run(func(args mock.Arguments) {
			out := args.Get(2).(*struct {
				UpdateToken struct {
					AccessToken string `json:"access_token"`
				} `json:"updateToken"`
			})
			out.UpdateToken.AccessToken = newAccess
		}).Return(nil).Once()

		refresher := auth.NewRefresher(store, client)
		got, err := refresher.Refresh(ctx)
		require.NoError(t, err)
		assert.Equal(t, newAccess, got)

		stored, err := store.Get(ctx, credential.RoleAccess)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+newAccess, stored)
		client.AssertExpectations(t)
	})

	t.Run("propagates exchange failure unchanged", func(t *testing.T) {
		t.Parallel()

		store := newStoreWithRefresh(t)
		exchangeErr := errors.New("Unauthorized")

		client := &mockDispatcher{}
		client.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(exchangeErr).Once()

		refresher := auth.NewRefresher(store, client)
		_, err := refresher.Refresh(ctx)
		assert.ErrorIs(t, err, exchangeErr)

		// No access credential was persisted.
		_, err = store.Get(ctx, credential.RoleAccess)
		assert.ErrorIs(t, err, credential.ErrNoCredential)
	})

	t.Run("one invocation performs exactly one exchange", func(t *testing.T) {
		t.Parallel()

		store := newStoreWithRefresh(t)
		client := &mockDispatcher{}
		client.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

		refresher := auth.NewRefresher(store, client)
		_, _ = refresher.Refresh(ctx)

		client.AssertNumberOfCalls(t, "Do", 1)
	})

	t.Run("rejects a malformed access token from the server", func(t *testing.T) {
		t.Parallel()

		store := newStoreWithRefresh(t)
		client := &mockDispatcher{}
		client.On("Do", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			out := args.Get(2).(*struct {
				UpdateToken struct {
					AccessToken string `json:"access_token"`
				} `json:"updateToken"`
			})
			out.UpdateToken.AccessToken = "not-a-jwt"
		}).Return(nil).Once()

		refresher := auth.NewRefresher(store, client)
		_, err := refresher.Refresh(ctx)
		assert.ErrorIs(t, err, credential.ErrMalformedCredential)
	})
}
