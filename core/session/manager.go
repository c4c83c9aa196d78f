package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/auth"
	"github.com/hrforge/cvclient/core/credential"
	"github.com/hrforge/cvclient/core/gql"
	"github.com/hrforge/cvclient/core/logger"
	"github.com/hrforge/cvclient/pkg/jwt"
)

// State is the session lifecycle state.
type State int

const (
	// StateAnonymous means no user is signed in.
	StateAnonymous State = iota
	// StateAuthenticating means a sign-in or sign-up call is in flight.
	StateAuthenticating
	// StateAuthenticated means a user is signed in.
	StateAuthenticated
)

const signInQuery = `query SIGN_IN($auth: AuthInput!) {
  login(auth: $auth) {
    user {
      id
      email
      profile {
        first_name
        last_name
        full_name
        avatar
      }
    }
    access_token
    refresh_token
  }
}`

const signUpMutation = `mutation SIGN_UP($auth: AuthInput!) {
  signup(auth: $auth) {
    user {
      id
      email
      profile {
        first_name
        last_name
        full_name
        avatar
      }
    }
    access_token
    refresh_token
  }
}`

const userQuery = `query USER($userId: ID!) {
  user(userId: $userId) {
    id
    email
    profile {
      first_name
      last_name
      full_name
      avatar
    }
  }
}`

// Localizer resolves a message key to the display string of the active
// locale. Satisfied by i18n.Translator.
type Localizer interface {
	T(key string) string
}

// identityLocalizer falls back to showing raw keys when no translator is
// wired.
type identityLocalizer struct{}

func (identityLocalizer) T(key string) string { return key }

// Manager owns the session lifecycle: login and registration, explicit and
// failure-triggered logout, and silent re-authentication from a stored
// credential at bootstrap. It is the only writer of the current user and the
// only component that reacts to the unauthorized category.
type Manager struct {
	store     *credential.Store
	client    auth.Dispatcher
	notifier  Notifier
	localizer Localizer
	log       *slog.Logger

	mu    sync.Mutex
	state State
	user  *User
	gate  noticeGate

	subMu       sync.Mutex
	subscribers []chan struct{}
}

// Option configures the Manager.
type Option func(*Manager)

// WithNotifier sets the notification sink for the session-expired notice.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLocalizer sets the translator for user-visible messages.
func WithLocalizer(l Localizer) Option {
	return func(m *Manager) {
		if l != nil {
			m.localizer = l
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a session manager. The dispatcher must be the fully
// authenticated client so identity fetches go through the authorization
// pipeline; sign-in and sign-up are auth-exempt and pass through untouched.
func NewManager(store *credential.Store, client auth.Dispatcher, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		client:    client,
		localizer: identityLocalizer{},
		log:       slog.Default(),
		state:     StateAnonymous,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.notifier == nil {
		m.notifier = slogNotifier{log: m.log}
	}
	return m
}

// Login signs in with an email/password pair. On success both credentials
// are persisted, the current user is populated, and the notice gate resets
// so a later unauthenticated episode can notify again. On failure the
// session stays anonymous and the categorized error is returned.
func (m *Manager) Login(ctx context.Context, email, password string) (User, error) {
	return m.authenticate(ctx, gql.Request{
		OperationName: auth.OpSignIn,
		Query:         signInQuery,
		Variables:     authVariables(email, password),
	}, "login")
}

// Register signs up a new account. Behaves like Login on success and
// failure.
func (m *Manager) Register(ctx context.Context, email, password string) (User, error) {
	return m.authenticate(ctx, gql.Request{
		OperationName: auth.OpSignUp,
		Query:         signUpMutation,
		Variables:     authVariables(email, password),
	}, "signup")
}

func authVariables(email, password string) map[string]any {
	return map[string]any{
		"auth": map[string]any{
			"email":    email,
			"password": password,
		},
	}
}

func (m *Manager) setState(state State) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

func (m *Manager) authenticate(ctx context.Context, req gql.Request, field string) (User, error) {
	m.setState(StateAuthenticating)

	var out map[string]authPayload
	if err := m.client.Do(ctx, req, &out); err != nil {
		m.setState(StateAnonymous)
		return User{}, apierror.Categorize(err)
	}
	payload := out[field]

	if err := m.store.Set(ctx, credential.RoleAccess, payload.AccessToken); err != nil {
		m.setState(StateAnonymous)
		return User{}, err
	}
	if err := m.store.Set(ctx, credential.RoleRefresh, payload.RefreshToken); err != nil {
		m.setState(StateAnonymous)
		return User{}, err
	}
	if err := m.store.SetWasAuthorized(ctx, true); err != nil {
		m.log.LogAttrs(ctx, slog.LevelWarn, "failed to persist authorization flag",
			logger.Component("session"), logger.Error(err))
	}

	user := payload.User.toUser()

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = &user
	m.mu.Unlock()
	m.gate.reset()

	m.log.LogAttrs(ctx, slog.LevelInfo, "session authenticated",
		logger.Component("session"), logger.UserID(user.ID))
	return user, nil
}

// Logout transitions the session to anonymous: the current user is cleared,
// both stored credentials are removed, and — at most once per
// unauthenticated episode — the session-expired notice is shown. Calling
// Logout again in the same episode repeats the cleanup but stays silent.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.log.LogAttrs(ctx, slog.LevelWarn, "failed to clear credentials",
			logger.Component("session"), logger.Error(err))
	}
	if err := m.store.SetWasAuthorized(ctx, false); err != nil {
		m.log.LogAttrs(ctx, slog.LevelWarn, "failed to clear authorization flag",
			logger.Component("session"), logger.Error(err))
	}

	if m.gate.shouldShow() {
		m.notifier.ShowError(m.localizer.T("errors." + string(apierror.KindUnauthorized)))
	}

	m.broadcastUnauthenticated()
}

// HandleError routes an operation failure: the unauthorized category
// triggers Logout (with its one-time notice), every other category is
// returned untouched for the caller to display. The returned error is
// always categorized; nil stays nil.
func (m *Manager) HandleError(ctx context.Context, err error) error {
	cerr := apierror.Categorize(err)
	if cerr == nil {
		return nil
	}
	if cerr.Kind() == apierror.KindUnauthorized {
		m.Logout(ctx)
	}
	return cerr
}

// Bootstrap silently re-authenticates from a stored credential: when a valid
// access or refresh credential exists, the user id is decoded from it and
// the identity fetched through the authenticated pipeline. With no stored
// credential the session stays anonymous, no network call is made, and
// ErrNoStoredSession is returned.
func (m *Manager) Bootstrap(ctx context.Context) (User, error) {
	token, err := m.store.Get(ctx, credential.RoleAccess)
	if err != nil {
		token, err = m.store.Get(ctx, credential.RoleRefresh)
	}
	if err != nil {
		return User{}, ErrNoStoredSession
	}

	userID, err := jwt.Subject(token)
	if err != nil {
		return User{}, apierror.New(apierror.KindUnauthorized, err)
	}

	var out struct {
		User userPayload `json:"user"`
	}
	if err := m.client.Do(ctx, gql.Request{
		OperationName: "USER",
		Query:         userQuery,
		Variables:     map[string]any{"userId": userID},
	}, &out); err != nil {
		return User{}, apierror.Categorize(err)
	}

	user := out.User.toUser()

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = &user
	m.mu.Unlock()

	m.log.LogAttrs(ctx, slog.LevelInfo, "session restored",
		logger.Component("session"), logger.UserID(user.ID))
	return user, nil
}

// CurrentUser returns the signed-in user, if any.
func (m *Manager) CurrentUser() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// WasAuthorized reports whether a user has logged in from this storage
// before. UI layers use it to decide whether Bootstrap is worth calling.
func (m *Manager) WasAuthorized(ctx context.Context) bool {
	return m.store.WasAuthorized(ctx)
}

// Unauthenticated returns a channel that receives a signal each time the
// session becomes unauthenticated. The channel is buffered and delivery is
// non-blocking: a subscriber that has not consumed the previous signal does
// not stall logout. Subscriptions live as long as the manager.
func (m *Manager) Unauthenticated() <-chan struct{} {
	ch := make(chan struct{}, 1)

	m.subMu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.subMu.Unlock()

	return ch
}

func (m *Manager) broadcastUnauthenticated() {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for _, ch := range m.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
