// Package cvclient is a Go SDK for the CV-Hub GraphQL API with transparent
// authentication: tokens are decoded, persisted and refreshed behind the
// request pipeline, so callers only see typed services and categorized
// errors.
package cvclient

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/auth"
	"github.com/hrforge/cvclient/core/config"
	"github.com/hrforge/cvclient/core/credential"
	"github.com/hrforge/cvclient/core/gql"
	"github.com/hrforge/cvclient/core/i18n"
	"github.com/hrforge/cvclient/core/session"
	"github.com/hrforge/cvclient/service"
)

// Config contains the SDK settings with environment variable mappings.
type Config struct {
	GraphQLURL     string        `env:"CVHUB_GRAPHQL_URL,required"`
	RequestTimeout time.Duration `env:"CVHUB_REQUEST_TIMEOUT" envDefault:"30s"`
	Locale         string        `env:"CVHUB_LOCALE" envDefault:"en"`
}

// LoadConfig reads the SDK configuration from the environment, honoring a
// .env file when one exists.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type options struct {
	logger       *slog.Logger
	notifier     session.Notifier
	storage      credential.Storage
	httpClient   *http.Client
	localeLoader i18n.Loader
}

// Option customizes the assembled client.
type Option func(*options)

// WithLogger sets the logger shared by the pipeline components.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithNotifier sets the sink for user-facing session notices.
func WithNotifier(n session.Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithStorage sets the credential backend. The default is an in-process
// store; use the integration/storage backends to share a session across
// processes.
func WithStorage(s credential.Storage) Option {
	return func(o *options) {
		if s != nil {
			o.storage = s
		}
	}
}

// WithHTTPClient replaces the transport used for GraphQL requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithLocaleLoader replaces the embedded locale bundles.
func WithLocaleLoader(l i18n.Loader) Option {
	return func(o *options) {
		if l != nil {
			o.localeLoader = l
		}
	}
}

// Client is the assembled SDK: one authenticated GraphQL pipeline shared by
// the session manager and all entity services.
type Client struct {
	gqlClient *gql.Client
	store     *credential.Store
	session   *session.Manager
	bundle    *i18n.I18n
	locale    *localeSwitch

	users       *service.Users
	cvs         *service.CVs
	skills      *service.Skills
	languages   *service.Languages
	projects    *service.Projects
	departments *service.Departments
	positions   *service.Positions
}

// New assembles the client. The returned client is ready for anonymous
// operations immediately; call Session().Login or Session().Bootstrap to
// authenticate.
func New(cfg Config, opts ...Option) (*Client, error) {
	o := options{
		logger:       slog.Default(),
		localeLoader: i18n.DefaultLoader(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if o.storage == nil {
		o.storage = credential.NewMemoryStorage()
	}

	store := credential.NewStore(o.storage)

	gqlClient, err := gql.New(cfg.GraphQLURL,
		gql.WithHTTPClient(o.httpClient),
		gql.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	// Interceptor order matters: the request ID and log entry must cover the
	// whole exchange, including any refresh the authorizer performs.
	refresher := auth.NewRefresher(store, gqlClient, auth.WithRefresherLogger(o.logger))
	gqlClient.Use(
		gql.RequestID(),
		gql.Logging(o.logger),
		auth.NewAuthenticator(store, refresher).Authorize(),
	)

	bundle := i18n.New(
		i18n.WithLoader(o.localeLoader),
		i18n.WithLogger(o.logger),
	)
	locale := &localeSwitch{}

	lang := cfg.Locale
	if lang == "" {
		lang = i18n.MatchLocale()
	}
	// A failing bundle load must not block construction; the translator
	// falls back to raw keys until SetLocale succeeds.
	if err := bundle.EnsureLoaded(context.Background(), lang); err != nil {
		o.logger.Warn("locale bundle unavailable",
			slog.String("lang", lang),
			slog.Any("error", err))
	}
	locale.swap(bundle.Translator(lang))

	sessionOpts := []session.Option{
		session.WithLocalizer(locale),
		session.WithLogger(o.logger),
	}
	if o.notifier != nil {
		sessionOpts = append(sessionOpts, session.WithNotifier(o.notifier))
	}
	mgr := session.NewManager(store, gqlClient, sessionOpts...)

	dispatch := &sessionDispatcher{client: gqlClient, session: mgr}

	return &Client{
		gqlClient:   gqlClient,
		store:       store,
		session:     mgr,
		bundle:      bundle,
		locale:      locale,
		users:       service.NewUsers(dispatch),
		cvs:         service.NewCVs(dispatch),
		skills:      service.NewSkills(dispatch),
		languages:   service.NewLanguages(dispatch),
		projects:    service.NewProjects(dispatch),
		departments: service.NewDepartments(dispatch),
		positions:   service.NewPositions(dispatch),
	}, nil
}

// SetLocale loads the bundle for lang and switches all user-facing messages
// to it. The failure is categorized per language so callers can surface the
// matching notice.
func (c *Client) SetLocale(ctx context.Context, lang string) error {
	if err := c.bundle.EnsureLoaded(ctx, lang); err != nil {
		return apierror.Categorize(err)
	}
	c.locale.swap(c.bundle.Translator(lang))
	return nil
}

// Locale returns the active language.
func (c *Client) Locale() string { return c.locale.current().Lang() }

// Session returns the session manager for login, logout and bootstrap.
func (c *Client) Session() *session.Manager { return c.session }

// GQL exposes the authenticated client for operations the typed services do
// not cover.
func (c *Client) GQL() *gql.Client { return c.gqlClient }

// Users returns the accounts service.
func (c *Client) Users() *service.Users { return c.users }

// CVs returns the curriculum vitae service.
func (c *Client) CVs() *service.CVs { return c.cvs }

// Skills returns the skill reference-table service.
func (c *Client) Skills() *service.Skills { return c.skills }

// Languages returns the language reference-table service.
func (c *Client) Languages() *service.Languages { return c.languages }

// Projects returns the projects service.
func (c *Client) Projects() *service.Projects { return c.projects }

// Departments returns the department reference-table service.
func (c *Client) Departments() *service.Departments { return c.departments }

// Positions returns the position reference-table service.
func (c *Client) Positions() *service.Positions { return c.positions }

// sessionDispatcher routes service calls through the shared client and
// applies session side effects to failures, so an unauthorized reply tears
// the session down exactly once no matter which service hit it.
type sessionDispatcher struct {
	client  *gql.Client
	session *session.Manager
}

func (d *sessionDispatcher) Do(ctx context.Context, req gql.Request, out any) error {
	if err := d.client.Do(ctx, req, out); err != nil {
		return d.session.HandleError(ctx, err)
	}
	return nil
}

// localeSwitch is a swappable translator, letting the session manager keep a
// stable Localizer reference across SetLocale calls.
type localeSwitch struct {
	mu sync.RWMutex
	t  *i18n.Translator
}

func (l *localeSwitch) swap(t *i18n.Translator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t = t
}

func (l *localeSwitch) current() *i18n.Translator {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t
}

// T resolves a message key in the active language.
func (l *localeSwitch) T(key string) string {
	return l.current().T(key)
}
