package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/logger"
)

// DefaultLang is the fallback language when no preference matches.
const DefaultLang = "en"

// Loader fetches the message bundle for one language. Implementations may
// read embedded files, disk, or the network.
type Loader interface {
	Load(ctx context.Context, lang string) (map[string]string, error)
}

// I18n holds translations keyed "lang:key" and loads language bundles
// lazily. A bundle that fails to load never blocks translation: lookups
// fall back to messages already in memory.
type I18n struct {
	defaultLang string
	loader      Loader
	log         *slog.Logger

	mu           sync.RWMutex
	translations map[string]string
	loaded       map[string]bool
}

// Option configures the I18n instance during construction.
type Option func(*I18n)

// WithDefaultLanguage overrides the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) {
		if lang != "" {
			i.defaultLang = lang
		}
	}
}

// WithLoader sets the bundle loader.
func WithLoader(loader Loader) Option {
	return func(i *I18n) {
		i.loader = loader
	}
}

// WithTranslations preloads messages for a language.
func WithTranslations(lang string, messages map[string]string) Option {
	return func(i *I18n) {
		for key, msg := range messages {
			i.translations[lang+":"+key] = msg
		}
		i.loaded[lang] = true
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(i *I18n) {
		if log != nil {
			i.log = log
		}
	}
}

// New creates an I18n instance. Without options it serves the embedded
// bundles lazily with "en" as the default language.
func New(opts ...Option) *I18n {
	i := &I18n{
		defaultLang:  DefaultLang,
		loader:       DefaultLoader(),
		log:          slog.Default(),
		translations: make(map[string]string),
		loaded:       make(map[string]bool),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// EnsureLoaded loads the bundle for lang once. Failures come back as the
// language's load-failure category and leave previously loaded messages
// usable; a later call retries.
func (i *I18n) EnsureLoaded(ctx context.Context, lang string) error {
	i.mu.RLock()
	done := i.loaded[lang]
	i.mu.RUnlock()
	if done || i.loader == nil {
		return nil
	}

	messages, err := i.loader.Load(ctx, lang)
	if err != nil {
		i.log.LogAttrs(ctx, slog.LevelWarn, "locale bundle load failed",
			logger.Component("i18n"),
			slog.String("lang", lang),
			logger.Error(err),
		)
		return apierror.New(loadFailureKind(lang),
			fmt.Errorf("failed to load locale %s: %w", lang, err))
	}

	i.mu.Lock()
	for key, msg := range messages {
		i.translations[lang+":"+key] = msg
	}
	i.loaded[lang] = true
	i.mu.Unlock()
	return nil
}

// T resolves key in lang, falling back to the default language and finally
// to the key itself, so a missing translation is never invisible.
func (i *I18n) T(lang, key string) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if msg, ok := i.translations[lang+":"+key]; ok {
		return msg
	}
	if msg, ok := i.translations[i.defaultLang+":"+key]; ok {
		return msg
	}
	return key
}

// Translator binds a language, eliminating the lang argument at call sites.
// It implements the session.Localizer contract.
type Translator struct {
	i18n *I18n
	lang string
}

// Translator returns a translator bound to lang.
func (i *I18n) Translator(lang string) *Translator {
	return &Translator{i18n: i, lang: lang}
}

// Lang returns the bound language.
func (t *Translator) Lang() string { return t.lang }

// T resolves key in the bound language.
func (t *Translator) T(key string) string {
	return t.i18n.T(t.lang, key)
}

// loadFailureKind maps a language onto its bundle-failure category.
func loadFailureKind(lang string) apierror.Kind {
	switch lang {
	case "en":
		return apierror.KindLocaleLoadEN
	case "de":
		return apierror.KindLocaleLoadDE
	case "ru":
		return apierror.KindLocaleLoadRU
	}
	return apierror.KindUnexpected
}
