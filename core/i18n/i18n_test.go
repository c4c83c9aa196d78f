package i18n_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/i18n"
)

// failingLoader rejects every language.
type failingLoader struct {
	err error
}

func (l failingLoader) Load(context.Context, string) (map[string]string, error) {
	return nil, l.err
}

func TestTranslate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("embedded bundles resolve after loading", func(t *testing.T) {
		t.Parallel()

		m := i18n.New()
		require.NoError(t, m.EnsureLoaded(ctx, "en"))
		require.NoError(t, m.EnsureLoaded(ctx, "de"))

		assert.Equal(t, "Your session has expired. Please sign in again.",
			m.T("en", "errors.UNAUTHORIZED_ERROR"))
		assert.Equal(t, "Ihre Sitzung ist abgelaufen. Bitte melden Sie sich erneut an.",
			m.T("de", "errors.UNAUTHORIZED_ERROR"))
	})

	t.Run("falls back to default language then key", func(t *testing.T) {
		t.Parallel()

		m := i18n.New(i18n.WithTranslations("en", map[string]string{"greeting": "hello"}))

		assert.Equal(t, "hello", m.T("de", "greeting"))
		assert.Equal(t, "missing.key", m.T("de", "missing.key"))
	})

	t.Run("translator binds a language", func(t *testing.T) {
		t.Parallel()

		m := i18n.New(
			i18n.WithTranslations("ru", map[string]string{"k": "значение"}),
			i18n.WithTranslations("en", map[string]string{"k": "value"}),
		)

		tr := m.Translator("ru")
		assert.Equal(t, "ru", tr.Lang())
		assert.Equal(t, "значение", tr.T("k"))
	})
}

func TestEnsureLoaded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("load failure maps to the locale category", func(t *testing.T) {
		t.Parallel()

		cases := map[string]apierror.Kind{
			"en": apierror.KindLocaleLoadEN,
			"de": apierror.KindLocaleLoadDE,
			"ru": apierror.KindLocaleLoadRU,
		}

		for lang, want := range cases {
			m := i18n.New(i18n.WithLoader(failingLoader{err: errors.New("boom")}))
			err := m.EnsureLoaded(ctx, lang)
			require.Error(t, err, "lang %s", lang)
			assert.Equal(t, want, apierror.Categorize(err).Kind(), "lang %s", lang)
		}
	})

	t.Run("failure leaves earlier messages usable", func(t *testing.T) {
		t.Parallel()

		m := i18n.New(
			i18n.WithTranslations("en", map[string]string{"k": "value"}),
			i18n.WithLoader(failingLoader{err: errors.New("boom")}),
		)

		require.Error(t, m.EnsureLoaded(ctx, "de"))
		assert.Equal(t, "value", m.T("de", "k"))
	})

	t.Run("loads each bundle once", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{"k": "v"}`)},
		}
		m := i18n.New(i18n.WithLoader(i18n.NewFSLoader(fsys)))

		require.NoError(t, m.EnsureLoaded(ctx, "en"))
		require.NoError(t, m.EnsureLoaded(ctx, "en"))
		assert.Equal(t, "v", m.T("en", "k"))
	})

	t.Run("undecodable bundle fails", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`not json`)},
		}
		m := i18n.New(i18n.WithLoader(i18n.NewFSLoader(fsys)))

		err := m.EnsureLoaded(ctx, "en")
		assert.Equal(t, apierror.KindLocaleLoadEN, apierror.Categorize(err).Kind())
	})
}

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "de", i18n.MatchLocale("de-AT"))
	assert.Equal(t, "ru", i18n.MatchLocale("ru-RU", "en"))
	assert.Equal(t, "en", i18n.MatchLocale("fr-FR"))
	assert.Equal(t, "en", i18n.MatchLocale("definitely not a tag"))
	assert.Equal(t, "en", i18n.MatchLocale())
}
