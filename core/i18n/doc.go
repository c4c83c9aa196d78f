// Package i18n localizes the SDK's user-visible messages.
//
// Bundles are flat JSON maps loaded lazily per language, with en, de and ru
// embedded in the binary. A bundle that fails to load surfaces as that
// language's load-failure error category and never blocks the application:
// lookups fall back to the default language and finally to the raw key.
//
//	m := i18n.New()
//	_ = m.EnsureLoaded(ctx, "de")
//	t := m.Translator(i18n.MatchLocale("de-AT", "en"))
//	msg := t.T("errors.UNAUTHORIZED_ERROR")
package i18n
