package i18n

import "golang.org/x/text/language"

// SupportedLanguages are the locales the SDK ships bundles for, most
// preferred first.
var SupportedLanguages = []string{"en", "de", "ru"}

// MatchLocale picks the best supported language for the user's preference
// list (BCP 47 tags, e.g. from an Accept-Language header or the OS locale).
// Unparseable or unmatched preferences resolve to the default language.
func MatchLocale(preferred ...string) string {
	supported := make([]language.Tag, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		supported = append(supported, language.Make(lang))
	}
	matcher := language.NewMatcher(supported)

	var tags []language.Tag
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			tags = append(tags, tag)
		}
	}

	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return SupportedLanguages[index]
}
