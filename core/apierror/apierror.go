package apierror

import (
	"errors"
	"strings"
)

// Kind is the category of an API error. The string value doubles as the
// localization key suffix under the "errors" namespace.
type Kind string

const (
	// KindUnauthorized marks an unauthenticated condition: no refresh
	// credential available locally, or the server rejected the credentials.
	// It is the only kind that carries an automatic side effect — the
	// session controller logs the user out and shows a one-time notice.
	KindUnauthorized Kind = "UNAUTHORIZED_ERROR"
	// KindInvalidCredentials: server rejected a login email/password pair.
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	// KindEmailDuplicate: registration email already exists.
	KindEmailDuplicate Kind = "EMAIL_DUPLICATE_ERROR"
	// KindNetworkUnavailable: the transport never got a response.
	KindNetworkUnavailable Kind = "NO_NETWORK_CONNECTION"
	// KindUserNotFound: server indicates the requested user is null.
	KindUserNotFound Kind = "NOT_FOUND_USER"
	// KindCVNotFound: server indicates the requested CV is null.
	KindCVNotFound Kind = "NOT_FOUND_CV"
	// KindBadInput: server-side validation rejected the payload.
	KindBadInput Kind = "BAD_INPUT_DATA"
	// KindLocaleLoadEN, KindLocaleLoadDE, KindLocaleLoadRU: a locale message
	// bundle failed to load. Non-blocking; callers fall back to messages
	// already in memory.
	KindLocaleLoadEN Kind = "LANG_EN_LOADING_ERROR"
	KindLocaleLoadDE Kind = "LANG_DE_LOADING_ERROR"
	KindLocaleLoadRU Kind = "LANG_RU_LOADING_ERROR"
	// KindUnexpected is the catch-all for unrecognized failures.
	KindUnexpected Kind = "UNEXPECTED_ERROR"
)

// Error is a categorized API error. The category is inert data except for
// KindUnauthorized, whose side effects are applied by the session
// controller, not here.
type Error struct {
	kind  Kind
	cause error
}

// New creates a categorized error wrapping an optional cause.
func New(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// Kind returns the category.
func (e *Error) Kind() Kind { return e.kind }

// MessageKey returns the localization key for the user-facing message.
func (e *Error) MessageKey() string { return "errors." + string(e.kind) }

func (e *Error) Error() string { return string(e.kind) }

// Unwrap exposes the original transport error.
func (e *Error) Unwrap() error { return e.cause }

// Is makes two categorized errors match on kind, so
// errors.Is(err, apierror.New(apierror.KindUnauthorized, nil)) works.
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.kind == e.kind
}

// exactMessages maps raw server/transport error messages one-to-one onto
// categories. The messages are the GraphQL API's verbatim error strings.
var exactMessages = map[string]Kind{
	"Invalid credentials":                                KindInvalidCredentials,
	"Failed to fetch":                                    KindNetworkUnavailable,
	"User already exists":                                KindEmailDuplicate,
	"Cannot return null for non-nullable field Query.user.": KindUserNotFound,
	"Cannot return null for non-nullable field Query.cv.":   KindCVNotFound,
	"Bad Request Exception":                              KindBadInput,
	"Unauthorized":                                       KindUnauthorized,
	string(KindUserNotFound):                             KindUserNotFound,
	string(KindCVNotFound):                               KindCVNotFound,
}

// localePrefixes maps message prefixes of locale bundle failures onto their
// per-locale categories.
var localePrefixes = []struct {
	prefix string
	kind   Kind
}{
	{prefix: "failed to load locale en", kind: KindLocaleLoadEN},
	{prefix: "failed to load locale de", kind: KindLocaleLoadDE},
	{prefix: "failed to load locale ru", kind: KindLocaleLoadRU},
}

// Categorize maps a raw error onto exactly one category: exact message
// match first, then locale-failure prefix match, else KindUnexpected.
// Already-categorized errors pass through unchanged. Returns nil for nil.
func Categorize(err error) *Error {
	if err == nil {
		return nil
	}

	var categorized *Error
	if errors.As(err, &categorized) {
		return categorized
	}

	msg := err.Error()
	if kind, ok := exactMessages[msg]; ok {
		return New(kind, err)
	}

	for _, lp := range localePrefixes {
		if strings.HasPrefix(msg, lp.prefix) {
			return New(lp.kind, err)
		}
	}

	return New(KindUnexpected, err)
}

// IsKind reports whether err categorizes to the given kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return Categorize(err).kind == kind
}

// IsUnauthorized reports whether err is (or categorizes to) the
// unauthenticated condition.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}
