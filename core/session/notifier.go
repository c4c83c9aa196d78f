package session

import "log/slog"

// Notifier receives user-facing session notices. Host applications bridge
// this to their toast or banner system.
type Notifier interface {
	ShowError(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) ShowError(message string) { f(message) }

// slogNotifier is the default sink when no UI is attached: notices land in
// the log instead of disappearing.
type slogNotifier struct {
	log *slog.Logger
}

func (n slogNotifier) ShowError(message string) {
	n.log.Warn("session notice", slog.String("message", message))
}
