// Package apierror maps raw server and transport errors onto the fixed set
// of categories the application reacts to.
//
// Categorization is a one-to-one table lookup on the raw error message,
// followed by prefix matching for locale bundle failures, with
// KindUnexpected as the default. A category is inert data for display —
// except KindUnauthorized, which the session controller treats as the start
// of an unauthenticated episode.
//
//	if err := users.Get(ctx, id); err != nil {
//		cerr := apierror.Categorize(err)
//		form.ShowError(translator.T(cerr.MessageKey()))
//	}
package apierror
