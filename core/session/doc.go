// Package session owns the client-side session lifecycle: signing in and
// up, logging out, and silently restoring a session from a stored
// credential at startup.
//
// The Manager is the single owner of the current user and the single place
// the unauthorized error category takes effect: HandleError routes it to
// Logout, which clears stored credentials, shows the session-expired notice
// exactly once per unauthenticated episode, and signals subscribers (for
// example a routing guard redirecting to the sign-in view):
//
//	go func() {
//		for range manager.Unauthenticated() {
//			router.Push("/sign-in")
//		}
//	}()
//
// All other error categories are inert data for the caller to display.
package session
