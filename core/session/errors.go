package session

import "errors"

// ErrNoStoredSession is returned by Bootstrap when neither an access nor a
// refresh credential is stored. Not an unauthenticated episode: the user
// simply never logged in here, so no notice is shown.
var ErrNoStoredSession = errors.New("no stored session to restore")
