package session

import "errors"

// ErrValidateTimeout marks a session validation exchange that hit the
// configured deadline. Distinct from an ordinary transport failure so callers
// can report it precisely, but handled the same way: verdict unknown.
var ErrValidateTimeout = errors.New("session validation timed out")
