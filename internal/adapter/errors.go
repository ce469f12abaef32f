package adapter

import "errors"

var (
	// ErrTransport marks a network-level failure: the request never got an
	// authoritative answer. Callers must treat it as "verdict unknown",
	// never as a rejection.
	ErrTransport = errors.New("transport failure")

	// ErrSessionRejected marks an authoritative credential rejection by the
	// control plane (401/403).
	ErrSessionRejected = errors.New("session rejected")

	// ErrBadRequest marks a request the control plane refused as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound marks a missing remote resource.
	ErrNotFound = errors.New("not found")

	// ErrDaemonUnavailable marks the local connection daemon as unreachable.
	ErrDaemonUnavailable = errors.New("connection daemon unavailable")
)

// IsTransient reports whether err is a network-level failure whose verdict is
// unknown. Daemon unavailability counts: the daemon being down never implies
// anything about the session.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrDaemonUnavailable)
}

// IsRejection reports whether err is an authoritative credential rejection.
func IsRejection(err error) bool {
	return errors.Is(err, ErrSessionRejected)
}
