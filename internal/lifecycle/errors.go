package lifecycle

import "errors"

var (
	// ErrShuttingDown indicates a transition was requested after shutdown
	// began. Shutdown is terminal; late transitions are refused.
	ErrShuttingDown = errors.New("orchestrator is shutting down")

	// ErrNotBooted indicates a transition was requested before Boot
	// finished its one-time sequence.
	ErrNotBooted = errors.New("orchestrator has not booted")

	// ErrInvalidTransition indicates a transition was requested from a
	// state that does not allow it (e.g. login while authenticated).
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)
