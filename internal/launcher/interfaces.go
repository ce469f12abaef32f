// Package launcher starts the client's long-running background services and
// owns the "degrade, don't crash" policy: a service that fails to start is
// reported and surfaced, but never prevents the rest of the application from
// becoming usable.
package launcher

import (
	"context"

	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Service is the interface that must be implemented by any background
// service managed by the [Launcher].
//
// Start must return promptly: either nil once the service's background work
// is running, or the error that prevented it from starting. Long-running work
// belongs in goroutines spawned by Start, bound to ctx.
//
// Stop signals the background work to exit and blocks until it has fully
// terminated. Stop must be safe to call when the service never started.
type Service interface {
	// Name identifies the service in diagnostics and fault events.
	Name() string

	// Start launches the service's background work.
	Start(ctx context.Context) error

	// Stop terminates the background work and waits for it.
	Stop()
}

// EventPublisher is the slice of the event hub the launcher and its services
// need: fire-and-forget publication of domain events.
type EventPublisher interface {
	Publish(event models.Event)
}
