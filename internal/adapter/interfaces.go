// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// ControlPlaneAdapter is the outbound contract to the remote control plane:
// session validation, server inventory, remote configuration, and the update
// manifest.
//
// Every method distinguishes two failure classes via sentinel wrapping:
// [ErrTransport] for network-level failures (connection refused, timeout,
// 5xx) and [ErrSessionRejected] for an authoritative credential rejection
// (401/403). Callers decide policy with [IsTransient] and [IsRejection];
// transient errors must never be treated as a rejection.
type ControlPlaneAdapter interface {
	// SetCredential installs the bearer credential used on privileged
	// calls. Safe for concurrent use with in-flight requests.
	SetCredential(credential string)

	// Login exchanges interactive credentials for a fresh session. An
	// [ErrSessionRejected] result means the credentials were refused.
	Login(ctx context.Context, accountID, password string) (models.Session, error)

	// ValidateSession asks the control plane whether the installed
	// credential is still usable. Returns nil when valid.
	ValidateSession(ctx context.Context) error

	// RefreshSession exchanges the installed credential for a fresh one.
	// An [ErrSessionRejected] result specifically means the session has
	// expired; [ErrTransport] means the verdict is unknown.
	RefreshSession(ctx context.Context) (models.Session, error)

	// GetServers fetches the current server inventory.
	GetServers(ctx context.Context) ([]models.Server, error)

	// GetLocation fetches the control plane's geo-IP verdict.
	GetLocation(ctx context.Context) (models.Location, error)

	// GetRemoteConfig fetches server-driven client configuration overrides.
	GetRemoteConfig(ctx context.Context) (map[string]string, error)

	// GetUpdateManifest fetches the newest build advertised on channel.
	GetUpdateManifest(ctx context.Context, channel string) (models.UpdateState, error)

	// PollNotices fetches pending account notices (privileged call; a
	// rejection here signals session expiry to the caller).
	PollNotices(ctx context.Context) ([]string, error)
}

// DaemonAdapter is the outbound contract to the local connection daemon's
// control socket. Transport failures wrap [ErrDaemonUnavailable]; the daemon
// being down is an expected condition, not a fault.
type DaemonAdapter interface {
	// Status queries the daemon's current tunnel state.
	Status(ctx context.Context) (models.StatusReport, error)

	// PushSettings replaces the daemon's copy of the client settings.
	PushSettings(ctx context.Context, settings models.Settings) error

	// Connect asks the daemon to establish a tunnel to serverID.
	Connect(ctx context.Context, serverID string) error

	// Disconnect tears down any active tunnel, including the
	// pre-authentication bypass path.
	Disconnect(ctx context.Context) error

	// StreamEvents opens the daemon's websocket event feed and returns a
	// channel of connection-state events. The channel closes when ctx is
	// cancelled or the feed drops; callers re-dial if they still care.
	StreamEvents(ctx context.Context) (<-chan models.Event, error)
}
