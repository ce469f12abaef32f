// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// SessionRepository is the stored-session accessor: the single persistent row
// holding the credential restored at boot.
type SessionRepository interface {
	// GetSession loads the stored session. Returns
	// [ErrLocalSessionNotFound] when no session row exists.
	GetSession(ctx context.Context) (models.Session, error)

	// SaveSession upserts the stored session row.
	SaveSession(ctx context.Context, session models.Session) error

	// ClearSession removes the stored session row. Clearing an absent row
	// is a no-op.
	ClearSession(ctx context.Context) error
}

// SettingsRepository persists the client settings pushed to the daemon.
type SettingsRepository interface {
	// GetSettings loads the stored settings, or the zero value with
	// [ErrLocalSettingsNotFound] when none were saved yet.
	GetSettings(ctx context.Context) (models.Settings, error)

	// SaveSettings upserts the settings row.
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// ServersRepository caches the control plane's server inventory and holds the
// user's pinned servers.
type ServersRepository interface {
	// GetCachedServers loads the cached inventory, or
	// [ErrNoCachedServers] when the cache is cold.
	GetCachedServers(ctx context.Context) (models.ServerList, error)

	// SaveServerList replaces the cached inventory.
	SaveServerList(ctx context.Context, list models.ServerList) error

	// ListPins returns pinned server ids ordered oldest pin first.
	ListPins(ctx context.Context) ([]models.PinnedServer, error)

	// Pin marks serverID as pinned; pinning twice is a no-op.
	Pin(ctx context.Context, serverID string) error

	// Unpin removes serverID from the pins; unpinning an absent id is a
	// no-op.
	Unpin(ctx context.Context, serverID string) error
}
