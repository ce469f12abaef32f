// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lifecycle implements the application-lifecycle orchestrator: it
// brings the multi-subsystem client into a running state, gates that
// transition on session validation, and drives the ordered side-effect
// chains triggered by login, logout, and session expiry.
package lifecycle

import (
	"context"

	"github.com/MKhiriev/go-tunnel-keeper/internal/events"
	"github.com/MKhiriev/go-tunnel-keeper/internal/session"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_lifecycle.go -package=mock

// SessionStore is the stored-session accessor slice of the local store.
type SessionStore interface {
	GetSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// SettingsStore is the settings slice of the local store.
type SettingsStore interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// ServersStore is the server-inventory slice of the local store.
type ServersStore interface {
	GetCachedServers(ctx context.Context) (models.ServerList, error)
	SaveServerList(ctx context.Context, list models.ServerList) error
	ListPins(ctx context.Context) ([]models.PinnedServer, error)
}

// SessionValidator is the boot-time validation step.
type SessionValidator interface {
	Validate(ctx context.Context, stored models.Session) session.Result
}

// ServiceLauncher starts and stops the background services.
type ServiceLauncher interface {
	StartAll(ctx context.Context)
	StopAll()
}

// EventBus is the slice of the event hub the lifecycle layer needs.
type EventBus interface {
	Publish(event models.Event)
	Register(category models.EventCategory, name string, handler events.Handler) error
}

// MainView is the view model handed to the interactive surface on
// activation.
type MainView struct {
	AccountID  string
	Connection models.StatusReport
	Servers    []models.Server
	Pins       []models.PinnedServer
}

// Presenter is the inbound contract to the presentation surfaces. The
// orchestrator stays opaque to how surfaces render; it only sequences
// activate/hide/show calls. Implementations must not block: calls are made
// from the transition chains and a slow surface would stall them.
type Presenter interface {
	// ShowLogin presents the unauthenticated entry surface.
	ShowLogin()

	// ShowLoginError surfaces a user-visible reason on the entry surface
	// (e.g. "expired" after a rejected boot revalidation).
	ShowLoginError(reason string)

	// ActivateMain presents the interactive authenticated surface with its
	// view model, hiding the entry surface.
	ActivateMain(view MainView)

	// HideMain hides the authenticated surface.
	HideMain()

	// LoadViewState restores per-surface view state after activation.
	LoadViewState(ctx context.Context) error

	// CloseOverlays dismisses any modal or overlay surfaces.
	CloseOverlays()

	// ShowNotice surfaces a non-blocking informational notice.
	ShowNotice(text string)
}
