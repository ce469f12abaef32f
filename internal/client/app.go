// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/diag"
	"github.com/MKhiriev/go-tunnel-keeper/internal/events"
	"github.com/MKhiriev/go-tunnel-keeper/internal/launcher"
	"github.com/MKhiriev/go-tunnel-keeper/internal/lifecycle"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/internal/session"
	"github.com/MKhiriev/go-tunnel-keeper/internal/store"
	"github.com/MKhiriev/go-tunnel-keeper/internal/tui"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// App is the assembled client: the lifecycle orchestrator plus the terminal
// surfaces, wired over the shared event hub.
//
// App also adapts the orchestrator to the surfaces' controller contract,
// which breaks the construction cycle between the two: the TUI is built
// against the App before the orchestrator exists.
type App struct {
	orch *lifecycle.Orchestrator
	ui   *tui.TUI
	log  *logger.Logger
}

// NewApp wires every subsystem and registers the full subscription table.
// Collaborators that touch the outside world (store, adapters) are built by
// the caller; everything lifecycle-internal is assembled here.
func NewApp(cfg *config.StructuredConfig, stores *store.Stores, control adapter.ControlPlaneAdapter, daemon adapter.DaemonAdapter, log *logger.Logger) (*App, error) {
	sink := diag.NewSink(log)
	notifier := diag.NewExecNotifier(cfg.App.NotifierCommand, log)
	bus := events.NewRouter(log, sink)

	launch := launcher.New(cfg.Launcher, sink, notifier, bus, log)
	launch.Add(launcher.NewDaemonEventPump(daemon, bus, log.GetChildLogger()))
	launch.Add(launcher.NewUpdateChecker(control, bus, cfg.App.UpdateChannel, cfg.App.Version, cfg.Checks.UpdateCheckInterval, log.GetChildLogger()))

	validator := session.NewValidator(control, cfg.Adapter.ValidateTimeout, log)

	app := &App{log: log}
	ui := tui.New(control, app, daemon, stores.Servers, log)

	bypass := lifecycle.NewBypassMode()
	checks := lifecycle.NewPeriodicChecks(cfg.Checks, daemon, control, bus, ui.ShowNotice, log)
	coordinator := lifecycle.NewCoordinator(control, daemon, stores.Settings, stores.Servers, ui, bus, bypass, checks, sink, log)
	orch := lifecycle.NewOrchestrator(stores.Session, stores.Servers, validator, launch, coordinator, ui, bus, bypass, checks, daemon, sink, log)

	table := append(orch.Subscriptions(), ui.Subscriptions()...)
	if err := lifecycle.RegisterAll(bus, table); err != nil {
		return nil, fmt.Errorf("wire event consumers: %w", err)
	}

	app.orch = orch
	app.ui = ui
	return app, nil
}

// Run boots the lifecycle in the background and blocks on the terminal
// program. Shutdown runs when the user quits, whatever state boot reached.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := a.orch.Boot(ctx); err != nil {
			a.log.Error().Err(err).Msg("lifecycle boot failed")
		}
	}()

	err := a.ui.Run()

	cancel()
	a.orch.Shutdown()

	if err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}

// NotifyLoginSucceeded implements the surfaces' controller contract.
func (a *App) NotifyLoginSucceeded(ctx context.Context, sess models.Session) error {
	return a.orch.NotifyLoginSucceeded(ctx, sess)
}

// NotifyLogout implements the surfaces' controller contract.
func (a *App) NotifyLogout(reason string) error {
	return a.orch.NotifyLogout(reason)
}
