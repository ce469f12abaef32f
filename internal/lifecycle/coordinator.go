// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/diag"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/internal/store"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Coordinator performs the ordered side-effect chains around session
// transitions: the post-login initialization chain, the logout cleanup
// chain, and the scheduled session-expiry chain.
//
// The Coordinator never decides *when* a transition happens; the
// Orchestrator invokes it under the exclusive transition lock. Every step is
// best-effort: a failed step is logged (and reported where it matters) and
// the chain continues, because user-visible readiness must not hinge on
// optional work.
type Coordinator struct {
	control   adapter.ControlPlaneAdapter
	daemon    adapter.DaemonAdapter
	settings  SettingsStore
	servers   ServersStore
	presenter Presenter
	bus       EventBus
	bypass    *BypassMode
	checks    *PeriodicChecks
	sink      diag.Sink
	log       *logger.Logger

	// requestLogout is bound by the orchestrator; the expiry chain uses it
	// to signal logical logout without reaching back into the state owner.
	requestLogout func(reason string) error

	// schedule decouples the expiry chain from the call stack that detected
	// the rejection. Tests replace it with a synchronous runner.
	schedule func(fn func())
}

// NewCoordinator builds the transition coordinator.
func NewCoordinator(
	control adapter.ControlPlaneAdapter,
	daemon adapter.DaemonAdapter,
	settings SettingsStore,
	servers ServersStore,
	presenter Presenter,
	bus EventBus,
	bypass *BypassMode,
	checks *PeriodicChecks,
	sink diag.Sink,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		control:   control,
		daemon:    daemon,
		settings:  settings,
		servers:   servers,
		presenter: presenter,
		bus:       bus,
		bypass:    bypass,
		checks:    checks,
		sink:      sink,
		log:       log,
		schedule:  func(fn func()) { go fn() },
	}
}

// BindLogout installs the orchestrator's logout entry point used by the
// session-expiry chain.
func (c *Coordinator) BindLogout(requestLogout func(reason string) error) {
	c.requestLogout = requestLogout
}

// OnUserLoggedIn runs the full post-login initialization chain, in strict
// order:
//
//  1. bypass teardown (when active) or plain server-list refresh;
//  2. broadcast of the logged-in event to all registered consumers;
//  3. daemon connection-state fetch (transport errors logged only);
//  4. settings push to the daemon;
//  5. pinned-server cache rebuild;
//  6. interactive surface activation;
//  7. per-surface view-state load;
//  8. jittered periodic checks;
//  9. low-priority background refreshes, detached.
//
// Interactive readiness comes first: steps 1-7 settle before the detached
// refreshes begin, and nothing after activation can delay it.
func (c *Coordinator) OnUserLoggedIn(ctx context.Context, sess models.Session, autoLogin bool) {
	if c.bypass.Active() {
		c.tearDownBypass(ctx)
	} else {
		c.refreshServers(ctx)
	}

	c.bus.Publish(models.NewUserLoggedInEvent(autoLogin))

	report, err := c.daemon.Status(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("connection state fetch failed, proceeding without it")
	}

	c.pushSettings(ctx)

	pins := c.rebuildPins(ctx)

	view := MainView{
		AccountID:  sess.AccountID,
		Connection: report,
		Servers:    c.cachedServers(ctx),
		Pins:       pins,
	}
	c.presenter.ActivateMain(view)

	if err := c.presenter.LoadViewState(ctx); err != nil {
		c.log.Warn().Err(err).Msg("view state load failed")
	}

	c.checks.Start(ctx)

	c.schedule(func() { c.backgroundRefresh(ctx, report) })
}

// OnUserLoggedOut runs the logout cleanup chain. Surfaces are reset before
// consumers are notified so consumer teardown never races with a visible
// authenticated view.
func (c *Coordinator) OnUserLoggedOut(ctx context.Context, reason string) {
	c.checks.Stop()

	c.presenter.CloseOverlays()
	c.presenter.ShowLogin()
	c.presenter.HideMain()

	c.bus.Publish(models.NewUserLoggedOutEvent(reason))
}

// ScheduleSessionExpiry queues the expiry chain instead of executing it
// inline, so the chain never re-enters the network pipeline that detected
// the rejection.
func (c *Coordinator) ScheduleSessionExpiry(reason string) {
	c.schedule(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.daemon.Disconnect(ctx); err != nil {
			c.log.Warn().Err(err).Msg("force-disconnect on session expiry failed")
		}

		if c.requestLogout != nil {
			if err := c.requestLogout(reason); err != nil {
				c.log.Error().Err(err).Msg("logical logout on session expiry failed")
				c.sink.Report(err, "coordinator.expiry")
			}
		}

		c.presenter.ShowNotice("Your session has expired. Please log in again.")
	})
}

// tearDownBypass dismantles the pre-authentication fallback path: refresh
// the server list, force-disconnect the bypass tunnel, clear the flag.
func (c *Coordinator) tearDownBypass(ctx context.Context) {
	c.refreshServers(ctx)

	if err := c.daemon.Disconnect(ctx); err != nil {
		c.log.Warn().Err(err).Msg("bypass tunnel disconnect failed")
		c.sink.Report(err, "coordinator.bypass")
	}

	c.bypass.Clear()
	c.log.Info().Msg("bypass network mode torn down")
}

// refreshServers fetches the inventory, persists it, and publishes the
// update. A transport failure leaves the cached list in place.
func (c *Coordinator) refreshServers(ctx context.Context) {
	list, err := c.control.GetServers(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("server list refresh failed, keeping cache")
		return
	}

	fresh := models.ServerList{RetrievedAt: time.Now(), Servers: list}
	if err := c.servers.SaveServerList(ctx, fresh); err != nil {
		c.log.Error().Err(err).Msg("server list cache write failed")
		c.sink.Report(err, "coordinator.servers")
	}

	c.bus.Publish(models.NewServersUpdatedEvent(list))
}

// pushSettings sends the latest stored settings to the daemon. A missing
// settings row falls back to defaults; a daemon that is down is logged only.
func (c *Coordinator) pushSettings(ctx context.Context) {
	settings, err := c.settings.GetSettings(ctx)
	if errors.Is(err, store.ErrLocalSettingsNotFound) {
		settings = models.Settings{Protocol: "wireguard"}
	} else if err != nil {
		c.log.Error().Err(err).Msg("settings load failed, skipping daemon push")
		return
	}

	if err := c.daemon.PushSettings(ctx, settings); err != nil {
		c.log.Warn().Err(err).Msg("settings push to daemon failed")
	}
}

// rebuildPins recomputes the derived pinned-server cache by joining the pins
// with the latest inventory. Pins whose server vanished keep a zero Server
// row and render as unavailable.
func (c *Coordinator) rebuildPins(ctx context.Context) []models.PinnedServer {
	pins, err := c.servers.ListPins(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("pin list load failed")
		return nil
	}

	byID := map[string]models.Server{}
	for _, srv := range c.cachedServers(ctx) {
		byID[srv.ID] = srv
	}

	for i := range pins {
		pins[i].Server = byID[pins[i].ServerID]
	}
	return pins
}

func (c *Coordinator) cachedServers(ctx context.Context) []models.Server {
	cached, err := c.servers.GetCachedServers(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoCachedServers) {
			c.log.Warn().Err(err).Msg("server cache read failed")
		}
		return nil
	}
	return cached.Servers
}
