// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tunnel-keeper/internal/diag"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/internal/session"
	"github.com/MKhiriev/go-tunnel-keeper/internal/store"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// DaemonProbe is the slice of the daemon adapter the orchestrator needs at
// boot: detecting a pre-authentication bypass tunnel left by the daemon.
type DaemonProbe interface {
	Status(ctx context.Context) (models.StatusReport, error)
}

// Orchestrator is the top-level lifecycle coordinator. It sequences boot
// (cache warm-up, background service starts, session validation, the
// authenticated/unauthenticated branch) and then owns the running-lifetime
// state machine driven by login, logout, and expiry.
//
// The Orchestrator owns the Session exclusively. Collaborators read it via
// [Orchestrator.CurrentSession] and never mutate it.
type Orchestrator struct {
	sessions    SessionStore
	servers     ServersStore
	validator   SessionValidator
	launcher    ServiceLauncher
	coordinator *Coordinator
	presenter   Presenter
	bus         EventBus
	bypass      *BypassMode
	checks      *PeriodicChecks
	daemon      DaemonProbe
	sink        diag.Sink
	log         *logger.Logger

	// mu guards state, current, and booted.
	mu      sync.Mutex
	state   BootState
	current models.Session
	booted  bool

	// transitionMu serializes the authenticated/unauthenticated side-effect
	// chains: a transition runs to completion before the next is accepted.
	transitionMu sync.Mutex
}

// NewOrchestrator wires the orchestrator and binds the coordinator's logout
// hook back to it.
func NewOrchestrator(
	sessions SessionStore,
	servers ServersStore,
	validator SessionValidator,
	launcher ServiceLauncher,
	coordinator *Coordinator,
	presenter Presenter,
	bus EventBus,
	bypass *BypassMode,
	checks *PeriodicChecks,
	daemon DaemonProbe,
	sink diag.Sink,
	log *logger.Logger,
) *Orchestrator {
	o := &Orchestrator{
		sessions:    sessions,
		servers:     servers,
		validator:   validator,
		launcher:    launcher,
		coordinator: coordinator,
		presenter:   presenter,
		bus:         bus,
		bypass:      bypass,
		checks:      checks,
		daemon:      daemon,
		sink:        sink,
		log:         log,
		state:       StateInitializing,
	}
	coordinator.BindLogout(o.NotifyLogout)
	return o
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() BootState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// HasSession reports whether a session is currently held.
func (o *Orchestrator) HasSession() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current.Present
}

// CurrentSession returns a copy of the owned session.
func (o *Orchestrator) CurrentSession() models.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Boot runs the one-time startup sequence: cache warm-up, concurrent
// background service starts, stored-session validation, and the branch into
// the authenticated or unauthenticated flow. Boot is entered exactly once;
// afterwards state changes are purely event-driven.
//
// Boot never fails on a degraded environment: broken services, a cold cache,
// or an unreachable control plane all still end in a stable state.
func (o *Orchestrator) Boot(ctx context.Context) error {
	o.mu.Lock()
	if o.booted {
		o.mu.Unlock()
		return errors.New("boot already ran")
	}
	o.booted = true
	o.mu.Unlock()

	o.log.Info().Msg("lifecycle boot starting")
	o.warmCache(ctx)

	if !o.setState(StateServicesStarting) {
		o.log.Info().Msg("shutdown requested, boot abandoned")
		return nil
	}
	o.launcher.StartAll(ctx)

	// Shutdown may have landed while the services were starting. The
	// shutting-down state is terminal: boot must not resurrect the process.
	if !o.setState(StateValidatingSession) {
		o.log.Info().Msg("shutdown requested during service startup, boot abandoned")
		return nil
	}

	stored, err := o.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) || (err == nil && !stored.Present) {
		// No stored session: straight to the entry surface, the remote
		// validation service is never invoked.
		o.enterUnauthenticatedAtBoot("")
		return nil
	}
	if err != nil {
		o.log.Error().Err(err).Msg("stored session load failed")
		o.sink.Report(err, "orchestrator.boot")
		o.enterUnauthenticatedAtBoot("")
		return nil
	}

	result := o.validator.Validate(ctx, stored)
	switch result.Status {
	case session.StatusValid:
		if err := o.sessions.SaveSession(ctx, result.Session); err != nil {
			o.log.Error().Err(err).Msg("refreshed session write failed")
			o.sink.Report(err, "orchestrator.boot")
		}
		o.enterAuthenticated(ctx, result.Session, true)

	case session.StatusInvalid:
		if err := o.sessions.ClearSession(ctx); err != nil {
			o.log.Error().Err(err).Msg("rejected session clear failed")
			o.sink.Report(err, "orchestrator.boot")
		}
		o.enterUnauthenticatedAtBoot(result.Reason)

	case session.StatusTransient:
		// Verdict unknown: remain logged out for now, but keep the stored
		// credential so a later boot or retry can restore the session.
		// This is the login-blocking transient case, never a logout.
		o.log.Warn().Err(result.Err).Msg("session validation transient failure, remaining logged out")
		if o.enterUnauthenticatedAtBoot("") {
			o.presenter.ShowNotice("Could not reach the server to restore your session. Check your connection and log in again.")
		}
	}

	return nil
}

// warmCache primes in-memory state from the local store and probes the
// daemon for a leftover bypass tunnel. Every step is best-effort.
func (o *Orchestrator) warmCache(ctx context.Context) {
	cached, err := o.servers.GetCachedServers(ctx)
	switch {
	case errors.Is(err, store.ErrNoCachedServers):
		o.log.Info().Msg("server cache cold")
	case err != nil:
		o.log.Warn().Err(err).Msg("server cache warm-up failed")
	default:
		o.log.Info().Int("servers", len(cached.Servers)).Msg("server cache warm")
	}

	report, err := o.daemon.Status(ctx)
	if err != nil {
		o.log.Debug().Err(err).Msg("daemon probe failed during warm-up")
		return
	}
	if report.Bypass {
		o.bypass.Activate()
		o.log.Info().Msg("daemon is running a bypass tunnel")
	}
}

// NotifyLoginSucceeded accepts a fresh session produced by an interactive
// login and runs the authenticated transition. Valid only from
// StateUnauthenticated.
func (o *Orchestrator) NotifyLoginSucceeded(ctx context.Context, sess models.Session) error {
	// The state check must happen under the transition lock: a caller that
	// merely waited out another transition would otherwise pass the check
	// and run the chain a second time.
	o.transitionMu.Lock()
	defer o.transitionMu.Unlock()

	if err := o.checkTransition(StateUnauthenticated, "login"); err != nil {
		return err
	}

	o.bus.Publish(models.NewUserLoggingInEvent())

	if err := o.sessions.SaveSession(ctx, sess); err != nil {
		o.log.Error().Err(err).Msg("session persist on login failed")
		o.sink.Report(err, "orchestrator.login")
	}

	o.runLoginChain(ctx, sess, false)
	return nil
}

// NotifyLogout invalidates the session and runs the unauthenticated
// transition. Valid only from StateAuthenticated.
func (o *Orchestrator) NotifyLogout(reason string) error {
	ctx := context.Background()

	o.transitionMu.Lock()
	defer o.transitionMu.Unlock()

	if err := o.checkTransition(StateAuthenticated, "logout"); err != nil {
		return err
	}

	if err := o.sessions.ClearSession(ctx); err != nil {
		o.log.Error().Err(err).Msg("session clear on logout failed")
		o.sink.Report(err, "orchestrator.logout")
	}

	o.mu.Lock()
	o.current = models.Session{}
	o.state = StateUnauthenticated
	o.mu.Unlock()
	o.log.Info().Str("reason", reason).Msg("lifecycle state: unauthenticated")

	o.coordinator.OnUserLoggedOut(ctx, reason)
	return nil
}

// Shutdown moves to the terminal state, stops the periodic checks, and stops
// every started background service.
func (o *Orchestrator) Shutdown() {
	o.transitionMu.Lock()
	defer o.transitionMu.Unlock()

	o.setState(StateShuttingDown)
	o.checks.Stop()
	o.launcher.StopAll()
	o.log.Info().Msg("lifecycle shut down")
}

// Subscriptions returns the orchestrator's own event bindings, registered at
// composition time alongside every other consumer.
func (o *Orchestrator) Subscriptions() []Subscription {
	return []Subscription{
		{
			Category: models.EventSessionExpired,
			Consumer: "orchestrator",
			Handler: func(event models.Event) error {
				return o.handleSessionExpired(event)
			},
		},
	}
}

// handleSessionExpired schedules the expiry chain for an authenticated
// session. Expiry events outside StateAuthenticated are stale and dropped.
func (o *Orchestrator) handleSessionExpired(event models.Event) error {
	if o.State() != StateAuthenticated {
		o.log.Debug().Msg("session-expired event ignored outside authenticated state")
		return nil
	}
	o.coordinator.ScheduleSessionExpiry(event.Reason)
	return nil
}

// enterAuthenticated runs the post-login chain under the exclusive
// transition lock. Boot-path entry point; interactive logins come through
// NotifyLoginSucceeded, which already holds the lock.
func (o *Orchestrator) enterAuthenticated(ctx context.Context, sess models.Session, autoLogin bool) {
	o.transitionMu.Lock()
	defer o.transitionMu.Unlock()

	if o.State() == StateShuttingDown {
		o.log.Info().Msg("shutdown preempted boot, authenticated transition skipped")
		return
	}
	o.runLoginChain(ctx, sess, autoLogin)
}

// runLoginChain installs sess and drives the ordered post-login side
// effects. The caller holds transitionMu.
func (o *Orchestrator) runLoginChain(ctx context.Context, sess models.Session, autoLogin bool) {
	o.mu.Lock()
	o.current = sess
	o.state = StateAuthenticated
	o.mu.Unlock()
	o.log.Info().Str("account", sess.AccountID).Bool("auto_login", autoLogin).Msg("lifecycle state: authenticated")

	o.coordinator.OnUserLoggedIn(ctx, sess, autoLogin)
}

// enterUnauthenticatedAtBoot presents the entry surface without running the
// logout chain: at boot there is nothing to tear down yet. Reports whether
// the surface was presented; false means shutdown preempted boot.
func (o *Orchestrator) enterUnauthenticatedAtBoot(reason string) bool {
	o.transitionMu.Lock()
	defer o.transitionMu.Unlock()

	o.mu.Lock()
	if o.state == StateShuttingDown {
		o.mu.Unlock()
		o.log.Info().Msg("shutdown preempted boot, entry surface skipped")
		return false
	}
	o.current = models.Session{}
	o.state = StateUnauthenticated
	o.mu.Unlock()
	o.log.Info().Msg("lifecycle state: unauthenticated")

	o.presenter.ShowLogin()
	if reason != "" && reason != "no stored session" {
		o.presenter.ShowLoginError(reason)
	}
	return true
}

// checkTransition validates the source state of a requested transition.
func (o *Orchestrator) checkTransition(from BootState, name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.booted {
		return fmt.Errorf("%w: %s", ErrNotBooted, name)
	}
	if o.state == StateShuttingDown {
		return fmt.Errorf("%w: %s", ErrShuttingDown, name)
	}
	if o.state != from {
		return fmt.Errorf("%w: %s requested in state %s", ErrInvalidTransition, name, o.state)
	}
	return nil
}

// setState records a boot-phase state change. ShuttingDown is terminal: an
// attempt to leave it is refused, and the return reports whether the change
// was applied.
func (o *Orchestrator) setState(next BootState) bool {
	o.mu.Lock()
	if o.state == StateShuttingDown && next != StateShuttingDown {
		o.mu.Unlock()
		return false
	}
	o.state = next
	o.mu.Unlock()
	o.log.Info().Str("state", next.String()).Msg("lifecycle state")
	return true
}
