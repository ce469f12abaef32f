// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// PeriodicChecks runs the authenticated-lifetime background polls: the daemon
// status poll and the control-plane notice poll. Each tick is scheduled with
// randomized jitter so a fleet of clients does not synchronize against the
// same backend.
//
// The notice poll hits a privileged endpoint; an authoritative rejection
// there is the session-expiry signal and is published as an event rather
// than handled inline.
type PeriodicChecks struct {
	daemon  adapter.DaemonAdapter
	control adapter.ControlPlaneAdapter
	bus     EventBus
	notify  func(text string)
	log     *logger.Logger

	statusInterval time.Duration
	eventInterval  time.Duration
	jitterFraction float64

	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	lastState models.ConnectionState
}

// NewPeriodicChecks builds the checks from the configured base intervals.
// notify receives fetched account notices; nil means notices are only logged.
func NewPeriodicChecks(cfg config.Checks, daemon adapter.DaemonAdapter, control adapter.ControlPlaneAdapter, bus EventBus, notify func(string), log *logger.Logger) *PeriodicChecks {
	statusInterval := cfg.StatusPollInterval
	if statusInterval <= 0 {
		statusInterval = 30 * time.Second
	}
	eventInterval := cfg.EventPollInterval
	if eventInterval <= 0 {
		eventInterval = 2 * time.Minute
	}
	jitter := cfg.JitterFraction
	if jitter <= 0 || jitter >= 1 {
		jitter = 0.2
	}

	return &PeriodicChecks{
		daemon:         daemon,
		control:        control,
		bus:            bus,
		notify:         notify,
		log:            log,
		statusInterval: statusInterval,
		eventInterval:  eventInterval,
		jitterFraction: jitter,
	}
}

// Start launches both polls. Calling Start on running checks restarts them.
func (p *PeriodicChecks) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	checkCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(2)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		p.loop(checkCtx, p.statusInterval, p.pollStatus)
	}()
	go func() {
		defer p.wg.Done()
		p.loop(checkCtx, p.eventInterval, p.pollNotices)
	}()

	p.log.Info().
		Dur("status_interval", p.statusInterval).
		Dur("event_interval", p.eventInterval).
		Msg("periodic checks started")
}

// Stop terminates both polls and waits for them. Safe to call when the
// checks never started.
func (p *PeriodicChecks) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// loop runs check every jittered(base) until ctx is cancelled. A fresh timer
// per tick keeps each interval independently randomized.
func (p *PeriodicChecks) loop(ctx context.Context, base time.Duration, check func(context.Context)) {
	for {
		timer := time.NewTimer(jittered(base, p.jitterFraction))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			check(ctx)
		}
	}
}

// pollStatus queries the daemon and publishes a connection-state event when
// the state moved since the previous poll. A daemon that is down is an
// expected condition and only logged.
func (p *PeriodicChecks) pollStatus(ctx context.Context) {
	report, err := p.daemon.Status(ctx)
	if err != nil {
		p.log.Debug().Err(err).Msg("status poll failed")
		return
	}

	p.mu.Lock()
	changed := report.State != p.lastState
	p.lastState = report.State
	p.mu.Unlock()

	if changed {
		p.bus.Publish(models.NewConnectionStateChangedEvent(report.State))
	}
}

// pollNotices fetches pending account notices. A rejection on this
// privileged endpoint means the credential is no longer honored: the expiry
// event is published and the poll leaves the consequences to the
// session-expiry chain.
func (p *PeriodicChecks) pollNotices(ctx context.Context) {
	notices, err := p.control.PollNotices(ctx)
	if err != nil {
		if adapter.IsRejection(err) {
			p.log.Warn().Msg("notice poll rejected: session expired")
			p.bus.Publish(models.NewSessionExpiredEvent("session expired"))
			return
		}
		p.log.Debug().Err(err).Msg("notice poll failed")
		return
	}

	for _, notice := range notices {
		p.log.Info().Str("notice", notice).Msg("account notice")
		if p.notify != nil {
			p.notify(notice)
		}
	}
}

// jittered randomizes base within [base*(1-f), base*(1+f)].
func jittered(base time.Duration, f float64) time.Duration {
	spread := float64(base) * f
	return time.Duration(float64(base) - spread + rand.Float64()*2*spread)
}
