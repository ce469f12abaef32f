// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/diag"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// ErrStartTimeout marks a service whose Start did not report within the
// configured window. Distinct from an ordinary start failure so diagnostics
// can tell a hung start from a broken one.
var ErrStartTimeout = errors.New("service start timed out")

// Launcher starts all registered services concurrently and handles each
// failure to completion before declaring startup done. A failure is reported
// to the diagnostics sink, published as a service-fault event, and surfaced
// through the best-effort user notifier; it is never fatal to startup.
type Launcher struct {
	timeout   time.Duration
	sink      diag.Sink
	notifier  diag.Notifier
	publisher EventPublisher
	log       *logger.Logger

	mu       sync.Mutex
	services []Service
	started  []Service
}

// New builds a Launcher with no services registered yet.
func New(cfg config.Launcher, sink diag.Sink, notifier diag.Notifier, publisher EventPublisher, log *logger.Logger) *Launcher {
	timeout := cfg.StartTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Launcher{
		timeout:   timeout,
		sink:      sink,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// Add registers a service for the next StartAll call.
func (l *Launcher) Add(svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.services = append(l.services, svc)
}

// StartAll starts every registered service concurrently — none waits for
// another — and returns once each start attempt has either settled or been
// written off as timed out, with its failure handling run to completion.
// StartAll never fails: a broken background service must not prevent the
// interactive application from becoming usable.
func (l *Launcher) StartAll(ctx context.Context) {
	l.mu.Lock()
	services := append([]Service(nil), l.services...)
	l.mu.Unlock()

	var wg sync.WaitGroup
	for _, svc := range services {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			l.startOne(ctx, svc)
		}(svc)
	}
	wg.Wait()

	l.log.Info().Int("services", len(services)).Msg("background service startup settled")
}

// startOne runs a single bounded start attempt and, on failure, the full
// failure-handling chain.
func (l *Launcher) startOne(ctx context.Context, svc Service) {
	done := make(chan error, 1)
	go func() {
		done <- svc.Start(ctx)
	}()

	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	var err error
	select {
	case err = <-done:
	case <-timer.C:
		err = fmt.Errorf("%w: %s after %s", ErrStartTimeout, svc.Name(), l.timeout)
		// The attempt itself keeps running. It was already written off as
		// failed, so a late success must not leave the service running
		// outside StopAll's reach: drain the result and stop it.
		go func() {
			if lateErr := <-done; lateErr == nil {
				l.log.Warn().Str("service", svc.Name()).Msg("service started after timeout write-off, stopping it")
				svc.Stop()
			}
		}()
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err == nil {
		l.mu.Lock()
		l.started = append(l.started, svc)
		l.mu.Unlock()

		l.log.Info().Str("service", svc.Name()).Msg("background service started")
		return
	}

	l.handleFailure(svc.Name(), err)
}

// handleFailure reports a start failure everywhere it needs to go. Runs to
// completion; never panics the caller, never aborts startup.
func (l *Launcher) handleFailure(serviceName string, cause error) {
	l.log.Error().Err(cause).Str("service", serviceName).Msg("background service failed to start")
	l.sink.Report(cause, "launcher."+serviceName)

	if l.publisher != nil {
		l.publisher.Publish(models.NewServiceFaultEvent(serviceName, cause))
	}

	if l.notifier == nil {
		return
	}
	if notifyErr := l.notifier.NotifyFailure(serviceName, cause); notifyErr != nil {
		// The notifier is itself best-effort; its failure is recorded
		// and startup continues.
		l.log.Warn().Err(notifyErr).Str("service", serviceName).Msg("failure notifier did not launch")
		l.sink.Report(notifyErr, "launcher.notifier")
	}
}

// StopAll stops every successfully started service in reverse start order.
func (l *Launcher) StopAll() {
	l.mu.Lock()
	started := append([]Service(nil), l.started...)
	l.started = nil
	l.mu.Unlock()

	for i := len(started) - 1; i >= 0; i-- {
		started[i].Stop()
	}
}
