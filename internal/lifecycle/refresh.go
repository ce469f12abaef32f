// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"context"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// backgroundRefresh runs the low-priority post-login work: geo-location
// lookup, remote config update, and auto-connect evaluation. It starts only
// after the interactive surface is activated and every step is best-effort.
func (c *Coordinator) backgroundRefresh(ctx context.Context, report models.StatusReport) {
	c.refreshLocation(ctx)
	c.applyRemoteConfig(ctx)
	c.evaluateAutoConnect(ctx, report)
}

// refreshLocation fetches the control plane's geo-IP verdict with a few
// retries on transport failure and fans it out to location-aware consumers.
func (c *Coordinator) refreshLocation(ctx context.Context) {
	var location models.Location

	err := retry.Do(ctx, refreshBackoff(), func(ctx context.Context) error {
		var lookupErr error
		location, lookupErr = c.control.GetLocation(ctx)
		if lookupErr != nil && adapter.IsTransient(lookupErr) {
			return retry.RetryableError(lookupErr)
		}
		return lookupErr
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("location lookup failed")
		return
	}

	c.bus.Publish(models.NewLocationChangedEvent(location))
}

// applyRemoteConfig fetches server-driven overrides and applies the
// recognized keys to the stored settings, publishing a settings-changed
// event per key that actually moved.
func (c *Coordinator) applyRemoteConfig(ctx context.Context) {
	var remote map[string]string

	err := retry.Do(ctx, refreshBackoff(), func(ctx context.Context) error {
		var fetchErr error
		remote, fetchErr = c.control.GetRemoteConfig(ctx)
		if fetchErr != nil && adapter.IsTransient(fetchErr) {
			return retry.RetryableError(fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("remote config fetch failed")
		return
	}

	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		settings = models.Settings{Protocol: "wireguard"}
	}

	var changed []string
	if protocol, ok := remote[models.SettingProtocol]; ok && protocol != settings.Protocol {
		settings.Protocol = protocol
		changed = append(changed, models.SettingProtocol)
	}
	if raw, ok := remote[models.SettingKillSwitch]; ok {
		if killSwitch, parseErr := strconv.ParseBool(raw); parseErr == nil && killSwitch != settings.KillSwitch {
			settings.KillSwitch = killSwitch
			changed = append(changed, models.SettingKillSwitch)
		}
	}
	if len(changed) == 0 {
		return
	}

	settings.UpdatedAt = time.Now()
	if err := c.settings.SaveSettings(ctx, settings); err != nil {
		c.log.Error().Err(err).Msg("remote config settings write failed")
		c.sink.Report(err, "coordinator.remote-config")
		return
	}

	for _, key := range changed {
		c.bus.Publish(models.NewSettingsChangedEvent(key))
	}
}

// evaluateAutoConnect reconnects to the last used server when the user opted
// in and no tunnel is up. Falls back to the oldest pin when the daemon has
// no last server.
func (c *Coordinator) evaluateAutoConnect(ctx context.Context, report models.StatusReport) {
	settings, err := c.settings.GetSettings(ctx)
	if err != nil || !settings.AutoConnect {
		return
	}
	if report.State != models.ConnectionDisconnected && report.State != "" {
		return
	}

	serverID := report.ServerID
	if serverID == "" {
		if pins := c.rebuildPins(ctx); len(pins) > 0 {
			serverID = pins[0].ServerID
		}
	}
	if serverID == "" {
		return
	}

	if err := c.daemon.Connect(ctx, serverID); err != nil {
		c.log.Warn().Err(err).Str("server", serverID).Msg("auto-connect failed")
	}
}

// refreshBackoff bounds a best-effort refresh to three quick attempts.
func refreshBackoff() retry.Backoff {
	backoff := retry.NewFibonacci(500 * time.Millisecond)
	backoff = retry.WithMaxRetries(2, backoff)
	return retry.WithJitterPercent(10, backoff)
}
