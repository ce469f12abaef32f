// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tunnel-keeper client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the release channel used
	// by the update checker.
	App App `envPrefix:"APP_"`

	// Adapter holds addresses and timeouts for the two outbound transports:
	// the remote control plane and the local connection daemon.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Launcher holds background service start policy.
	Launcher Launcher `envPrefix:"LAUNCHER_"`

	// Checks holds the periodic background check intervals.
	Checks Checks `envPrefix:"CHECKS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UpdateChannel is the release channel the update checker follows
	// ("stable", "beta").
	// Env: APP_UPDATE_CHANNEL
	UpdateChannel string `env:"UPDATE_CHANNEL"`

	// Version is the semantic version string of the running client,
	// compared against the update manifest.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// NotifierCommand is the external process spawned to surface a
	// background service failure to the user. Empty disables the notifier.
	// Env: APP_NOTIFIER_COMMAND
	NotifierCommand string `env:"NOTIFIER_COMMAND"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// ControlURL is the base URL of the remote control plane
	// (session validation, server inventory, remote config).
	// Env: ADAPTER_CONTROL_URL
	ControlURL string `env:"CONTROL_URL"`

	// DaemonURL is the base URL of the local connection daemon's control
	// socket (e.g. "http://127.0.0.1:7301").
	// Env: ADAPTER_DAEMON_URL
	DaemonURL string `env:"DAEMON_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ValidateTimeout bounds the boot-time session validation exchange.
	// Distinct from RequestTimeout so a slow control plane cannot stall
	// boot indefinitely.
	// Env: ADAPTER_VALIDATE_TIMEOUT
	ValidateTimeout time.Duration `env:"VALIDATE_TIMEOUT"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path used by the local store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// Launcher contains background service start policy.
type Launcher struct {
	// StartTimeout bounds the wait for each background service start.
	// A service that does not report within this window is treated as
	// failed-to-start but never blocks the rest of boot.
	// Env: LAUNCHER_START_TIMEOUT
	StartTimeout time.Duration `env:"START_TIMEOUT"`
}

// Checks contains the periodic background check settings.
type Checks struct {
	// StatusPollInterval is the base interval between daemon status polls.
	// Env: CHECKS_STATUS_POLL_INTERVAL
	StatusPollInterval time.Duration `env:"STATUS_POLL_INTERVAL"`

	// EventPollInterval is the base interval between control-plane event
	// polls.
	// Env: CHECKS_EVENT_POLL_INTERVAL
	EventPollInterval time.Duration `env:"EVENT_POLL_INTERVAL"`

	// JitterFraction randomizes each tick within
	// [base*(1-f), base*(1+f)] so many clients do not synchronize.
	// Env: CHECKS_JITTER_FRACTION
	JitterFraction float64 `env:"JITTER_FRACTION"`

	// UpdateCheckInterval is the base interval between update manifest
	// fetches.
	// Env: CHECKS_UPDATE_CHECK_INTERVAL
	UpdateCheckInterval time.Duration `env:"UPDATE_CHECK_INTERVAL"`
}

// GetConfig builds the client configuration by merging environment variables,
// command-line flags, and the optional JSON file, then validates the result.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
