// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// applyDefaults fills the zero fields of the merged configuration that have a
// sensible built-in value. Addresses and the DSN have no defaults; they must
// come from the environment, flags, or the JSON file.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.UpdateChannel == "" {
		cfg.App.UpdateChannel = "stable"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Adapter.ValidateTimeout == 0 {
		cfg.Adapter.ValidateTimeout = 10 * time.Second
	}
	if cfg.Launcher.StartTimeout == 0 {
		cfg.Launcher.StartTimeout = 20 * time.Second
	}
	if cfg.Checks.StatusPollInterval == 0 {
		cfg.Checks.StatusPollInterval = 30 * time.Second
	}
	if cfg.Checks.EventPollInterval == 0 {
		cfg.Checks.EventPollInterval = 2 * time.Minute
	}
	if cfg.Checks.JitterFraction == 0 {
		cfg.Checks.JitterFraction = 0.2
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ControlURL == "" || cfg.Adapter.DaemonURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Checks.JitterFraction < 0 || cfg.Checks.JitterFraction >= 1 {
		return ErrInvalidChecksConfigs
	}

	return nil
}
