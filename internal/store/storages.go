// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
)

// Stores groups all local repositories into a single value that can be passed
// around the lifecycle layer.
type Stores struct {
	// Session is the stored-session accessor restored at boot.
	Session SessionRepository

	// Settings holds the client settings pushed to the daemon.
	Settings SettingsRepository

	// Servers caches the server inventory and the user's pins.
	Servers ServersRepository
}

// NewStores initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Stores] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStores(cfg config.Storage, log *logger.Logger) (*Stores, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Stores{
		Session:  NewSessionRepository(db, log),
		Settings: NewSettingsRepository(db, log),
		Servers:  NewServersRepository(db, log),
	}, nil
}
