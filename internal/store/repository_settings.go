package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, log *logger.Logger) SettingsRepository {
	return &settingsRepository{db: db, logger: log}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (models.Settings, error) {
	var (
		settings models.Settings
		dnsJSON  string
	)

	row := r.db.QueryRowContext(ctx, getSettings)
	err := row.Scan(&settings.Protocol, &settings.KillSwitch, &settings.AutoConnect, &dnsJSON, &settings.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, ErrLocalSettingsNotFound
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	if err = json.Unmarshal([]byte(dnsJSON), &settings.DNS); err != nil {
		return models.Settings{}, fmt.Errorf("decode settings dns: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	dnsJSON, err := json.Marshal(settings.DNS)
	if err != nil {
		return fmt.Errorf("encode settings dns: %w", err)
	}

	_, err = r.db.ExecContext(ctx, saveSettings,
		settings.Protocol, settings.KillSwitch, settings.AutoConnect, string(dnsJSON), settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
