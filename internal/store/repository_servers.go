package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type serversRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewServersRepository(db *DB, log *logger.Logger) ServersRepository {
	return &serversRepository{db: db, logger: log}
}

func (r *serversRepository) GetCachedServers(ctx context.Context) (models.ServerList, error) {
	var (
		payload     string
		retrievedAt time.Time
	)

	row := r.db.QueryRowContext(ctx, getServerCache)
	err := row.Scan(&payload, &retrievedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServerList{}, ErrNoCachedServers
	}
	if err != nil {
		return models.ServerList{}, fmt.Errorf("get cached servers: %w", err)
	}

	var servers []models.Server
	if err = json.Unmarshal([]byte(payload), &servers); err != nil {
		return models.ServerList{}, fmt.Errorf("decode cached servers: %w", err)
	}

	return models.ServerList{RetrievedAt: retrievedAt, Servers: servers}, nil
}

func (r *serversRepository) SaveServerList(ctx context.Context, list models.ServerList) error {
	payload, err := json.Marshal(list.Servers)
	if err != nil {
		return fmt.Errorf("encode server list: %w", err)
	}

	_, err = r.db.ExecContext(ctx, saveServerCache, string(payload), list.RetrievedAt)
	if err != nil {
		return fmt.Errorf("save server list: %w", err)
	}

	return nil
}

func (r *serversRepository) ListPins(ctx context.Context) ([]models.PinnedServer, error) {
	query, args, err := sq.Select("server_id", "pinned_at").
		From("pins").
		OrderBy("pinned_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pins query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	defer rows.Close()

	var pins []models.PinnedServer
	for rows.Next() {
		var pin models.PinnedServer
		if err = rows.Scan(&pin.ServerID, &pin.PinnedAt); err != nil {
			return nil, fmt.Errorf("scan pin: %w", err)
		}
		pins = append(pins, pin)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list pins rows: %w", err)
	}

	return pins, nil
}

func (r *serversRepository) Pin(ctx context.Context, serverID string) error {
	_, err := r.db.ExecContext(ctx, pinServer, serverID, time.Now())
	if err != nil {
		return fmt.Errorf("pin server: %w", err)
	}

	return nil
}

func (r *serversRepository) Unpin(ctx context.Context, serverID string) error {
	_, err := r.db.ExecContext(ctx, unpinServer, serverID)
	if err != nil {
		return fmt.Errorf("unpin server: %w", err)
	}

	return nil
}
