package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type httpDaemonAdapter struct {
	client  *resty.Client
	baseURL string
	log     *logger.Logger
}

// NewHTTPDaemonAdapter builds the resty-backed client for the local
// connection daemon's control socket.
func NewHTTPDaemonAdapter(cfg config.Adapter, log *logger.Logger) DaemonAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(cfg.DaemonURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpDaemonAdapter{client: cli, baseURL: baseURL, log: log}
}

func (d *httpDaemonAdapter) Status(ctx context.Context) (models.StatusReport, error) {
	var report models.StatusReport

	resp, err := d.client.R().
		SetContext(ctx).
		SetResult(&report).
		Get("/v1/status")
	if err != nil {
		return models.StatusReport{}, fmt.Errorf("%w: status: %v", ErrDaemonUnavailable, err)
	}
	if err = mapDaemonError(resp); err != nil {
		return models.StatusReport{}, err
	}

	return report, nil
}

func (d *httpDaemonAdapter) PushSettings(ctx context.Context, settings models.Settings) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(settings).
		Put("/v1/settings")
	if err != nil {
		return fmt.Errorf("%w: push settings: %v", ErrDaemonUnavailable, err)
	}
	return mapDaemonError(resp)
}

func (d *httpDaemonAdapter) Connect(ctx context.Context, serverID string) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"server_id": serverID}).
		Post("/v1/connect")
	if err != nil {
		return fmt.Errorf("%w: connect: %v", ErrDaemonUnavailable, err)
	}
	return mapDaemonError(resp)
}

func (d *httpDaemonAdapter) Disconnect(ctx context.Context) error {
	resp, err := d.client.R().
		SetContext(ctx).
		Post("/v1/disconnect")
	if err != nil {
		return fmt.Errorf("%w: disconnect: %v", ErrDaemonUnavailable, err)
	}
	return mapDaemonError(resp)
}
