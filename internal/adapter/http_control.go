package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type httpControlPlaneAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu         sync.RWMutex
	credential string
}

// NewHTTPControlPlaneAdapter builds the resty-backed control plane client
// from the adapter configuration.
func NewHTTPControlPlaneAdapter(cfg config.Adapter, log *logger.Logger) ControlPlaneAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ControlURL, "/")).
		SetTimeout(timeout)

	return &httpControlPlaneAdapter{client: cli, log: log}
}

func (h *httpControlPlaneAdapter) SetCredential(credential string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credential = strings.TrimSpace(credential)
}

func (h *httpControlPlaneAdapter) getCredential() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.credential
}

// request builds a request carrying the current bearer credential.
func (h *httpControlPlaneAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cred := h.getCredential(); cred != "" {
		req.SetHeader("Authorization", "Bearer "+cred)
	}
	return req
}

func (h *httpControlPlaneAdapter) Login(ctx context.Context, accountID, password string) (models.Session, error) {
	var body struct {
		Credential string `json:"credential"`
		AccountID  string `json:"account_id"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"account_id": accountID, "password": password}).
		SetResult(&body).
		Post("/api/session/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: login: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetCredential(body.Credential)

	return models.Session{
		Present:         true,
		Credential:      body.Credential,
		AccountID:       body.AccountID,
		LastValidatedAt: time.Now(),
	}, nil
}

func (h *httpControlPlaneAdapter) ValidateSession(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/api/session/validate")
	if err != nil {
		return fmt.Errorf("%w: validate session: %v", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

func (h *httpControlPlaneAdapter) RefreshSession(ctx context.Context) (models.Session, error) {
	var body struct {
		Credential string `json:"credential"`
		AccountID  string `json:"account_id"`
	}

	resp, err := h.request(ctx).
		SetResult(&body).
		Post("/api/session/refresh")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: refresh session: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetCredential(body.Credential)

	return models.Session{
		Present:         true,
		Credential:      body.Credential,
		AccountID:       body.AccountID,
		LastValidatedAt: time.Now(),
	}, nil
}

func (h *httpControlPlaneAdapter) GetServers(ctx context.Context) ([]models.Server, error) {
	var servers []models.Server

	resp, err := h.request(ctx).
		SetResult(&servers).
		Get("/api/servers")
	if err != nil {
		return nil, fmt.Errorf("%w: get servers: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return servers, nil
}

func (h *httpControlPlaneAdapter) GetLocation(ctx context.Context) (models.Location, error) {
	var location models.Location

	resp, err := h.request(ctx).
		SetResult(&location).
		Get("/api/location")
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: get location: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Location{}, err
	}

	return location, nil
}

func (h *httpControlPlaneAdapter) GetRemoteConfig(ctx context.Context) (map[string]string, error) {
	remote := map[string]string{}

	resp, err := h.request(ctx).
		SetResult(&remote).
		Get("/api/config")
	if err != nil {
		return nil, fmt.Errorf("%w: get remote config: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return remote, nil
}

func (h *httpControlPlaneAdapter) GetUpdateManifest(ctx context.Context, channel string) (models.UpdateState, error) {
	var manifest struct {
		Version string `json:"version"`
		URL     string `json:"url"`
	}

	resp, err := h.request(ctx).
		SetResult(&manifest).
		SetQueryParam("channel", channel).
		Get("/api/updates/manifest")
	if err != nil {
		return models.UpdateState{}, fmt.Errorf("%w: get update manifest: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateState{}, err
	}

	return models.UpdateState{
		Channel:   channel,
		Version:   manifest.Version,
		URL:       manifest.URL,
		CheckedAt: time.Now(),
	}, nil
}

func (h *httpControlPlaneAdapter) PollNotices(ctx context.Context) ([]string, error) {
	var notices []string

	resp, err := h.request(ctx).
		SetResult(&notices).
		Get("/api/notices")
	if err != nil {
		return nil, fmt.Errorf("%w: poll notices: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notices, nil
}
