// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

func newTestControlAdapter(t *testing.T, serverURL string) *httpControlPlaneAdapter {
	t.Helper()
	cfg := config.Adapter{ControlURL: serverURL}
	a := NewHTTPControlPlaneAdapter(cfg, logger.Nop())
	return a.(*httpControlPlaneAdapter)
}

// ── ValidateSession ──────────────────────────────────────────────────────────

func TestValidateSession_Valid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/session/validate", r.URL.Path)
		assert.Equal(t, "Bearer stored-credential", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	a.SetCredential("stored-credential")

	assert.NoError(t, a.ValidateSession(context.Background()))
}

func TestValidateSession_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("expired"))
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	err := a.ValidateSession(context.Background())

	require.Error(t, err)
	assert.True(t, IsRejection(err))
	assert.False(t, IsTransient(err))
}

func TestValidateSession_ServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	err := a.ValidateSession(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.False(t, IsRejection(err))
}

func TestValidateSession_ConnectionRefusedIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	a := newTestControlAdapter(t, srv.URL)
	err := a.ValidateSession(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

// ── RefreshSession ───────────────────────────────────────────────────────────

func TestRefreshSession_InstallsNewCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/refresh", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"credential": "fresh-credential",
			"account_id": "acc-42",
		})
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	a.SetCredential("stale-credential")

	session, err := a.RefreshSession(context.Background())
	require.NoError(t, err)

	assert.True(t, session.Present)
	assert.Equal(t, "fresh-credential", session.Credential)
	assert.Equal(t, "acc-42", session.AccountID)
	assert.Equal(t, "fresh-credential", a.getCredential())
}

func TestRefreshSession_RejectedMeansExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	_, err := a.RefreshSession(context.Background())

	require.Error(t, err)
	assert.True(t, IsRejection(err))
}

// ── GetServers ───────────────────────────────────────────────────────────────

func TestGetServers_DecodesInventory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/servers", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Server{
			{ID: "fr-1", Name: "Paris 1", Country: "FR", Load: 34},
			{ID: "de-2", Name: "Berlin 2", Country: "DE", Load: 61},
		})
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	servers, err := a.GetServers(context.Background())

	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "fr-1", servers[0].ID)
	assert.Equal(t, 61, servers[1].Load)
}

// ── GetUpdateManifest ────────────────────────────────────────────────────────

func TestGetUpdateManifest_CarriesChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "beta", r.URL.Query().Get("channel"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version": "2.4.0",
			"url":     "https://downloads.example.com/2.4.0",
		})
	}))
	defer srv.Close()

	a := newTestControlAdapter(t, srv.URL)
	state, err := a.GetUpdateManifest(context.Background(), "beta")

	require.NoError(t, err)
	assert.Equal(t, "beta", state.Channel)
	assert.Equal(t, "2.4.0", state.Version)
	assert.False(t, state.CheckedAt.IsZero())
}
