// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tunnel-keeper/internal/lifecycle"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type stubAuth struct {
	session models.Session
	err     error
}

func (s *stubAuth) Login(context.Context, string, string) (models.Session, error) {
	return s.session, s.err
}

type stubController struct {
	logins  int
	logouts int
}

func (s *stubController) NotifyLoginSucceeded(context.Context, models.Session) error {
	s.logins++
	return nil
}

func (s *stubController) NotifyLogout(string) error {
	s.logouts++
	return nil
}

type stubTunnel struct {
	connected    []string
	disconnected int
}

func (s *stubTunnel) Connect(_ context.Context, serverID string) error {
	s.connected = append(s.connected, serverID)
	return nil
}

func (s *stubTunnel) Disconnect(context.Context) error {
	s.disconnected++
	return nil
}

type stubPins struct {
	pinned   []string
	unpinned []string
}

func (s *stubPins) Pin(_ context.Context, id string) error {
	s.pinned = append(s.pinned, id)
	return nil
}

func (s *stubPins) Unpin(_ context.Context, id string) error {
	s.unpinned = append(s.unpinned, id)
	return nil
}

func newTestModel() (*appModel, *stubController, *stubTunnel, *stubPins) {
	controller := &stubController{}
	tunnel := &stubTunnel{}
	pins := &stubPins{}
	m := newAppModel(&stubAuth{}, controller, tunnel, pins, logger.Nop())
	return m, controller, tunnel, pins
}

func testView() lifecycle.MainView {
	return lifecycle.MainView{
		AccountID:  "acc-1",
		Connection: models.StatusReport{State: models.ConnectionDisconnected},
		Servers: []models.Server{
			{ID: "se-1", Name: "Stockholm", Country: "SE", Load: 12},
			{ID: "fi-1", Name: "Helsinki", Country: "FI", Load: 40},
		},
		Pins: []models.PinnedServer{{ServerID: "fi-1"}},
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ── surface switching ────────────────────────────────────────────────────────

func TestActivateMain_SwitchesScreenAndInstallsView(t *testing.T) {
	m, _, _, _ := newTestModel()

	_, _ = m.Update(activateMainMsg{view: testView()})

	assert.Equal(t, screenMain, m.screen)
	assert.Equal(t, "acc-1", m.main.accountID)
	assert.True(t, m.main.pinned["fi-1"])
	assert.Contains(t, m.View(), "Stockholm")
}

func TestShowLogin_ResetsForm(t *testing.T) {
	m, _, _, _ := newTestModel()
	_, _ = m.Update(activateMainMsg{view: testView()})

	_, _ = m.Update(showLoginMsg{})

	assert.Equal(t, screenLogin, m.screen)
	assert.Empty(t, m.login.password.Value())
}

func TestLoginError_SurfacesReason(t *testing.T) {
	m, _, _, _ := newTestModel()

	_, _ = m.Update(loginErrorMsg{reason: "expired"})

	assert.Equal(t, screenLogin, m.screen)
	assert.Contains(t, m.View(), "expired")
}

// ── domain events ────────────────────────────────────────────────────────────

func TestDomainEvents_UpdateLiveState(t *testing.T) {
	m, _, _, _ := newTestModel()
	_, _ = m.Update(activateMainMsg{view: testView()})

	_, _ = m.Update(domainEventMsg{event: models.NewConnectionStateChangedEvent(models.ConnectionConnected)})
	assert.Equal(t, models.ConnectionConnected, m.main.connection.State)

	_, _ = m.Update(domainEventMsg{event: models.NewServersUpdatedEvent([]models.Server{{ID: "de-1", Name: "Berlin"}})})
	assert.Len(t, m.main.servers, 1)

	_, _ = m.Update(domainEventMsg{event: models.NewLocationChangedEvent(models.Location{Country: "FI", City: "Helsinki"})})
	assert.Contains(t, m.View(), "Helsinki")

	_, _ = m.Update(domainEventMsg{event: models.NewUpdateStateChangedEvent(models.UpdateState{Available: true, Version: "2.0.0"})})
	assert.Contains(t, m.View(), "2.0.0")
}

func TestServiceFaultEvent_ShowsNoticeOverlay(t *testing.T) {
	m, _, _, _ := newTestModel()

	_, _ = m.Update(domainEventMsg{event: models.NewServiceFaultEvent("connd-events", assert.AnError)})

	assert.NotEmpty(t, m.notice)
	assert.Contains(t, m.View(), "connd-events")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.notice)
}

// ── main screen actions ──────────────────────────────────────────────────────

func TestConnectKey_ConnectsSelectedServer(t *testing.T) {
	m, _, tunnel, _ := newTestModel()
	_, _ = m.Update(activateMainMsg{view: testView()})

	_, cmd := m.Update(keyPress('c'))
	require.NotNil(t, cmd)
	_ = cmd()

	assert.Equal(t, []string{"se-1"}, tunnel.connected)
}

func TestPinKey_TogglesPinForSelectedServer(t *testing.T) {
	m, _, _, pins := newTestModel()
	_, _ = m.Update(activateMainMsg{view: testView()})

	// Cursor on se-1 (unpinned): pin it.
	_, cmd := m.Update(keyPress('p'))
	require.NotNil(t, cmd)
	msg := cmd()
	_, _ = m.Update(msg)
	assert.Equal(t, []string{"se-1"}, pins.pinned)
	assert.True(t, m.main.pinned["se-1"])

	// Move to fi-1 (pinned in the view model): unpin it.
	_, _ = m.Update(keyPress('j'))
	_, cmd = m.Update(keyPress('p'))
	require.NotNil(t, cmd)
	msg = cmd()
	_, _ = m.Update(msg)
	assert.Equal(t, []string{"fi-1"}, pins.unpinned)
}

func TestLogoutKey_CallsController(t *testing.T) {
	m, controller, _, _ := newTestModel()
	_, _ = m.Update(activateMainMsg{view: testView()})

	_, cmd := m.Update(keyPress('L'))
	require.NotNil(t, cmd)
	_ = cmd()

	assert.Equal(t, 1, controller.logouts)
}

// ── login screen ─────────────────────────────────────────────────────────────

func TestLoginSubmit_EmptyFieldsRejectedLocally(t *testing.T) {
	m, controller, _, _ := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "required")
	assert.Zero(t, controller.logins)
}

func TestLoginResult_SuccessHandsSessionToController(t *testing.T) {
	m, controller, _, _ := newTestModel()

	cmd := m.login.Update(loginResultMsg{session: models.Session{Present: true, AccountID: "acc-1"}})
	require.NotNil(t, cmd)
	_ = cmd()

	assert.Equal(t, 1, controller.logins)
}

func TestLoginResult_FailureShowsError(t *testing.T) {
	m, controller, _, _ := newTestModel()

	cmd := m.login.Update(loginResultMsg{err: assert.AnError})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.login.errText)
	assert.Zero(t, controller.logins)
}
