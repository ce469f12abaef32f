// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tunnel-keeper/internal/lifecycle"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// mainModel is the authenticated interactive surface: connection status,
// server picker, pins, and the live state fed by hub events.
type mainModel struct {
	tunnel TunnelControl
	pins   PinStore

	accountID  string
	connection models.StatusReport
	servers    []models.Server
	pinned     map[string]bool
	location   models.Location
	update     models.UpdateState

	cursor  int
	status  string
	visible bool
}

func newMainModel(tunnel TunnelControl, pins PinStore) mainModel {
	return mainModel{
		tunnel: tunnel,
		pins:   pins,
		pinned: map[string]bool{},
	}
}

// activate installs the view model assembled by the post-login chain.
func (m *mainModel) activate(view lifecycle.MainView) {
	m.accountID = view.AccountID
	m.connection = view.Connection
	m.servers = view.Servers
	m.pinned = map[string]bool{}
	for _, pin := range view.Pins {
		m.pinned[pin.ServerID] = true
	}
	m.visible = true
	m.status = ""
	if m.cursor >= len(m.servers) {
		m.cursor = 0
	}
}

// restoreViewState re-applies the last cursor position. Kept deliberately
// small: the persistent part of view state lives in the settings store.
func (m *mainModel) restoreViewState() {
	if m.cursor >= len(m.servers) {
		m.cursor = 0
	}
}

func (m *mainModel) setConnectionState(state models.ConnectionState) {
	m.connection.State = state
	m.connection.Since = time.Now()
}

func (m *mainModel) setServers(servers []models.Server) {
	m.servers = servers
	if m.cursor >= len(m.servers) {
		m.cursor = 0
	}
}

func (m *mainModel) setLocation(location models.Location) {
	m.location = location
}

func (m *mainModel) setUpdate(update models.UpdateState) {
	m.update = update
}

func (m *mainModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tunnelActionMsg:
		if msg.err != nil {
			m.status = "tunnel request failed: " + msg.err.Error()
		}
		return nil

	case pinToggledMsg:
		if msg.err != nil {
			m.status = "pin change failed: " + msg.err.Error()
			return nil
		}
		m.pinned[msg.serverID] = msg.pinned
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.down):
			if m.cursor < len(m.servers)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.connect):
			return m.connectCmd()
		case key.Matches(msg, keys.disconnect):
			return m.disconnectCmd()
		case key.Matches(msg, keys.pin):
			return m.togglePinCmd()
		}
	}
	return nil
}

func (m *mainModel) selected() (models.Server, bool) {
	if m.cursor < 0 || m.cursor >= len(m.servers) {
		return models.Server{}, false
	}
	return m.servers[m.cursor], true
}

func (m *mainModel) connectCmd() tea.Cmd {
	server, ok := m.selected()
	if !ok {
		return nil
	}

	m.status = "connecting to " + server.Name + "..."
	tunnel := m.tunnel

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return tunnelActionMsg{err: tunnel.Connect(ctx, server.ID)}
	}
}

func (m *mainModel) disconnectCmd() tea.Cmd {
	m.status = "disconnecting..."
	tunnel := m.tunnel

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return tunnelActionMsg{err: tunnel.Disconnect(ctx)}
	}
}

func (m *mainModel) togglePinCmd() tea.Cmd {
	server, ok := m.selected()
	if !ok {
		return nil
	}

	pins := m.pins
	pinned := m.pinned[server.ID]

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if pinned {
			return pinToggledMsg{serverID: server.ID, pinned: false, err: pins.Unpin(ctx, server.ID)}
		}
		return pinToggledMsg{serverID: server.ID, pinned: true, err: pins.Pin(ctx, server.ID)}
	}
}

func (m *mainModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tunnel-keeper") + "  " + helpStyle.Render(m.accountID) + "\n\n")
	b.WriteString(m.statusLine() + "\n")

	if m.location.Country != "" {
		b.WriteString(helpStyle.Render("your location: "+m.location.City+", "+m.location.Country) + "\n")
	}
	if m.update.Available {
		b.WriteString(errorStyle.Render("update available: "+m.update.Version) + "\n")
	}
	b.WriteString("\n")

	if len(m.servers) == 0 {
		b.WriteString(helpStyle.Render("no servers available") + "\n")
	}
	for i, server := range m.servers {
		line := fmt.Sprintf("%s, %s  %d%%", server.Name, server.Country, server.Load)
		if m.pinned[server.ID] {
			line = "★ " + line
		} else {
			line = "  " + line
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter/c connect, d disconnect, p pin, L logout, q quit"))
	return b.String()
}

func (m *mainModel) statusLine() string {
	switch m.connection.State {
	case models.ConnectionConnected:
		return statusUpStyle.Render("● connected") + helpStyle.Render(" to "+m.connection.ServerID)
	case models.ConnectionConnecting, models.ConnectionReconnecting:
		return statusDownStyle.Render("◌ " + string(m.connection.State) + "...")
	case models.ConnectionDisconnecting:
		return statusDownStyle.Render("◌ disconnecting...")
	default:
		return statusDownStyle.Render("○ disconnected")
	}
}
