// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type screen int

const (
	screenLogin screen = iota
	screenMain
)

// appModel is the root bubbletea model: it routes presenter messages and
// domain events to the active screen and owns the notice overlay.
type appModel struct {
	controller Controller
	log        *logger.Logger

	screen screen
	login  loginModel
	main   mainModel

	// notice is the overlay text; empty means no overlay.
	notice string

	width  int
	height int
}

func newAppModel(auth Authenticator, controller Controller, tunnel TunnelControl, pins PinStore, log *logger.Logger) *appModel {
	return &appModel{
		controller: controller,
		log:        log,
		screen:     screenLogin,
		login:      newLoginModel(auth, controller),
		main:       newMainModel(tunnel, pins),
	}
}

func (m *appModel) Init() tea.Cmd {
	return m.login.Init()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	// Orchestrator-driven surface changes.
	case showLoginMsg:
		m.screen = screenLogin
		m.login.reset()
		return m, m.login.Init()

	case loginErrorMsg:
		m.screen = screenLogin
		m.login.fail(msg.reason)
		return m, nil

	case activateMainMsg:
		m.screen = screenMain
		m.main.activate(msg.view)
		return m, nil

	case hideMainMsg:
		if m.screen == screenMain {
			m.screen = screenLogin
		}
		return m, nil

	case loadViewStateMsg:
		m.main.restoreViewState()
		return m, nil

	case closeOverlaysMsg:
		m.notice = ""
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case domainEventMsg:
		return m, m.handleDomainEvent(msg.event)

	case tea.KeyMsg:
		if m.notice != "" {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.notice = ""
			}
			return m, nil
		}
		if key.Matches(msg, keys.quit) && m.screen == screenMain {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.logout) && m.screen == screenMain {
			return m, m.logoutCmd()
		}
	}

	return m, m.updateActive(msg)
}

func (m *appModel) updateActive(msg tea.Msg) tea.Cmd {
	switch m.screen {
	case screenLogin:
		return m.login.Update(msg)
	case screenMain:
		return m.main.Update(msg)
	default:
		return nil
	}
}

// handleDomainEvent folds hub events into the main screen's live state.
func (m *appModel) handleDomainEvent(event models.Event) tea.Cmd {
	switch event.Category {
	case models.EventConnectionStateChanged:
		m.main.setConnectionState(event.Connection)
	case models.EventServersUpdated:
		m.main.setServers(event.Servers)
	case models.EventLocationChanged:
		m.main.setLocation(event.Location)
	case models.EventUpdateStateChanged:
		m.main.setUpdate(event.Update)
	case models.EventServiceFault:
		m.notice = "Background service \"" + event.ServiceName + "\" failed to start. Some features may be unavailable."
	}
	return nil
}

func (m *appModel) logoutCmd() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		if err := controller.NotifyLogout("user request"); err != nil {
			return noticeMsg{text: "Logout failed: " + err.Error()}
		}
		return nil
	}
}

func (m *appModel) View() string {
	var body string
	switch m.screen {
	case screenMain:
		body = m.main.View()
	default:
		body = m.login.View()
	}

	if m.notice != "" {
		body += "\n\n" + overlayBoxStyle.Render(m.notice) + "\n" + helpStyle.Render("enter/esc to dismiss")
	}

	return appStyle.Render(body)
}