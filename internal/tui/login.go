// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// loginModel is the unauthenticated entry surface: account + password form.
type loginModel struct {
	auth       Authenticator
	controller Controller

	account  textinput.Model
	password textinput.Model
	focused  int

	busy    bool
	errText string
}

func newLoginModel(auth Authenticator, controller Controller) loginModel {
	account := textinput.New()
	account.Placeholder = "account id"
	account.CharLimit = 128
	account.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return loginModel{
		auth:       auth,
		controller: controller,
		account:    account,
		password:   password,
	}
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) reset() {
	m.busy = false
	m.errText = ""
	m.password.SetValue("")
	m.focused = 0
	m.account.Focus()
	m.password.Blur()
}

func (m *loginModel) fail(reason string) {
	m.busy = false
	m.errText = reason
}

func (m *loginModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			m.fail(loginErrorText(msg.err))
			return nil
		}
		return m.completeCmd(msg.session)

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		// Plain runes must reach the inputs, so only control keys act here.
		switch {
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
			m.toggleFocus()
			return nil
		case key.Matches(msg, keys.enter):
			return m.submitCmd()
		case msg.Type == tea.KeyCtrlC:
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.account, cmd = m.account.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *loginModel) toggleFocus() {
	if m.focused == 0 {
		m.focused = 1
		m.account.Blur()
		m.password.Focus()
		return
	}
	m.focused = 0
	m.password.Blur()
	m.account.Focus()
}

// submitCmd runs the credential exchange off the UI goroutine.
func (m *loginModel) submitCmd() tea.Cmd {
	account := strings.TrimSpace(m.account.Value())
	password := m.password.Value()
	if account == "" || password == "" {
		m.errText = "account id and password are required"
		return nil
	}

	m.busy = true
	m.errText = ""
	auth := m.auth

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sess, err := auth.Login(ctx, account, password)
		return loginResultMsg{session: sess, err: err}
	}
}

// completeCmd hands the fresh session to the orchestrator, which runs the
// whole post-login chain and activates the main surface.
func (m *loginModel) completeCmd(sess models.Session) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := controller.NotifyLoginSucceeded(ctx, sess); err != nil {
			return loginErrorMsg{reason: err.Error()}
		}
		return nil
	}
}

func loginErrorText(err error) string {
	switch {
	case errors.Is(err, adapter.ErrSessionRejected):
		return "account id or password is incorrect"
	case adapter.IsTransient(err):
		return "could not reach the server, check your connection"
	default:
		return err.Error()
	}
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tunnel-keeper") + "\n\n")
	b.WriteString("Sign in to continue\n\n")
	b.WriteString(m.account.View() + "\n")
	b.WriteString(m.password.View() + "\n\n")

	if m.busy {
		b.WriteString("signing in...\n")
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab to switch fields, enter to sign in"))
	return b.String()
}
