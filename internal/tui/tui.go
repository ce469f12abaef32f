// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the presentation surfaces on bubbletea: the
// unauthenticated entry surface (login form), the authenticated main surface
// (connection status and server picker), and the notice overlay.
//
// The package is driven from two directions: the lifecycle orchestrator
// pushes surface changes through the [lifecycle.Presenter] methods, and the
// event hub pushes domain events through [TUI.Subscriptions]. Both paths
// turn into bubbletea messages, so all rendering state stays on the
// program's own goroutine.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tunnel-keeper/internal/lifecycle"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Authenticator performs the interactive credential exchange.
type Authenticator interface {
	Login(ctx context.Context, accountID, password string) (models.Session, error)
}

// Controller is the slice of the orchestrator the surfaces drive.
type Controller interface {
	NotifyLoginSucceeded(ctx context.Context, sess models.Session) error
	NotifyLogout(reason string) error
}

// TunnelControl is the slice of the daemon adapter the main surface drives.
type TunnelControl interface {
	Connect(ctx context.Context, serverID string) error
	Disconnect(ctx context.Context) error
}

// PinStore persists the user's pinned servers.
type PinStore interface {
	Pin(ctx context.Context, serverID string) error
	Unpin(ctx context.Context, serverID string) error
}

// TUI owns the bubbletea program and adapts it to the orchestrator's
// Presenter contract.
type TUI struct {
	program *tea.Program
	log     *logger.Logger
}

// New builds the program with the root model. Run must be called on the main
// goroutine; Presenter calls may arrive before Run and are queued.
func New(auth Authenticator, controller Controller, tunnel TunnelControl, pins PinStore, log *logger.Logger) *TUI {
	root := newAppModel(auth, controller, tunnel, pins, log)
	program := tea.NewProgram(root, tea.WithAltScreen())
	return &TUI{program: program, log: log}
}

// Run blocks until the user quits.
func (t *TUI) Run() error {
	_, err := t.program.Run()
	return err
}

// Quit asks the program to exit.
func (t *TUI) Quit() {
	t.program.Quit()
}

// ── lifecycle.Presenter ──────────────────────────────────────────────────────

func (t *TUI) ShowLogin() {
	t.program.Send(showLoginMsg{})
}

func (t *TUI) ShowLoginError(reason string) {
	t.program.Send(loginErrorMsg{reason: reason})
}

func (t *TUI) ActivateMain(view lifecycle.MainView) {
	t.program.Send(activateMainMsg{view: view})
}

func (t *TUI) HideMain() {
	t.program.Send(hideMainMsg{})
}

func (t *TUI) LoadViewState(context.Context) error {
	t.program.Send(loadViewStateMsg{})
	return nil
}

func (t *TUI) CloseOverlays() {
	t.program.Send(closeOverlaysMsg{})
}

func (t *TUI) ShowNotice(text string) {
	t.program.Send(noticeMsg{text: text})
}

// ── event subscriptions ──────────────────────────────────────────────────────

// Subscriptions returns the surfaces' event bindings: everything the UI
// renders live (connection state, server list, location, update state,
// service faults) arrives through the hub like any other consumer.
func (t *TUI) Subscriptions() []lifecycle.Subscription {
	forward := func(event models.Event) error {
		t.program.Send(domainEventMsg{event: event})
		return nil
	}

	categories := []models.EventCategory{
		models.EventConnectionStateChanged,
		models.EventServersUpdated,
		models.EventLocationChanged,
		models.EventUpdateStateChanged,
		models.EventServiceFault,
	}

	table := make([]lifecycle.Subscription, 0, len(categories))
	for _, category := range categories {
		table = append(table, lifecycle.Subscription{
			Category: category,
			Consumer: "tui",
			Handler:  forward,
		})
	}
	return table
}
