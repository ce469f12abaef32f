package tui

import (
	"github.com/MKhiriev/go-tunnel-keeper/internal/lifecycle"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Messages pushed by the orchestrator through the Presenter methods.
type (
	showLoginMsg     struct{}
	loginErrorMsg    struct{ reason string }
	activateMainMsg  struct{ view lifecycle.MainView }
	hideMainMsg      struct{}
	loadViewStateMsg struct{}
	closeOverlaysMsg struct{}
	noticeMsg        struct{ text string }
)

// domainEventMsg wraps a hub event forwarded to the UI.
type domainEventMsg struct {
	event models.Event
}

// loginResultMsg reports the outcome of an interactive login attempt.
type loginResultMsg struct {
	session models.Session
	err     error
}

// tunnelActionMsg reports the outcome of a connect/disconnect request.
type tunnelActionMsg struct {
	err error
}

// pinToggledMsg reports a pin/unpin outcome for the selected server.
type pinToggledMsg struct {
	serverID string
	pinned   bool
	err      error
}
