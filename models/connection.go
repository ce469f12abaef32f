package models

import "time"

// ConnectionState is the tunnel state reported by the local connection daemon.
type ConnectionState string

const (
	ConnectionDisconnected  ConnectionState = "disconnected"
	ConnectionConnecting    ConnectionState = "connecting"
	ConnectionConnected     ConnectionState = "connected"
	ConnectionReconnecting  ConnectionState = "reconnecting"
	ConnectionDisconnecting ConnectionState = "disconnecting"
)

// StatusReport is the daemon's answer to a status query.
type StatusReport struct {
	// State is the current tunnel state.
	State ConnectionState `json:"state"`

	// ServerID identifies the server the tunnel is (or was last) attached
	// to; empty when disconnected.
	ServerID string `json:"server_id"`

	// Since marks when the current state was entered.
	Since time.Time `json:"since"`

	// Bypass reports whether the daemon is running the pre-authentication
	// fallback connectivity path rather than a regular tunnel.
	Bypass bool `json:"bypass"`
}
