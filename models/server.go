package models

import "time"

// Server is one tunnel endpoint offered by the control plane.
type Server struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Hostname string `json:"hostname"`

	// Load is the control plane's load estimate in percent, used for
	// ordering in the picker.
	Load int `json:"load"`
}

// ServerList is the cached form of the control plane's server inventory.
type ServerList struct {
	RetrievedAt time.Time `json:"retrieved_at"`
	Servers     []Server  `json:"servers"`
}

// PinnedServer is one entry of the derived pinned-server cache: a server the
// user marked for quick access, joined with its latest inventory row.
type PinnedServer struct {
	ServerID string    `json:"server_id"`
	PinnedAt time.Time `json:"pinned_at"`

	// Server is the current inventory row for ServerID. Zero when the
	// pinned server vanished from the inventory; such pins are kept but
	// rendered as unavailable.
	Server Server `json:"server"`
}
