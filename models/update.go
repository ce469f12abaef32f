package models

import "time"

// UpdateState is the update checker's latest verdict about client freshness.
type UpdateState struct {
	// Channel is the release channel the manifest was fetched from.
	Channel string `json:"channel"`

	// Available reports whether the manifest advertises a newer build.
	Available bool `json:"available"`

	// Version is the advertised build version when Available is true.
	Version string `json:"version"`

	// URL points at the advertised build's download location.
	URL string `json:"url"`

	// CheckedAt is when the manifest was last fetched successfully.
	CheckedAt time.Time `json:"checked_at"`
}
