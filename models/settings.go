package models

import "time"

// Setting keys used in EventSettingsChanged payloads and as rows in the local
// settings store.
const (
	SettingProtocol    = "protocol"
	SettingKillSwitch  = "kill_switch"
	SettingAutoConnect = "auto_connect"
	SettingDNS         = "dns"
)

// Settings is the client-side configuration pushed to the connection daemon
// after login and whenever a key changes.
type Settings struct {
	// Protocol selects the tunnel protocol ("wireguard", "openvpn-udp",
	// "openvpn-tcp").
	Protocol string `json:"protocol"`

	// KillSwitch blocks all traffic when the tunnel drops.
	KillSwitch bool `json:"kill_switch"`

	// AutoConnect reconnects to the last server after login.
	AutoConnect bool `json:"auto_connect"`

	// DNS is an optional list of resolver overrides.
	DNS []string `json:"dns,omitempty"`

	// UpdatedAt is the last local modification time, used to decide whether
	// a daemon push is needed.
	UpdatedAt time.Time `json:"updated_at"`
}
