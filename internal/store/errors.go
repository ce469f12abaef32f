package store

import "errors"

var (
	ErrLocalSessionNotFound  = errors.New("local session not found")
	ErrLocalSettingsNotFound = errors.New("local settings not found")
	ErrNoCachedServers       = errors.New("no cached server list")
)
