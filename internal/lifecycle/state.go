// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

// BootState is the orchestrator's coarse lifecycle state. Transitions are
// linear through boot, branch once at StateValidatingSession, then cycle
// between StateAuthenticated and StateUnauthenticated for the running
// lifetime. StateShuttingDown is terminal.
type BootState int32

const (
	StateInitializing BootState = iota
	StateServicesStarting
	StateValidatingSession
	StateUnauthenticated
	StateAuthenticated
	StateShuttingDown
)

func (s BootState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateServicesStarting:
		return "services-starting"
	case StateValidatingSession:
		return "validating-session"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateShuttingDown:
		return "shutting-down"
	default:
		return "unknown"
	}
}
