// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the client's outbound transports: the resty
// HTTP client for the remote control plane, the resty HTTP client for the
// local connection daemon, and the daemon's websocket event feed.
//
// The package owns the error taxonomy boundary: every failure is classified
// as either a transport-level failure (verdict unknown) or an authoritative
// rejection before it reaches the rest of the application.
package adapter
