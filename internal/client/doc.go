// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the tunnel-keeper client process.
//
// It wires the lifecycle orchestrator, background services, event hub, and
// terminal surfaces into a single runnable application.
package client
