// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events implements the typed publish/subscribe hub that decouples
// event producers (the lifecycle orchestrator, background services, the
// daemon event feed) from the open-ended set of consumers.
//
// Consumers register once at composition time; producers publish without
// knowing who listens. See [Router] for the delivery contract.
package events
