// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import "sync"

// BypassMode tracks whether the pre-authentication fallback connectivity
// path is active. It is set when the daemon reports a bypass tunnel (or the
// entry surface requests one) and cleared by the post-login teardown.
type BypassMode struct {
	mu     sync.Mutex
	active bool
}

// NewBypassMode returns an inactive tracker.
func NewBypassMode() *BypassMode {
	return &BypassMode{}
}

// Activate marks the bypass path active.
func (b *BypassMode) Activate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = true
}

// Clear marks the bypass path inactive.
func (b *BypassMode) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = false
}

// Active reports whether the bypass path is currently active.
func (b *BypassMode) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}
