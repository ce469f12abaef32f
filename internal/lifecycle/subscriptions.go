// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"fmt"

	"github.com/MKhiriev/go-tunnel-keeper/internal/events"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Subscription binds one named consumer handler to an event category. The
// full wiring of the application is a flat table of these, built once at
// composition time, so who-listens-to-what is testable without constructing
// the whole application.
type Subscription struct {
	Category models.EventCategory
	Consumer string
	Handler  events.Handler
}

// RegisterAll registers every subscription on the bus in table order, which
// fixes the delivery order per category. The first rejected registration
// aborts wiring: a duplicate consumer name is a composition bug, not a
// runtime condition.
func RegisterAll(bus EventBus, table []Subscription) error {
	for _, sub := range table {
		if err := bus.Register(sub.Category, sub.Consumer, sub.Handler); err != nil {
			return fmt.Errorf("register %s on %s: %w", sub.Consumer, sub.Category, err)
		}
	}
	return nil
}
