// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tunnel-keeper/internal/events"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

func TestRegisterAll_TableOrderIsDeliveryOrder(t *testing.T) {
	bus := events.NewRouter(logger.Nop(), nil)

	var order []string
	entry := func(name string) Subscription {
		return Subscription{
			Category: models.EventServersUpdated,
			Consumer: name,
			Handler: func(models.Event) error {
				order = append(order, name)
				return nil
			},
		}
	}

	require.NoError(t, RegisterAll(bus, []Subscription{entry("ui"), entry("cache"), entry("pins")}))

	bus.Publish(models.NewServersUpdatedEvent(nil))

	assert.Equal(t, []string{"ui", "cache", "pins"}, order)
}

func TestRegisterAll_DuplicateConsumerFailsWiring(t *testing.T) {
	bus := events.NewRouter(logger.Nop(), nil)
	handler := func(models.Event) error { return nil }

	err := RegisterAll(bus, []Subscription{
		{Category: models.EventUserLoggedIn, Consumer: "ui", Handler: handler},
		{Category: models.EventUserLoggedIn, Consumer: "ui", Handler: handler},
	})

	assert.ErrorIs(t, err, events.ErrDuplicateConsumer)
}
