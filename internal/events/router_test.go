// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// spyReporter records isolated consumer failures.
type spyReporter struct {
	mu   sync.Mutex
	tags []string
}

func (s *spyReporter) Report(_ error, tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = append(s.tags, tag)
}

func (s *spyReporter) reported() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tags...)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_DuplicateNameRejected(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)
	h := func(models.Event) error { return nil }

	require.NoError(t, r.Register(models.EventUserLoggedIn, "coordinator", h))
	err := r.Register(models.EventUserLoggedIn, "coordinator", h)

	assert.ErrorIs(t, err, ErrDuplicateConsumer)
}

func TestRegister_SameNameDifferentCategories(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)
	h := func(models.Event) error { return nil }

	require.NoError(t, r.Register(models.EventUserLoggedIn, "coordinator", h))
	require.NoError(t, r.Register(models.EventUserLoggedOut, "coordinator", h))
}

func TestRegister_InvalidRegistration(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)

	assert.ErrorIs(t, r.Register(models.EventUserLoggedIn, "", func(models.Event) error { return nil }), ErrInvalidRegistration)
	assert.ErrorIs(t, r.Register(models.EventUserLoggedIn, "coordinator", nil), ErrInvalidRegistration)
}

// ── Publish ──────────────────────────────────────────────────────────────────

func TestPublish_DeliversInRegistrationOrder(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		require.NoError(t, r.Register(models.EventServersUpdated, name, func(models.Event) error {
			order = append(order, name)
			return nil
		}))
	}

	r.Publish(models.NewServersUpdatedEvent(nil))

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPublish_ExactlyOncePerConsumer(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)

	counts := map[string]int{}
	for _, name := range []string{"a", "b"} {
		name := name
		require.NoError(t, r.Register(models.EventSettingsChanged, name, func(models.Event) error {
			counts[name]++
			return nil
		}))
	}

	r.Publish(models.NewSettingsChangedEvent(models.SettingProtocol))

	assert.Equal(t, map[string]int{"a": 1, "b": 1}, counts)
}

func TestPublish_ErrorDoesNotStopDelivery(t *testing.T) {
	reporter := &spyReporter{}
	r := NewRouter(logger.Nop(), reporter)

	var delivered []string
	require.NoError(t, r.Register(models.EventUserLoggedIn, "faulty", func(models.Event) error {
		delivered = append(delivered, "faulty")
		return errors.New("handler broke")
	}))
	require.NoError(t, r.Register(models.EventUserLoggedIn, "healthy", func(models.Event) error {
		delivered = append(delivered, "healthy")
		return nil
	}))

	r.Publish(models.NewUserLoggedInEvent(false))

	assert.Equal(t, []string{"faulty", "healthy"}, delivered)
	assert.Equal(t, []string{"events.faulty"}, reporter.reported())
}

func TestPublish_PanicIsIsolated(t *testing.T) {
	reporter := &spyReporter{}
	r := NewRouter(logger.Nop(), reporter)

	var healthyRan bool
	require.NoError(t, r.Register(models.EventSessionExpired, "panicky", func(models.Event) error {
		panic("boom")
	}))
	require.NoError(t, r.Register(models.EventSessionExpired, "healthy", func(models.Event) error {
		healthyRan = true
		return nil
	}))

	assert.NotPanics(t, func() {
		r.Publish(models.NewSessionExpiredEvent("revoked"))
	})
	assert.True(t, healthyRan)
	assert.Equal(t, []string{"events.panicky"}, reporter.reported())
}

func TestPublish_ZeroConsumersIsNoOp(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)

	assert.NotPanics(t, func() {
		r.Publish(models.NewUserDataChangedEvent())
	})
}

func TestPublish_OnlyMatchingCategoryDelivered(t *testing.T) {
	r := NewRouter(logger.Nop(), nil)

	var loggedIn, loggedOut int
	require.NoError(t, r.Register(models.EventUserLoggedIn, "in", func(models.Event) error {
		loggedIn++
		return nil
	}))
	require.NoError(t, r.Register(models.EventUserLoggedOut, "out", func(models.Event) error {
		loggedOut++
		return nil
	}))

	r.Publish(models.NewUserLoggedInEvent(true))

	assert.Equal(t, 1, loggedIn)
	assert.Equal(t, 0, loggedOut)
}
