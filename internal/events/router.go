// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Handler consumes one delivered event. A non-nil return is recorded against
// the consumer and never shown to the publisher.
type Handler func(event models.Event) error

// FaultReporter receives isolated consumer failures. Implementations must be
// fire-and-forget: never block, never fail.
type FaultReporter interface {
	Report(err error, tag string)
}

type registration struct {
	name    string
	handler Handler
}

// Router is the typed publish/subscribe hub connecting event producers to the
// open-ended set of lifecycle-aware consumers.
//
// Delivery contract: Publish delivers the event to every consumer registered
// for its category, synchronously, on the publisher's goroutine, in
// registration order, exactly once per consumer. A consumer whose handler
// returns an error or panics does not prevent delivery to later consumers;
// the failure is logged and reported, never propagated to the publisher.
//
// Registration is idempotent per (category, consumer name): registering the
// same name twice for one category is a caller error, rejected with
// [ErrDuplicateConsumer], so no consumer ever receives duplicate deliveries.
type Router struct {
	log      *logger.Logger
	reporter FaultReporter

	mu          sync.RWMutex
	subscribers map[models.EventCategory][]registration
}

// NewRouter builds an empty Router. reporter may be nil; consumer failures
// are then only logged.
func NewRouter(log *logger.Logger, reporter FaultReporter) *Router {
	return &Router{
		log:         log,
		reporter:    reporter,
		subscribers: make(map[models.EventCategory][]registration),
	}
}

// Register adds the named consumer to category's delivery list. Delivery
// order equals registration order. Returns [ErrDuplicateConsumer] if name is
// already registered for category.
func (r *Router) Register(category models.EventCategory, name string, handler Handler) error {
	if name == "" || handler == nil {
		return ErrInvalidRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.subscribers[category] {
		if reg.name == name {
			r.log.Warn().
				Str("category", string(category)).
				Str("consumer", name).
				Msg("duplicate consumer registration rejected")
			return fmt.Errorf("%w: %s on %s", ErrDuplicateConsumer, name, category)
		}
	}

	r.subscribers[category] = append(r.subscribers[category], registration{name: name, handler: handler})
	return nil
}

// Publish delivers event to every consumer currently registered for its
// category. Publishing with zero consumers is a no-op.
func (r *Router) Publish(event models.Event) {
	r.mu.RLock()
	regs := r.subscribers[event.Category]
	r.mu.RUnlock()

	for _, reg := range regs {
		r.deliver(reg, event)
	}
}

// deliver runs one handler, isolating errors and panics.
func (r *Router) deliver(reg registration, event models.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("consumer %s panicked: %v", reg.name, rec)
			r.report(err, reg.name, event)
		}
	}()

	if err := reg.handler(event); err != nil {
		r.report(fmt.Errorf("consumer %s: %w", reg.name, err), reg.name, event)
	}
}

func (r *Router) report(err error, consumer string, event models.Event) {
	r.log.Error().
		Err(err).
		Str("category", string(event.Category)).
		Str("event_id", event.ID.String()).
		Str("consumer", consumer).
		Msg("event consumer failed")

	if r.reporter != nil {
		r.reporter.Report(err, "events."+consumer)
	}
}
