// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory identifies one class of domain event routed through the event
// hub. Consumers register per category; producers publish per category.
type EventCategory string

const (
	EventUserLoggingIn          EventCategory = "user-logging-in"
	EventUserLoggedIn           EventCategory = "user-logged-in"
	EventUserLoggedOut          EventCategory = "user-logged-out"
	EventUserDataChanged        EventCategory = "user-data-changed"
	EventConnectionStateChanged EventCategory = "connection-state-changed"
	EventServersUpdated         EventCategory = "servers-updated"
	EventSettingsChanged        EventCategory = "settings-changed"
	EventSessionExpired         EventCategory = "session-expired"
	EventServiceFault           EventCategory = "service-fault"
	EventUpdateStateChanged     EventCategory = "update-state-changed"
	EventLocationChanged        EventCategory = "location-changed"
)

// Event is an immutable domain event. Exactly one payload group is meaningful
// per category; the rest stay zero. Events are constructed through the NewXxx
// helpers below and never mutated after construction.
type Event struct {
	// ID uniquely identifies a single publish call, mostly for log
	// correlation across consumers.
	ID uuid.UUID

	// Category tags which payload group below is meaningful.
	Category EventCategory

	// At is the construction timestamp.
	At time.Time

	// AutoLogin is set on EventUserLoggedIn: true when the login came from
	// boot-time session restoration rather than interactive credentials.
	AutoLogin bool

	// Connection is set on EventConnectionStateChanged.
	Connection ConnectionState

	// Servers is set on EventServersUpdated.
	Servers []Server

	// SettingKey is set on EventSettingsChanged and names the changed key.
	SettingKey string

	// ServiceName and Err are set on EventServiceFault.
	ServiceName string
	Err         error

	// Update is set on EventUpdateStateChanged.
	Update UpdateState

	// Location is set on EventLocationChanged.
	Location Location

	// Reason is set on EventSessionExpired and on EventUserLoggedOut when a
	// user-visible explanation exists.
	Reason string
}

func newEvent(category EventCategory) Event {
	return Event{ID: uuid.New(), Category: category, At: time.Now()}
}

// NewUserLoggingInEvent signals that an interactive login attempt has begun.
func NewUserLoggingInEvent() Event {
	return newEvent(EventUserLoggingIn)
}

// NewUserLoggedInEvent signals a completed login. autoLogin distinguishes a
// boot-time restored session from interactive credentials.
func NewUserLoggedInEvent(autoLogin bool) Event {
	e := newEvent(EventUserLoggedIn)
	e.AutoLogin = autoLogin
	return e
}

// NewUserLoggedOutEvent signals a completed logout.
func NewUserLoggedOutEvent(reason string) Event {
	e := newEvent(EventUserLoggedOut)
	e.Reason = reason
	return e
}

// NewUserDataChangedEvent signals that account-level data was modified.
func NewUserDataChangedEvent() Event {
	return newEvent(EventUserDataChanged)
}

// NewConnectionStateChangedEvent carries the daemon's new tunnel state.
func NewConnectionStateChangedEvent(state ConnectionState) Event {
	e := newEvent(EventConnectionStateChanged)
	e.Connection = state
	return e
}

// NewServersUpdatedEvent carries a freshly fetched server list.
func NewServersUpdatedEvent(servers []Server) Event {
	e := newEvent(EventServersUpdated)
	e.Servers = servers
	return e
}

// NewSettingsChangedEvent signals that the setting named key changed.
func NewSettingsChangedEvent(key string) Event {
	e := newEvent(EventSettingsChanged)
	e.SettingKey = key
	return e
}

// NewSessionExpiredEvent signals that a privileged endpoint rejected the
// current credential.
func NewSessionExpiredEvent(reason string) Event {
	e := newEvent(EventSessionExpired)
	e.Reason = reason
	return e
}

// NewServiceFaultEvent reports a background service failure.
func NewServiceFaultEvent(serviceName string, err error) Event {
	e := newEvent(EventServiceFault)
	e.ServiceName = serviceName
	e.Err = err
	return e
}

// NewUpdateStateChangedEvent carries the update checker's latest verdict.
func NewUpdateStateChangedEvent(update UpdateState) Event {
	e := newEvent(EventUpdateStateChanged)
	e.Update = update
	return e
}

// NewLocationChangedEvent carries the control plane's latest geo-IP verdict.
func NewLocationChangedEvent(location Location) Event {
	e := newEvent(EventLocationChanged)
	e.Location = location
	return e
}
