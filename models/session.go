// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the in-memory representation of whether, and as whom, the
// application is currently authenticated.
//
// A Session is created on successful login or restored from the local store at
// boot, and invalidated on logout, session-expiry detection, or a failed
// revalidation. The lifecycle orchestrator owns the Session exclusively;
// collaborators read it through accessors and never mutate it.
type Session struct {
	// Present reports whether a credential is held at all. A zero Session
	// (Present == false) means the application is unauthenticated.
	Present bool `json:"present"`

	// Credential is the compact serialized access token issued by the
	// control plane (a JWS string). Opaque to everything except the
	// control-plane adapter and the local expiry peek.
	Credential string `json:"credential"`

	// AccountID is the account identifier extracted from the credential's
	// "sub" claim at login time.
	AccountID string `json:"account_id"`

	// LastValidatedAt is the last moment the control plane confirmed this
	// session as usable (login, refresh, or boot revalidation).
	LastValidatedAt time.Time `json:"last_validated_at"`
}

// ExpiresAt peeks at the credential's "exp" claim without verifying the
// signature. Signature verification belongs to the control plane; the client
// only needs the timestamp to fail fast on a locally expired credential.
//
// Returns the zero time if the credential cannot be parsed or carries no
// expiry claim.
func (s Session) ExpiresAt() time.Time {
	if s.Credential == "" {
		return time.Time{}
	}

	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(s.Credential, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

// ExpiredLocally reports whether the credential's own expiry claim is already
// in the past. A session without a parseable expiry is never considered
// locally expired; the remote validation call decides.
func (s Session) ExpiredLocally(now time.Time) bool {
	exp := s.ExpiresAt()
	if exp.IsZero() {
		return false
	}
	return exp.Before(now)
}
