// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements boot-time validation of the stored session
// against the control plane.
//
// The validator's central policy is the two-tier failure distinction: an
// authoritative rejection by the control plane invalidates the session, while
// a transport-level failure leaves the verdict unknown and must never force a
// spurious logout on flaky connectivity.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// Status is the validator's three-way verdict.
type Status int

const (
	// StatusValid means the control plane confirmed the stored session.
	StatusValid Status = iota
	// StatusInvalid means no usable session exists: none stored, locally
	// expired, or authoritatively rejected.
	StatusInvalid
	// StatusTransient means the verdict is unknown because of a
	// transport-level failure. Never treated as a rejection.
	StatusTransient
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Result carries the verdict and its supporting data.
type Result struct {
	Status Status

	// Reason is the user-visible explanation, set on StatusInvalid.
	Reason string

	// Err is the underlying transport failure, set on StatusTransient.
	Err error

	// Session is the session to run with, set on StatusValid. It carries a
	// refreshed credential when the refresh call succeeded, or the stored
	// one when the refresh failed on transport.
	Session models.Session
}

// Validator checks whether a previously stored session is still usable.
type Validator struct {
	control adapter.ControlPlaneAdapter
	timeout time.Duration
	log     *logger.Logger
}

// NewValidator builds a Validator. timeout bounds the whole remote exchange;
// zero or negative falls back to 10 seconds.
func NewValidator(control adapter.ControlPlaneAdapter, timeout time.Duration, log *logger.Logger) *Validator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Validator{control: control, timeout: timeout, log: log}
}

// Validate runs the ordered check chain against the stored session:
//
//	(a) local presence — fails fast with StatusInvalid when nothing is stored
//	    or the credential is already expired by its own claims;
//	(b) remote validation — a rejection is StatusInvalid, a transport
//	    failure is StatusTransient (escalated to the caller);
//	(c) remote refresh — a rejection specifically means "session expired"
//	    (StatusInvalid); a transport failure is treated as not-expired and
//	    the stored credential is kept (StatusValid).
//
// The remote exchange is bounded by the configured timeout; hitting it wraps
// [ErrValidateTimeout] into a StatusTransient result.
func (v *Validator) Validate(ctx context.Context, stored models.Session) Result {
	if !stored.Present || stored.Credential == "" {
		return Result{Status: StatusInvalid, Reason: "no stored session"}
	}
	if stored.ExpiredLocally(time.Now()) {
		return Result{Status: StatusInvalid, Reason: "expired"}
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	v.control.SetCredential(stored.Credential)

	if err := v.control.ValidateSession(ctx); err != nil {
		if adapter.IsRejection(err) {
			reason := rejectionReason(err)
			v.log.Info().Str("reason", reason).Msg("stored session rejected by control plane")
			return Result{Status: StatusInvalid, Reason: reason}
		}
		return Result{Status: StatusTransient, Err: v.classifyTransient(ctx, err)}
	}

	fresh, err := v.control.RefreshSession(ctx)
	if err != nil {
		if adapter.IsRejection(err) {
			v.log.Info().Msg("session refresh rejected: session expired")
			return Result{Status: StatusInvalid, Reason: "expired"}
		}

		// Transport failure on refresh is not expiry. Keep the stored
		// credential and let the periodic re-checks refresh later.
		v.log.Warn().Err(err).Msg("session refresh failed on transport, keeping stored credential")
		stored.LastValidatedAt = time.Now()
		return Result{Status: StatusValid, Session: stored}
	}

	return Result{Status: StatusValid, Session: fresh}
}

// classifyTransient upgrades a deadline hit into the distinct timeout
// variant, leaving other transport failures untouched.
func (v *Validator) classifyTransient(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrValidateTimeout, err)
	}
	return err
}

// rejectionReason strips the sentinel prefix from a rejection error, leaving
// the control plane's reason text (e.g. "expired").
func rejectionReason(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
