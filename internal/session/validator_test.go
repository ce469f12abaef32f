// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/internal/mock"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

func newTestValidator(t *testing.T, ctrl *gomock.Controller) (*Validator, *mock.MockControlPlaneAdapter) {
	t.Helper()
	control := mock.NewMockControlPlaneAdapter(ctrl)
	v := NewValidator(control, 2*time.Second, logger.Nop())
	return v, control
}

func storedSession() models.Session {
	return models.Session{
		Present:         true,
		Credential:      "stored-credential",
		AccountID:       "acc-42",
		LastValidatedAt: time.Now().Add(-24 * time.Hour),
	}
}

// ── local presence check ─────────────────────────────────────────────────────

func TestValidate_NoStoredSession_SkipsRemoteCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT calls: any remote call would fail the test
	v, _ := newTestValidator(t, ctrl)

	result := v.Validate(context.Background(), models.Session{})

	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, "no stored session", result.Reason)
}

func TestValidate_EmptyCredential_SkipsRemoteCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, _ := newTestValidator(t, ctrl)

	result := v.Validate(context.Background(), models.Session{Present: true})

	assert.Equal(t, StatusInvalid, result.Status)
}

// ── remote validation ────────────────────────────────────────────────────────

func TestValidate_Rejected_InvalidWithReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, control := newTestValidator(t, ctrl)

	gomock.InOrder(
		control.EXPECT().SetCredential("stored-credential"),
		control.EXPECT().ValidateSession(gomock.Any()).
			Return(fmt.Errorf("%w: expired", adapter.ErrSessionRejected)),
	)

	result := v.Validate(context.Background(), storedSession())

	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, "expired", result.Reason)
}

func TestValidate_TransportFailure_Transient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, control := newTestValidator(t, ctrl)

	control.EXPECT().SetCredential("stored-credential")
	control.EXPECT().ValidateSession(gomock.Any()).
		Return(fmt.Errorf("%w: connection refused", adapter.ErrTransport))

	result := v.Validate(context.Background(), storedSession())

	assert.Equal(t, StatusTransient, result.Status)
	require.Error(t, result.Err)
	assert.True(t, adapter.IsTransient(result.Err))
}

// ── refresh ──────────────────────────────────────────────────────────────────

func TestValidate_RefreshSucceeds_ValidWithFreshSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, control := newTestValidator(t, ctrl)

	fresh := models.Session{Present: true, Credential: "fresh-credential", AccountID: "acc-42"}

	gomock.InOrder(
		control.EXPECT().SetCredential("stored-credential"),
		control.EXPECT().ValidateSession(gomock.Any()).Return(nil),
		control.EXPECT().RefreshSession(gomock.Any()).Return(fresh, nil),
	)

	result := v.Validate(context.Background(), storedSession())

	require.Equal(t, StatusValid, result.Status)
	assert.Equal(t, "fresh-credential", result.Session.Credential)
}

func TestValidate_RefreshRejected_MeansExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, control := newTestValidator(t, ctrl)

	control.EXPECT().SetCredential("stored-credential")
	control.EXPECT().ValidateSession(gomock.Any()).Return(nil)
	control.EXPECT().RefreshSession(gomock.Any()).
		Return(models.Session{}, fmt.Errorf("%w: expired", adapter.ErrSessionRejected))

	result := v.Validate(context.Background(), storedSession())

	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, "expired", result.Reason)
}

func TestValidate_RefreshTransportFailure_KeepsStoredCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, control := newTestValidator(t, ctrl)

	control.EXPECT().SetCredential("stored-credential")
	control.EXPECT().ValidateSession(gomock.Any()).Return(nil)
	control.EXPECT().RefreshSession(gomock.Any()).
		Return(models.Session{}, fmt.Errorf("%w: i/o timeout", adapter.ErrTransport))

	result := v.Validate(context.Background(), storedSession())

	// Flaky connectivity during refresh must never log the user out.
	require.Equal(t, StatusValid, result.Status)
	assert.Equal(t, "stored-credential", result.Session.Credential)
}

// ── timeout ──────────────────────────────────────────────────────────────────

func TestValidate_DeadlineHit_DistinctTimeoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	control := mock.NewMockControlPlaneAdapter(ctrl)
	v := NewValidator(control, 20*time.Millisecond, logger.Nop())

	control.EXPECT().SetCredential("stored-credential")
	control.EXPECT().ValidateSession(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return fmt.Errorf("%w: %v", adapter.ErrTransport, ctx.Err())
	})

	result := v.Validate(context.Background(), storedSession())

	assert.Equal(t, StatusTransient, result.Status)
	assert.ErrorIs(t, result.Err, ErrValidateTimeout)
}
