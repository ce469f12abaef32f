// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/events"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/internal/mock"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

func newChecks(t *testing.T, notify func(string)) (*PeriodicChecks, *mock.MockDaemonAdapter, *mock.MockControlPlaneAdapter, *events.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)

	daemon := mock.NewMockDaemonAdapter(ctrl)
	control := mock.NewMockControlPlaneAdapter(ctrl)
	bus := events.NewRouter(logger.Nop(), nil)

	checks := NewPeriodicChecks(config.Checks{
		StatusPollInterval: 10 * time.Millisecond,
		EventPollInterval:  10 * time.Millisecond,
		JitterFraction:     0.2,
	}, daemon, control, bus, notify, logger.Nop())
	t.Cleanup(checks.Stop)

	return checks, daemon, control, bus
}

func TestJittered_StaysWithinBounds(t *testing.T) {
	base := time.Second
	fraction := 0.2

	for i := 0; i < 1000; i++ {
		d := jittered(base, fraction)
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}

func TestPollStatus_PublishesOnlyOnStateChange(t *testing.T) {
	checks, daemon, _, bus := newChecks(t, nil)

	var states []models.ConnectionState
	require.NoError(t, bus.Register(models.EventConnectionStateChanged, "spy", func(e models.Event) error {
		states = append(states, e.Connection)
		return nil
	}))

	daemon.EXPECT().Status(gomock.Any()).Return(models.StatusReport{State: models.ConnectionConnected}, nil).Times(2)
	checks.pollStatus(context.Background())
	checks.pollStatus(context.Background())

	daemon.EXPECT().Status(gomock.Any()).Return(models.StatusReport{State: models.ConnectionDisconnected}, nil)
	checks.pollStatus(context.Background())

	assert.Equal(t, []models.ConnectionState{models.ConnectionConnected, models.ConnectionDisconnected}, states)
}

func TestPollStatus_DaemonDownIsSilent(t *testing.T) {
	checks, daemon, _, bus := newChecks(t, nil)

	published := 0
	require.NoError(t, bus.Register(models.EventConnectionStateChanged, "spy", func(models.Event) error {
		published++
		return nil
	}))

	daemon.EXPECT().Status(gomock.Any()).
		Return(models.StatusReport{}, fmt.Errorf("%w: refused", adapter.ErrDaemonUnavailable))
	checks.pollStatus(context.Background())

	assert.Zero(t, published)
}

func TestPollNotices_RejectionPublishesSessionExpired(t *testing.T) {
	checks, _, control, bus := newChecks(t, nil)

	var reasons []string
	require.NoError(t, bus.Register(models.EventSessionExpired, "spy", func(e models.Event) error {
		reasons = append(reasons, e.Reason)
		return nil
	}))

	control.EXPECT().PollNotices(gomock.Any()).
		Return(nil, fmt.Errorf("%w: credential refused", adapter.ErrSessionRejected))
	checks.pollNotices(context.Background())

	assert.Equal(t, []string{"session expired"}, reasons)
}

func TestPollNotices_TransientFailureIsNotExpiry(t *testing.T) {
	checks, _, control, bus := newChecks(t, nil)

	published := 0
	require.NoError(t, bus.Register(models.EventSessionExpired, "spy", func(models.Event) error {
		published++
		return nil
	}))

	control.EXPECT().PollNotices(gomock.Any()).
		Return(nil, fmt.Errorf("%w: timeout", adapter.ErrTransport))
	checks.pollNotices(context.Background())

	assert.Zero(t, published, "a transport failure must never be treated as expiry")
}

func TestPollNotices_DeliversNotices(t *testing.T) {
	var got []string
	checks, _, control, _ := newChecks(t, func(text string) { got = append(got, text) })

	control.EXPECT().PollNotices(gomock.Any()).Return([]string{"maintenance tonight"}, nil)
	checks.pollNotices(context.Background())

	assert.Equal(t, []string{"maintenance tonight"}, got)
}

func TestStartStop_PollsAndTerminates(t *testing.T) {
	checks, daemon, control, _ := newChecks(t, nil)

	daemon.EXPECT().Status(gomock.Any()).Return(models.StatusReport{State: models.ConnectionConnected}, nil).MinTimes(1)
	control.EXPECT().PollNotices(gomock.Any()).Return(nil, nil).MinTimes(1)

	checks.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	checks.Stop()
}
