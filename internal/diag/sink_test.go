package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
)

func TestSink_NilErrorIgnored(t *testing.T) {
	s := NewSink(logger.Nop())

	assert.NotPanics(t, func() {
		s.Report(nil, "boot")
	})
}

func TestSink_ReportNeverFails(t *testing.T) {
	s := NewSink(logger.Nop())

	assert.NotPanics(t, func() {
		s.Report(errors.New("port-in-use"), "launcher.connd-events")
	})
}

func TestExecNotifier_EmptyCommandIsNoOp(t *testing.T) {
	n := NewExecNotifier("", logger.Nop())

	require.NoError(t, n.NotifyFailure("updates", errors.New("manifest fetch failed")))
}

func TestExecNotifier_MissingBinary(t *testing.T) {
	n := NewExecNotifier("/nonexistent/notifier-binary", logger.Nop())

	err := n.NotifyFailure("updates", errors.New("manifest fetch failed"))
	assert.Error(t, err)
}
