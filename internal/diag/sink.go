// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diag implements the diagnostics sink: a fire-and-forget error
// reporting boundary plus the best-effort user-facing failure notifier.
package diag

import (
	"os/exec"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
)

// Sink receives non-fatal errors from anywhere in the client. Report never
// blocks and never fails; a sink that cannot deliver drops silently.
type Sink interface {
	Report(err error, tag string)
}

// Notifier makes a best-effort attempt to surface a failure to the user
// through an external notifier process. Its own failure is non-fatal.
type Notifier interface {
	NotifyFailure(serviceName string, cause error) error
}

type logSink struct {
	log *logger.Logger
}

// NewSink builds a Sink that records reports through the structured logger.
// Shipping reports off the machine belongs to a separate crash-reporting
// collaborator; this sink is the local end of that pipe.
func NewSink(log *logger.Logger) Sink {
	return &logSink{log: log.GetChildLogger()}
}

func (s *logSink) Report(err error, tag string) {
	if err == nil {
		return
	}
	s.log.Error().Err(err).Str("tag", tag).Msg("diagnostics report")
}

type execNotifier struct {
	command string
	log     *logger.Logger
}

// NewExecNotifier builds a Notifier that spawns command with the failed
// service's name and error text as arguments. The process is started and
// abandoned; the client never waits on it.
func NewExecNotifier(command string, log *logger.Logger) Notifier {
	return &execNotifier{command: command, log: log}
}

func (n *execNotifier) NotifyFailure(serviceName string, cause error) error {
	if n.command == "" {
		return nil
	}

	cmd := exec.Command(n.command, serviceName, cause.Error())
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the child without blocking the caller.
	go func() { _ = cmd.Wait() }()

	n.log.Debug().Str("service", serviceName).Msg("failure notifier launched")
	return nil
}
