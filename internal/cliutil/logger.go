// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

// Package cliutil holds the small pieces of ambient machinery shared by
// the mp2json and json2mp filter binaries: a structured logger and a
// categorized error type used to annotate the failure log line.
package cliutil

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates a structured logger for the calling binary's one-
// shot diagnostic output. When stderr is a terminal it uses
// slog.TextHandler for human-readable output; otherwise (piped,
// redirected, or running under a test harness) it uses
// slog.JSONHandler so failures are machine-parseable in scripts and CI.
func NewLogger() *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
