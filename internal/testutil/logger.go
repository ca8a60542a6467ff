// Package testutil provides shared helpers for the numquest package
// tests.
package testutil

import (
	"log/slog"
	"testing"
)

// NewTestLogger returns the slog.Logger handed to engines, stores, and
// commands under test. Records go through t.Log, so session and
// persistence logs surface only on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tLogWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// tLogWriter adapts testing.TB to io.Writer for the slog handler.
type tLogWriter struct {
	t testing.TB
}

func (w tLogWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
