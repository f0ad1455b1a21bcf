// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by WindowInfos created without
// WithLogger. The package is silent by default; nil restores that.
//
// Teardown failures and unreleased WindowInfos are logged at
// slog.LevelWarn, attribute queries that fail at slog.LevelDebug.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
