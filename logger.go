package mandel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything; Enabled returns false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger shared by mandel and its sub-packages.
// Logging is off by default. Pass nil to silence it again.
//
// Levels:
//   - Debug: gesture transitions, clamped inputs, discarded stale rasters
//   - Info: committed pan/zoom/reset, Julia parameter and orbit changes
//   - Warn: rejected viewport mutations, raster kernel failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
