package graphics

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled always returns false so the
// caller skips building the record at all.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the graphics package and its
// ui subpackage. By default nothing is logged. Pass nil to restore the
// silent default.
//
// Log levels used here:
//   - [slog.LevelWarn]: operational soft errors (§7) — the draw call that
//     triggered them is skipped, rendering continues.
//   - [slog.LevelError]: resource creation failures and fatal configuration
//     errors, the latter immediately followed by a panic.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

func log() *slog.Logger {
	return loggerPtr.Load()
}
