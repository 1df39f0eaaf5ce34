package glyph

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/glyph/internal/boolean"
)

// nopHandler drops every record. Enabled reports false, so disabled log
// calls return before their attributes are formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current is read by every stage and swapped by SetLogger, possibly while
// a batch is running.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNopLogger())
}

// SetLogger routes the diagnostics of this package and of the boolean
// engine to l. Nil silences them again, which is also the initial state.
//
// Levels:
//   - Debug: per-stage details (offset samples, corners, boolean edge counts)
//   - Info: batch summaries
//   - Warn: fallbacks such as an empty union or a dropped open chain
//
// For example:
//
//	glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	current.Store(l)
	boolean.SetLogger(l)
}

// Logger returns the logger set by SetLogger. The outline package and the
// commands log through it as well.
func Logger() *slog.Logger {
	return current.Load()
}
