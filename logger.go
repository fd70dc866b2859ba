package resample

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so Debug calls return
// before their attributes are formatted.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is read on every resample call and may be swapped at any time.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes resample's diagnostics to l. A nil l silences them
// again, which is also the initial state. It may be called while other
// goroutines are resampling.
//
// All records are emitted at [slog.LevelDebug]:
//   - "resample": one per Apply call, with source and target size, filter,
//     element type, channel count, pass order and which axes are resampled.
//   - "resample: pass": one per executed pass, with its axis and the size
//     of the buffer it writes.
//   - "resample: computing coefficients": a coefficient table cache miss.
//   - "resample: scaler ...": a draw.Scaler call that failed.
//   - "backend: resize": a backend.Resize call.
//
// To see them on stderr:
//
//	resample.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. The backend packages log
// through it.
func Logger() *slog.Logger {
	return current.Load()
}
