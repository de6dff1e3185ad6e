// Package obslog is a small log/slog wrapper used only by
// cmd/intersectbench: it writes timestamped, level-prefixed lines to
// an io.Writer, optionally mirroring them to stderr. The intersect
// package itself never logs — this exists purely so the benchmark/CLI
// harness can report each run (its parameters, the resulting sum and
// the elapsed time) without reaching for fmt.Println everywhere. The
// harness prints the detected CPU capability flags to stderr directly
// rather than through this logger.
package obslog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler that renders records as
// "<time> <LEVEL>: <message> <attr> <attr> ..." lines, guarded by a
// mutex so records logged from several goroutines never interleave
// within a line.
type Handler struct {
	out   io.Writer
	h     slog.Handler
	mu    *sync.Mutex
	debug bool
}

// New builds a Handler writing to out. When debug is true, every
// record is also mirrored to stderr regardless of level.
func New(out io.Writer, opts *slog.HandlerOptions, debug bool) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out:   out,
		h:     slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level, AddSource: opts.AddSource}),
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	strs := []string{formattedTime, level, r.Message}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, a.Key+"="+a.Value.String())
		return true
	})
	line := strings.Join(strs, " ") + "\n"
	b := []byte(line)

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(b)
	}
	if h.debug && h.out != os.Stderr {
		_, err = os.Stderr.Write(b)
	}
	return err
}

// NewLogger wires a *slog.Logger for convenience, so callers don't each
// repeat slog.New(obslog.New(...)).
func NewLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(New(out, &slog.HandlerOptions{Level: level}, debug))
}
