// Package logging provides a colorized, human-readable slog.Handler for
// the server's debug output, adapted from the retrieval pack's
// prxssh-rabbit (pkg/utils/logging/slog.go). It is deliberately smaller
// than that original: no grouping, no JSON attribute rendering, just
// level + message + inline key=value attrs, which is all a per-connection
// debug trace needs.
package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Options controls the handler's behavior.
type Options struct {
	Level    slog.Level
	UseColor bool
}

// handler is a slog.Handler that writes one colorized line per record.
type handler struct {
	opts   Options
	writer io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr

	colorTime  func(...any) string
	colorLevel map[slog.Level]func(...any) string
	colorMsg   func(...any) string
	colorAttrs func(...any) string
}

// New builds a slog.Logger writing to w. When opts.UseColor is false
// (cmd/pqueued sets it from the debug setting) every color function is a
// no-op, so the output degrades to plain text.
func New(w io.Writer, opts Options) *slog.Logger {
	h := &handler{opts: opts, writer: w, mu: &sync.Mutex{}}
	h.initColors()
	return slog.New(h)
}

func (h *handler) initColors() {
	if !h.opts.UseColor {
		noColor := func(a ...any) string { return fmt.Sprint(a...) }
		h.colorTime = noColor
		h.colorMsg = noColor
		h.colorAttrs = noColor
		h.colorLevel = map[slog.Level]func(...any) string{
			slog.LevelDebug: noColor,
			slog.LevelInfo:  noColor,
			slog.LevelWarn:  noColor,
			slog.LevelError: noColor,
		}
		return
	}

	h.colorTime = color.New(color.FgHiBlack).SprintFunc()
	h.colorMsg = color.New(color.FgCyan).SprintFunc()
	h.colorAttrs = color.New(color.FgWhite).SprintFunc()
	h.colorLevel = map[slog.Level]func(...any) string{
		slog.LevelDebug: color.New(color.FgMagenta).SprintFunc(),
		slog.LevelInfo:  color.New(color.FgBlue).SprintFunc(),
		slog.LevelWarn:  color.New(color.FgYellow).SprintFunc(),
		slog.LevelError: color.New(color.FgRed, color.Bold).SprintFunc(),
	}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString(h.colorTime(r.Time.Format(time.RFC3339)))
	buf.WriteByte(' ')
	buf.WriteString(h.colorLevel[r.Level](r.Level.String()))
	buf.WriteByte(' ')
	buf.WriteString(h.colorMsg(r.Message))

	for _, a := range h.attrs {
		fmt.Fprintf(&buf, " %s", h.colorAttrs(fmt.Sprintf("%s=%v", a.Key, a.Value)))
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&buf, " %s", h.colorAttrs(fmt.Sprintf("%s=%v", a.Key, a.Value)))
		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	n := &handler{
		opts:       h.opts,
		writer:     h.writer,
		mu:         h.mu,
		attrs:      append(append([]slog.Attr(nil), h.attrs...), attrs...),
		colorTime:  h.colorTime,
		colorLevel: h.colorLevel,
		colorMsg:   h.colorMsg,
		colorAttrs: h.colorAttrs,
	}
	return n
}

func (h *handler) WithGroup(_ string) slog.Handler {
	// Grouping is not exercised by this service's log lines; treat as a
	// no-op rather than silently dropping attrs added through a group.
	return h
}
