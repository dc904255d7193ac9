package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/dockq/internal/ui/output"
	"go.trai.ch/dockq/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminals. Each record is one line:
// a level marker, the message, then key=value attributes. A "source"
// attribute is tinted the way score sources are in rankings.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker, color := levelStyle(r.Level)

	var b strings.Builder
	if marker != "" {
		b.WriteString(marker + " ")
	}
	b.WriteString(r.Message)
	line := h.out.String(b.String()).Foreground(color).String()

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = h.appendAttr(parts, h.prefix, a)
		return true
	})
	if len(parts) > 0 {
		line += " " + strings.Join(parts, " ")
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		next.attrs = h.appendAttr(next.attrs, h.prefix, a)
	}
	return next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  append([]string(nil), h.attrs...),
		prefix: h.prefix,
	}
}

// appendAttr flattens groups into dotted keys and drops empty attributes.
func (h *PrettyHandler) appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return parts
		}
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range group {
			parts = h.appendAttr(parts, prefix, ga)
		}
		return parts
	}

	value := a.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	if a.Key == "source" {
		value = h.out.String(style.SourceIcon(a.Value.String()) + " " + value).
			Foreground(termenv.RGBColor(string(style.SourceColor(a.Value.String())))).
			String()
	}
	return append(parts, prefix+a.Key+"="+value)
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}
