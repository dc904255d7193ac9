// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dockq/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides Message and Metadata.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance writing pretty text to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, preserving the JSON mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler())
}

func (l *Logger) newHandler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its full cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error(), "metadata", collectMetadata(err))
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr links contribute their own message
// and metadata; the first standard error ends the walk with its full text.
// zerr links without a message only carry metadata and are folded into the previous entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		meta := map[string]any{}
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			switch {
			case len(entries) > 0:
				last := &entries[len(entries)-1]
				if last.metadata == nil {
					last.metadata = map[string]any{}
				}
				maps.Copy(last.metadata, meta)
			default:
				if pending == nil {
					pending = map[string]any{}
				}
				maps.Copy(pending, meta)
			}
			current = errors.Unwrap(current)
			continue
		}

		if pending != nil {
			maps.Copy(meta, pending)
			pending = nil
		}
		entries = append(entries, errorEntry{message: m.Message(), metadata: meta})
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders a chain as "Error: ..." followed by a "Caused by:" list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.message, "\n")
		head := msgLines[0] + formatMetadata(e.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+head)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+head)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}
	parts := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func collectMetadata(err error) map[string]any {
	meta := map[string]any{}
	for _, e := range collectErrorEntries(err) {
		maps.Copy(meta, e.metadata)
	}
	return meta
}
