package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/adapters/logger"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("some message")

	assert.Equal(t, "some message\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("some warning")

	assert.Equal(t, "! some warning\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		lg, buf := newTestLogger(t)

		lg.Error(os.ErrPermission)

		assert.Equal(t, "✗ Error: permission denied\n", buf.String())
	})

	t.Run("zerr chain with metadata", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		err := zerr.With(zerr.Wrap(domain.ErrInvalidTarget, "dispatch rejected"), "target", "NOPE")

		lg.Error(err)

		out := buf.String()
		assert.Contains(t, out, "Error: dispatch rejected (target=NOPE)")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "→ invalid target")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		lg, buf := newTestLogger(t)

		lg.Error(nil)

		assert.Empty(t, buf.String())
	})
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(errors.New("exit status 2"), "docking engine failed"), "exit_code", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "docking engine failed: exit status 2", entry["error"])
	meta, ok := entry["metadata"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2, meta["exit_code"], 0)
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.True(t, strings.HasPrefix(buf.String(), "{"), "expected JSON output, got %q", buf.String())
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on a standard error is carried to the cause",
			err:          zerr.With(errors.New("boom"), "path", "/tmp/x"),
			wantMessages: []string{"boom"},
			wantMetadata: []map[string]any{{"path": "/tmp/x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			require.Len(t, entries, len(tt.wantMessages))
			for i, e := range entries {
				assert.Equal(t, tt.wantMessages[i], e.Message())
				assert.Equal(t, tt.wantMetadata[i], e.Meta())
			}
		})
	}
}

func TestFormatErrorEntries_Multiline(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(errors.New("line1\nline2"), "outer"))

	got := logger.FormatErrorEntries(entries)

	assert.Equal(t, "Error: outer\n\n  Caused by:\n    → line1\n      line2", got)
}
