package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dockq/internal/adapters/logger"
)

func newPretty(t *testing.T, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func TestPrettyHandler_Attributes(t *testing.T) {
	log, buf := newPretty(t, slog.LevelInfo)

	log.Info("score resolved", "molecule", "CCO", "target", "EGFR", "score", -7.5, "source", "cached")

	assert.Equal(t, "score resolved molecule=CCO target=EGFR score=-7.5 source=● cached\n", buf.String())
}

func TestPrettyHandler_QuotesAndEmpties(t *testing.T) {
	log, buf := newPretty(t, slog.LevelInfo)

	log.Info("engine failed", "stderr", "no such receptor", "path", "", slog.Attr{})

	assert.Equal(t, "engine failed stderr=\"no such receptor\" path=\"\"\n", buf.String())
}

func TestPrettyHandler_Groups(t *testing.T) {
	log, buf := newPretty(t, slog.LevelInfo)

	log.WithGroup("batch").With("size", 3).WithGroup("cache").
		Warn("store degraded", slog.Group("stats", "hits", 1, "misses", 2), slog.Group("empty"))

	assert.Equal(t, "! store degraded batch.size=3 batch.cache.stats.hits=1 batch.cache.stats.misses=2\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	log, buf := newPretty(t, slog.LevelWarn)

	log.Info("hidden")
	log.Error("shown")

	assert.Equal(t, "✗ shown\n", buf.String())
}
