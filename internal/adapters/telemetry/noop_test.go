package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/adapters/telemetry"
	"go.trai.ch/dockq/internal/adapters/telemetry/progrock"
	"go.trai.ch/dockq/internal/core/domain"
)

func TestNew_SelectsImplementation(t *testing.T) {
	assert.IsType(t, telemetry.NoOp{}, telemetry.New(domain.TelemetryNone))
	assert.IsType(t, &progrock.Recorder{}, telemetry.New(domain.TelemetryProgrock))
}

func TestNoOp(t *testing.T) {
	ctx := context.Background()
	got, v := telemetry.NoOp{}.Record(ctx, "anything")
	assert.Equal(t, ctx, got)

	n, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	v.Cached()
	v.Complete(nil)
	require.NoError(t, telemetry.NoOp{}.Close())
}
