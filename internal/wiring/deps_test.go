package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/app"
	_ "go.trai.ch/dockq/internal/wiring"
)

// TestGraftResolvesComponents builds the whole node graph from the built-in
// defaults, the way the binary does on startup.
func TestGraftResolvesComponents(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCKQ_CONFIG", "")

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	t.Cleanup(func() { _ = components.Close() })

	assert.Len(t, components.App.Targets(), components.Config.Targets.Len())

	stats, err := components.App.CacheStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}
