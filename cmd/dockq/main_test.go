package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/adapters/knowledge"
	"go.trai.ch/dockq/internal/app"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T, log *mocks.MockLogger) *app.Components {
	t.Helper()
	kb, err := knowledge.Open("")
	require.NoError(t, err)
	return app.NewComponents(app.New(nil, kb, nil, log), log, &domain.Config{})
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	log := mocks.NewMockLogger(gomock.NewController(t))

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return newComponents(t, log), func() { cleaned = true }, nil
	}

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"explain", "EGFR"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "Epidermal growth factor receptor")
	assert.True(t, cleaned, "resources must be released")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command errors are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrUnknownKey)
	}).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return newComponents(t, log), func() {}, nil
	}

	exitCode := run(context.Background(), []string{"explain", "unobtainium"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_AppliesOptions verifies that options are applied to the app before execution.
func TestRun_AppliesOptions(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return newComponents(t, log), func() {}, nil
	}

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider, func(*app.App) {
		applied = true
	})

	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
