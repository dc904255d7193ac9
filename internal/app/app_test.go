package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/adapters/cache"
	"go.trai.ch/dockq/internal/adapters/chem"
	"go.trai.ch/dockq/internal/adapters/knowledge"
	"go.trai.ch/dockq/internal/adapters/mockscore"
	"go.trai.ch/dockq/internal/adapters/telemetry"
	"go.trai.ch/dockq/internal/app"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports/mocks"
	"go.trai.ch/dockq/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveDispatch(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	engine := mocks.NewMockDockingEngine(ctrl)
	engine.EXPECT().Available().Return(false).AnyTimes()

	store := cache.NewStore(filepath.Join(t.TempDir(), "docking_scores.json"), log)
	kb, err := knowledge.Open("")
	require.NoError(t, err)

	d := dispatcher.New(
		dispatcher.Settings{
			Targets: domain.NewTargetSet(
				domain.TargetProfile{ID: "EGFR", Name: "Epidermal growth factor receptor"},
				domain.TargetProfile{ID: "BRD4", Name: "Bromodomain-containing protein 4"},
			),
			Platform:    "linux/amd64",
			Parallelism: 2,
		},
		store,
		engine,
		mockscore.NewGenerator(),
		chem.NewValidator(),
		log,
		telemetry.NoOp{},
		metrics,
	)
	return app.New(d, kb, store, log)
}

func TestApp_RankThenHitRate(t *testing.T) {
	a := newApp(t)

	ranking, err := a.Rank(context.Background(), []string{"CCO"}, "egfr")
	require.NoError(t, err)
	require.Len(t, ranking.Records, 1)
	assert.Equal(t, domain.SourceMock, ranking.Records[0].Source)

	rate, err := a.CacheHitRate([]string{"CCO", "CCN"}, "EGFR")
	require.NoError(t, err)
	assert.Equal(t, domain.HitRate{Target: "EGFR", Requested: 2, Cached: 1, Rate: 0.5}, rate)

	stats, err := a.CacheStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestApp_CacheHitRate_InvalidTarget(t *testing.T) {
	a := newApp(t)

	_, err := a.CacheHitRate([]string{"CCO"}, "NOPE")
	require.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestApp_CacheHitRate_Empty(t *testing.T) {
	a := newApp(t)

	rate, err := a.CacheHitRate(nil, "EGFR")
	require.NoError(t, err)
	assert.Zero(t, rate.Rate)
}

func TestApp_ClearCache(t *testing.T) {
	a := newApp(t)
	_, err := a.Rank(context.Background(), []string{"CCO", "CCN"}, "EGFR")
	require.NoError(t, err)
	_, err = a.Rank(context.Background(), []string{"CCO"}, "BRD4")
	require.NoError(t, err)

	_, err = a.ClearCache("NOPE")
	require.ErrorIs(t, err, domain.ErrInvalidTarget)

	removed, err := a.ClearCache("egfr")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	removed, err = a.ClearCache("")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestApp_Target(t *testing.T) {
	a := newApp(t)

	known, err := a.Target("egfr")
	require.NoError(t, err)
	assert.Equal(t, "EGFR", known.ID)
	assert.True(t, known.HasKnownDrugs)

	configured, err := a.Target("BRD4")
	require.NoError(t, err)
	assert.Equal(t, "Bromodomain-containing protein 4", configured.Name)
	assert.False(t, configured.HasKnownDrugs)

	_, err = a.Target("NOPE")
	require.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestApp_Targets(t *testing.T) {
	a := newApp(t)

	targets := a.Targets()
	require.Len(t, targets, 2)
	assert.Equal(t, "BRD4", targets[0].ID)
	assert.Equal(t, "EGFR", targets[1].ID)
}

func TestApp_KnowledgeLookups(t *testing.T) {
	a := newApp(t)

	exp, err := a.Explain("excellent")
	require.NoError(t, err)
	assert.Equal(t, domain.KindScore, exp.Kind)

	assert.Equal(t, domain.BucketGood, a.Interpret(-7.0).Bucket)

	analysis := a.Analyze("EGFR", []domain.ScoreRecord{{Molecule: "CCO", Score: -9.1}, {Molecule: "CCN", Score: -5.0}})
	assert.Equal(t, 2, analysis.Count)
	require.NotNil(t, analysis.TargetContext)
}

func TestApp_ServeFailsWhenWatcherFails(t *testing.T) {
	a := newApp(t).WithWatcher(func(context.Context) error {
		return errors.New("no inotify")
	})

	err := a.Serve(context.Background(), "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inotify")

	err = a.ServeMCP(context.Background(), 0)
	require.Error(t, err)
}

func TestComponents_CloseReleasesInReverseOrder(t *testing.T) {
	var order []string
	boom := errors.New("boom")

	c := app.NewComponents(nil, nil, nil,
		func() error { order = append(order, "store"); return nil },
		func() error { order = append(order, "telemetry"); return boom },
	)

	err := c.Close()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"telemetry", "store"}, order)
}
