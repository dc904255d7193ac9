package cache_test

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/internal/adapters/cache"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	store := cache.NewStore(storePath, quietLogger(t))

	rec := domain.ScoreRecord{
		Molecule:   "CCO",
		Target:     "HSP90AA1",
		Score:      -6.2,
		Source:     domain.SourceMock,
		ComputedAt: time.Now(),
	}
	require.NoError(t, store.Put(rec))

	got, err := store.Get(" CCO", "hsp90aa1 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -6.2, got.Score, 0)
	assert.Equal(t, domain.SourceMock, got.Source)

	missing, err := store.Get("CCN", "HSP90AA1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "docking_scores.json")

	store1 := cache.NewStore(storePath, quietLogger(t))
	require.NoError(t, store1.Put(domain.ScoreRecord{Molecule: "CCN", Target: "EGFR", Score: -7.5, Source: domain.SourceComputed}))

	store2 := cache.NewStore(storePath, quietLogger(t))
	got, err := store2.Get("CCN", "EGFR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -7.5, got.Score, 0)
	assert.Equal(t, domain.SourceComputed, got.Source)
}

func TestStore_FileLayout(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	store := cache.NewStore(storePath, quietLogger(t))

	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CCO", Target: "F2", Score: -5.1, Source: domain.SourceMock}))
	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CCN", Target: "EGFR", Score: -7.5, Source: domain.SourceComputed}))
	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CC", Target: "EGFR", Score: -4.4, Source: domain.SourceMock}))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(content, &records))
	require.Len(t, records, 3)

	assert.Equal(t, "EGFR", records[0]["target"])
	assert.Equal(t, "CC", records[0]["molecule"])
	assert.Equal(t, "CCN", records[1]["molecule"])
	assert.Equal(t, "F2", records[2]["target"])
	assert.NotContains(t, records[0], "computed_at", "zero timestamps are omitted")
	assert.NotContains(t, records[0], "origin")
}

func TestStore_EmptyAndMissingFiles(t *testing.T) {
	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, []byte("  \n"), 0o600))

	for _, path := range []string{emptyPath, filepath.Join(dir, "missing.json")} {
		store := cache.NewStore(path, mocks.NewMockLogger(gomock.NewController(t)))
		stats, err := store.Stats()
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.False(t, stats.Degraded)
	}
}

func TestStore_LegacyNestedLayout(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	legacy := `{"F2": {"CCO": -5.4, "c1ccccc1": -6.1}, "egfr": {"CCN": -7.5}}`
	require.NoError(t, os.WriteFile(storePath, []byte(legacy), 0o600))

	store := cache.NewStore(storePath, quietLogger(t))

	got, err := store.Get("CCN", "EGFR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -7.5, got.Score, 0)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"F2": 2, "EGFR": 1}, stats.PerTarget)
}

func TestStore_LegacyEntryObjects(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	legacy := `{
  "EGFR": {
    "CCN": -7.5,
    "CCO": {"score": -6.1, "timestamp": "2024-05-01T12:30:45.123456", "computed": true},
    "CC": null,
    "C": {"score": null, "computed": false},
    "CCC": "strong"
  }
}`
	require.NoError(t, os.WriteFile(storePath, []byte(legacy), 0o600))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	store := cache.NewStore(storePath, log)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.False(t, stats.Degraded)
	assert.Equal(t, 2, stats.Total)

	got, err := store.Get("CCN", "EGFR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -7.5, got.Score, 0)

	got, err = store.Get("CCO", "EGFR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -6.1, got.Score, 0)
	assert.Equal(t, domain.SourceComputed, got.Source)
	assert.True(t, time.Date(2024, 5, 1, 12, 30, 45, 123456000, time.UTC).Equal(got.ComputedAt), got.ComputedAt)

	// The store stays durable after reading a legacy file.
	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CCCC", Target: "EGFR", Score: -5.0, Source: domain.SourceMock}))
}

func TestStore_LegacyCaseCollisionIsDeterministic(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	legacy := `{"egfr": {"CCN": -1.0}, "EGFR": {"CCN": -9.0, " CCN": -4.0}}`
	require.NoError(t, os.WriteFile(storePath, []byte(legacy), 0o600))

	for range 10 {
		store := cache.NewStore(storePath, quietLogger(t))

		got, err := store.Get("CCN", "EGFR")
		require.NoError(t, err)
		require.NotNil(t, got)
		// " CCN" sorts before "CCN", and "EGFR" before "egfr".
		assert.InDelta(t, -4.0, got.Score, 0)

		stats, err := store.Stats()
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Total)
	}
}

func TestStore_RejectsNonFiniteScores(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	store := cache.NewStore(storePath, quietLogger(t))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := store.Put(domain.ScoreRecord{Molecule: "CCO", Target: "EGFR", Score: bad, Source: domain.SourceComputed})
		require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	}

	got, err := store.Get("CCO", "EGFR")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CCN", Target: "EGFR", Score: -7.5, Source: domain.SourceComputed}))
	reloaded := cache.NewStore(storePath, quietLogger(t))
	stats, err := reloaded.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestStore_CorruptFileDegrades(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	require.NoError(t, os.WriteFile(storePath, []byte("[{not json"), 0o600))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	store := cache.NewStore(storePath, log)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.True(t, stats.Degraded)

	err = store.Put(domain.ScoreRecord{Molecule: "CCO", Target: "F2", Score: -5.0, Source: domain.SourceMock})
	require.ErrorIs(t, err, domain.ErrStoreDegraded)

	got, err := store.Get("CCO", "F2")
	require.NoError(t, err)
	require.NotNil(t, got, "degraded store still serves from memory")

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)
	assert.Equal(t, "[{not json", string(content), "corrupt file must not be overwritten")
}

func TestStore_WriteFailureKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// The parent of the cache path is a regular file, so every write fails.
	store := cache.NewStore(filepath.Join(blocker, "docking_scores.json"), quietLogger(t))

	err := store.Put(domain.ScoreRecord{Molecule: "CCO", Target: "F2", Score: -5.0, Source: domain.SourceMock})
	require.ErrorIs(t, err, domain.ErrStoreWriteFailed)

	got, getErr := store.Get("CCO", "F2")
	require.NoError(t, getErr)
	require.NotNil(t, got)
	assert.InDelta(t, -5.0, got.Score, 0)
}

func TestStore_Clear(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	store := cache.NewStore(storePath, quietLogger(t))
	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CCO", Target: "F2", Score: -5.0, Source: domain.SourceMock}))
	require.NoError(t, store.Put(domain.ScoreRecord{Molecule: "CCO", Target: "EGFR", Score: -6.0, Source: domain.SourceMock}))

	removed, err := store.Clear("f2")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	reloaded := cache.NewStore(storePath, quietLogger(t))
	stats, err := reloaded.Stats()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"EGFR": 1}, stats.PerTarget)

	removed, err = reloaded.Clear("")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestStore_ConcurrentPuts(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "docking_scores.json")
	store := cache.NewStore(storePath, quietLogger(t))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			molecule := string(rune('A' + i))
			assert.NoError(t, store.Put(domain.ScoreRecord{Molecule: molecule, Target: "F2", Score: -5.0, Source: domain.SourceMock}))
		}()
	}
	wg.Wait()

	reloaded := cache.NewStore(storePath, quietLogger(t))
	stats, err := reloaded.Stats()
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Total, "no write may be lost")
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	jsonStore := cache.Open(domain.CacheConfig{Backend: domain.CacheBackendJSON, Path: filepath.Join(dir, "a.json")}, quietLogger(t))
	stats, err := jsonStore.Stats()
	require.NoError(t, err)
	assert.Equal(t, domain.CacheBackendJSON, stats.Backend)

	sqlStore := cache.Open(domain.CacheConfig{Backend: domain.CacheBackendSQLite, Path: filepath.Join(dir, "a.db")}, quietLogger(t))
	t.Cleanup(func() { _ = sqlStore.Close() })
	stats, err = sqlStore.Stats()
	require.NoError(t, err)
	assert.Equal(t, domain.CacheBackendSQLite, stats.Backend)
}
