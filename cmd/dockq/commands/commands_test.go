package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dockq/cmd/dockq/commands"
	"go.trai.ch/dockq/internal/build"
	"go.trai.ch/dockq/internal/core/domain"
)

type mockApp struct {
	rankFunc    func(ctx context.Context, molecules []string, target string) (domain.Ranking, error)
	clearFunc   func(target string) (int, error)
	serveFunc   func(ctx context.Context, addr string) error
	mcpFunc     func(ctx context.Context, port int) error
	interpreted []float64
}

func (m *mockApp) Rank(ctx context.Context, molecules []string, target string) (domain.Ranking, error) {
	if m.rankFunc != nil {
		return m.rankFunc(ctx, molecules, target)
	}
	return domain.Ranking{}, nil
}

func (m *mockApp) Explain(key string) (domain.Explanation, error) {
	if key == "docking" {
		return domain.Explanation{Key: key, Kind: domain.KindProcess, Title: "Docking", Text: "Predicts how a ligand binds."}, nil
	}
	return domain.Explanation{}, domain.ErrUnknownKey
}

func (m *mockApp) Interpret(score float64) domain.Interpretation {
	m.interpreted = append(m.interpreted, score)
	return domain.Interpretation{Score: score, Bucket: domain.BucketFor(score), Range: "-8.0 to -6.0", Description: "Good binding"}
}

func (m *mockApp) Targets() []domain.TargetProfile {
	return []domain.TargetProfile{{ID: "EGFR", Name: "Epidermal growth factor receptor"}, {ID: "F2", Name: "Thrombin"}}
}

func (m *mockApp) Target(id string) (domain.TargetDetails, error) {
	return domain.TargetDetails{
		ID:            id,
		TargetInfo:    domain.TargetInfo{Name: "Acetylcholinesterase", DrugExamples: []string{"donepezil"}},
		HasKnownDrugs: true,
	}, nil
}

func (m *mockApp) CacheStats() (domain.CacheStats, error) {
	return domain.CacheStats{Backend: "json", Path: "data/docking_scores.json", Total: 3, PerTarget: map[string]int{"EGFR": 2, "F2": 1}}, nil
}

func (m *mockApp) ClearCache(target string) (int, error) {
	if m.clearFunc != nil {
		return m.clearFunc(target)
	}
	return 0, nil
}

func (m *mockApp) CacheHitRate(molecules []string, target string) (domain.HitRate, error) {
	return domain.HitRate{Target: target, Requested: len(molecules), Cached: 1, Rate: 1 / float64(len(molecules))}, nil
}

func (m *mockApp) Serve(ctx context.Context, addr string) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, addr)
	}
	return nil
}

func (m *mockApp) ServeMCP(ctx context.Context, port int) error {
	if m.mcpFunc != nil {
		return m.mcpFunc(ctx, port)
	}
	return nil
}

func execute(t *testing.T, app commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(app)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func sampleRanking() domain.Ranking {
	return domain.Ranking{
		Target: "EGFR",
		Records: []domain.ScoreRecord{
			{Molecule: "CCN", Target: "EGFR", Score: -8.1, Source: domain.SourceCached, Origin: domain.SourceComputed},
			{Molecule: "CCO", Target: "EGFR", Score: -5.2, Source: domain.SourceMock},
		},
		Warnings: []string{"score cache is running in memory-only mode; results are not durable"},
	}
}

func TestCommands_Rank(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedTarget string
		var capturedMolecules []string
		mock := &mockApp{
			rankFunc: func(_ context.Context, molecules []string, target string) (domain.Ranking, error) {
				capturedMolecules = molecules
				capturedTarget = target
				return sampleRanking(), nil
			},
		}

		out, err := execute(t, mock, "rank", "--target", "egfr", "CCO", "CCN")
		require.NoError(t, err)
		assert.Equal(t, "egfr", capturedTarget)
		assert.Equal(t, []string{"CCO", "CCN"}, capturedMolecules)
		assert.Contains(t, out, "Ranking against EGFR (2 molecules)")
		assert.Contains(t, out, "  1  CCN    -8.1  ● cached (computed)")
		assert.Contains(t, out, "  2  CCO    -5.2  ~ mock")
		assert.Contains(t, out, "! score cache is running in memory-only mode")
	})

	t.Run("prints json", func(t *testing.T) {
		mock := &mockApp{
			rankFunc: func(context.Context, []string, string) (domain.Ranking, error) {
				return sampleRanking(), nil
			},
		}

		out, err := execute(t, mock, "rank", "-t", "EGFR", "--json", "CCO", "CCN")
		require.NoError(t, err)

		var got domain.Ranking
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, sampleRanking().Records, got.Records)
	})

	t.Run("requires a target", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "rank", "CCO")
		require.Error(t, err)
	})

	t.Run("returns error on rank failure", func(t *testing.T) {
		mock := &mockApp{
			rankFunc: func(context.Context, []string, string) (domain.Ranking, error) {
				return domain.Ranking{}, errors.New("simulated error")
			},
		}
		_, err := execute(t, mock, "rank", "-t", "EGFR", "CCO")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no molecules provided", func(t *testing.T) {
		mock := &mockApp{
			rankFunc: func(context.Context, []string, string) (domain.Ranking, error) {
				panic("should not be called")
			},
		}
		out, err := execute(t, mock, "rank", "-t", "EGFR")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Explain(t *testing.T) {
	out, err := execute(t, &mockApp{}, "explain", "docking")
	require.NoError(t, err)
	assert.Contains(t, out, "Docking [process]")
	assert.Contains(t, out, "Predicts how a ligand binds.")

	_, err = execute(t, &mockApp{}, "explain", "unobtainium")
	require.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestCommands_Interpret(t *testing.T) {
	mock := &mockApp{}

	out, err := execute(t, mock, "interpret", "-7.2")
	require.NoError(t, err)
	assert.Equal(t, []float64{-7.2}, mock.interpreted)
	assert.Contains(t, out, "-7.2 kcal/mol: good binding")

	out, err = execute(t, mock, "interpret", "--json", "-9")
	require.NoError(t, err)
	var got domain.Interpretation
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.BucketExcellent, got.Bucket)

	_, err = execute(t, mock, "interpret", "strong")
	require.Error(t, err)

	_, err = execute(t, mock, "interpret", "NaN")
	require.Error(t, err)
	assert.Equal(t, []float64{-7.2, -9}, mock.interpreted)

	_, err = execute(t, mock, "interpret")
	require.Error(t, err)
}

func TestCommands_Targets(t *testing.T) {
	out, err := execute(t, &mockApp{}, "targets")
	require.NoError(t, err)
	assert.Contains(t, out, "EGFR  Epidermal growth factor receptor")
	assert.Contains(t, out, "F2    Thrombin")

	out, err = execute(t, &mockApp{}, "target", "ACHE")
	require.NoError(t, err)
	assert.Contains(t, out, "ACHE Acetylcholinesterase")
	assert.Contains(t, out, "Known drugs: donepezil")
}

func TestCommands_Cache(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "cache", "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "3 cached scores")
		assert.Contains(t, out, "Backend: json")
		assert.Contains(t, out, "EGFR       2")
	})

	t.Run("clear", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			clearFunc: func(target string) (int, error) {
				captured = target
				return 2, nil
			},
		}
		out, err := execute(t, mock, "cache", "clear", "--target", "EGFR")
		require.NoError(t, err)
		assert.Equal(t, "EGFR", captured)
		assert.Contains(t, out, "removed 2 cached scores")
	})

	t.Run("hit rate", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "cache", "hit-rate", "-t", "EGFR", "CCO", "CCN")
		require.NoError(t, err)
		assert.Contains(t, out, "1 of 2 molecules cached for EGFR (50%)")
	})
}

func TestCommands_Serve(t *testing.T) {
	var addr string
	var port int
	mock := &mockApp{
		serveFunc: func(_ context.Context, a string) error {
			addr = a
			return nil
		},
		mcpFunc: func(_ context.Context, p int) error {
			port = p
			return nil
		},
	}

	_, err := execute(t, mock, "serve", "--addr", ":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = execute(t, mock, "mcp", "--port", "7000")
	require.NoError(t, err)
	assert.Equal(t, 7000, port)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dockq version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)

	out, err = execute(t, &mockApp{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, build.Version+"\n", out)

	out, err = execute(t, &mockApp{}, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+build.Version+`","commit":"`+build.Commit+`","date":"`+build.Date+`"}`, out)
}
