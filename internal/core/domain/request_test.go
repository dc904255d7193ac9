package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dockq/internal/core/domain"
)

func TestNewRequest_Normalizes(t *testing.T) {
	req := domain.NewRequest("  c1ccccc1O \n", " egfr ")

	assert.Equal(t, "c1ccccc1O", req.Molecule, "molecule case must be preserved")
	assert.Equal(t, "EGFR", req.Target)
	assert.Equal(t, domain.Key("c1ccccc1O", "EGFR"), req.Key())
}

func TestKey_DistinctNotationsDoNotCollide(t *testing.T) {
	// Chemically equivalent notations are distinct keys.
	assert.NotEqual(t, domain.NewRequest("OCC", "EGFR").Key(), domain.NewRequest("CCO", "EGFR").Key())
	assert.NotEqual(t, domain.NewRequest("c1ccccc1", "EGFR").Key(), domain.NewRequest("C1CCCCC1", "EGFR").Key())
}

func TestScoreRecord_AsCached(t *testing.T) {
	rec := domain.ScoreRecord{Molecule: "CCO", Target: "EGFR", Score: -6.1, Source: domain.SourceMock}

	cached := rec.AsCached()

	assert.Equal(t, domain.SourceCached, cached.Source)
	assert.Equal(t, domain.SourceMock, cached.Origin)
	assert.Equal(t, domain.OutcomeCached, cached.Outcome)
	assert.InDelta(t, -6.1, cached.Score, 0)
	assert.Equal(t, domain.SourceMock, rec.Source, "original must be untouched")
}

func TestTargetSet(t *testing.T) {
	set := domain.NewTargetSet(
		domain.TargetProfile{ID: "egfr", Name: "Epidermal growth factor receptor"},
		domain.TargetProfile{ID: "ACHE", Name: "Acetylcholinesterase"},
		domain.TargetProfile{ID: "EGFR", Name: "duplicate"},
		domain.TargetProfile{ID: "  "},
	)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(" Egfr"))
	assert.False(t, set.Contains("NOT_A_REAL_TARGET"))

	p, ok := set.Get("egfr")
	assert.True(t, ok)
	assert.Equal(t, "Epidermal growth factor receptor", p.Name)

	profiles := set.Profiles()
	assert.Equal(t, []string{"ACHE", "EGFR"}, []string{profiles[0].ID, profiles[1].ID})
}
