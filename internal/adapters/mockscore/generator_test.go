package mockscore_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dockq/internal/adapters/mockscore"
)

func TestGenerator_Deterministic(t *testing.T) {
	g := mockscore.NewGenerator()
	other := mockscore.NewGenerator()

	first := g.Score("CCO", "HSP90AA1")
	for range 100 {
		assert.InDelta(t, first, g.Score("CCO", "HSP90AA1"), 0)
	}
	assert.InDelta(t, first, other.Score("CCO", "HSP90AA1"), 0, "separate instances must agree")
}

func TestGenerator_NormalizesIdentifiers(t *testing.T) {
	g := mockscore.NewGenerator()

	assert.InDelta(t, g.Score("CCO", "HSP90AA1"), g.Score("  CCO\t", " hsp90aa1 "), 0)
	assert.Equal(t, mockscore.Fingerprint("CCO", "EGFR"), mockscore.Fingerprint(" CCO ", "egfr"))
}

func TestGenerator_RangeAndPrecision(t *testing.T) {
	g := mockscore.NewGenerator()
	seen := map[float64]bool{}

	for i := range 500 {
		molecule := fmt.Sprintf("C%sO", string(rune('A'+i%26)))
		target := fmt.Sprintf("T%d", i)
		score := g.Score(molecule, target)

		assert.GreaterOrEqual(t, score, mockscore.MinScore)
		assert.LessOrEqual(t, score, mockscore.MaxScore)
		assert.InDelta(t, score, math.Round(score*10)/10, 1e-9, "score %v must have one decimal", score)
		seen[score] = true
	}

	assert.Greater(t, len(seen), 20, "scores should spread over the range")
}

func TestFingerprint_SeparatesFields(t *testing.T) {
	// The separator keeps ("AB","C") and ("A","BC") apart.
	assert.NotEqual(t, mockscore.Fingerprint("C", "AB"), mockscore.Fingerprint("BC", "A"))
}
