// Package mockscore provides the deterministic stand-in for the docking engine.
package mockscore

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

var _ ports.Scorer = (*Generator)(nil)

const (
	// MaxScore is the weakest score the generator produces.
	MaxScore = -4.0
	// MinScore is the strongest score the generator produces.
	MinScore = -10.0

	// steps is the number of distinct one-decimal values in [MinScore, MaxScore].
	steps = 61
)

// Generator maps (molecule, target) pairs onto plausible binding affinities
// using a content hash, so the same pair scores identically across runs and hosts.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Score returns a score in [MinScore, MaxScore] rounded to one decimal.
func (g *Generator) Score(molecule, target string) float64 {
	bucket := Fingerprint(molecule, target) % steps
	return domain.Round1(MaxScore - float64(bucket)/10)
}

// Fingerprint is the XXHash of the normalized target and molecule.
func Fingerprint(molecule, target string) uint64 {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(domain.NormalizeTarget(target))
	_, _ = hasher.Write([]byte{0}) // Separator
	_, _ = hasher.WriteString(domain.NormalizeMolecule(molecule))
	return hasher.Sum64()
}
