package ports

// Scorer generates deterministic stand-in docking scores.
//
//go:generate go run go.uber.org/mock/mockgen -source=scorer.go -destination=mocks/mock_scorer.go -package=mocks
type Scorer interface {
	// Score returns the score for a normalized (molecule, target) pair.
	// The same inputs always produce the same score.
	Score(molecule, target string) float64
}
