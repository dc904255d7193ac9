package ports

import "go.trai.ch/dockq/internal/core/domain"

// Knowledge answers lookups against the static knowledge base.
//
//go:generate go run go.uber.org/mock/mockgen -source=knowledge.go -destination=mocks/mock_knowledge.go -package=mocks
type Knowledge interface {
	// Explain looks up a target, score bucket, process or molecular property by key.
	// Returns an error wrapping domain.ErrUnknownKey if nothing matches.
	Explain(key string) (domain.Explanation, error)

	// Interpret places a score in its bucket.
	Interpret(score float64) domain.Interpretation

	// Target returns what is known about a target.
	Target(id string) (domain.TargetDetails, error)

	// Analyze summarises a set of scores for a target.
	Analyze(target string, records []domain.ScoreRecord) domain.Analysis
}
