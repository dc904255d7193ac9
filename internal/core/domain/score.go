package domain

import "time"

// Source tags where a returned score came from.
type Source string

const (
	// SourceCached marks a score served from the score cache.
	SourceCached Source = "cached"
	// SourceComputed marks a score freshly computed by the docking engine.
	SourceComputed Source = "computed"
	// SourceMock marks a score produced by the mock generator.
	SourceMock Source = "mock"
)

// Outcome is the terminal state of a single dispatch.
type Outcome string

const (
	// OutcomeCached means the score was found in the cache.
	OutcomeCached Outcome = "cached"
	// OutcomeComputed means the docking engine produced the score.
	OutcomeComputed Outcome = "computed"
	// OutcomeFallback means the docking engine failed and the mock generator was used.
	OutcomeFallback Outcome = "fallback"
	// OutcomeMock means the engine was not usable and the mock generator was used.
	OutcomeMock Outcome = "mock"
)

// ScoreRecord is a docking score for one (molecule, target) pair.
//
// Source is what the caller sees. Origin is the source the score was stored with,
// so a cache hit reports Source=cached and Origin=computed or Origin=mock.
type ScoreRecord struct {
	Molecule   string    `json:"molecule"`
	Target     string    `json:"target"`
	Score      float64   `json:"score"`
	Source     Source    `json:"source"`
	Origin     Source    `json:"origin,omitzero"`
	Outcome    Outcome   `json:"outcome,omitzero"`
	ComputedAt time.Time `json:"computed_at,omitzero"`
}

// Key returns the cache key of the record.
func (r ScoreRecord) Key() string {
	return Key(r.Molecule, r.Target)
}

// AsCached returns a copy of a stored record as it is served on a cache hit.
func (r ScoreRecord) AsCached() ScoreRecord {
	origin := r.Source
	if r.Origin != "" {
		origin = r.Origin
	}
	r.Origin = origin
	r.Source = SourceCached
	r.Outcome = OutcomeCached
	return r
}

// Ranking is the result of ranking a batch of molecules against one target.
type Ranking struct {
	Target  string        `json:"target"`
	Records []ScoreRecord `json:"records"`
	// Warnings lists non-fatal problems, such as scores that could not be persisted.
	Warnings []string `json:"warnings,omitempty"`
}

// CacheStats summarises the contents of a score store.
type CacheStats struct {
	Backend   string         `json:"backend"`
	Path      string         `json:"path"`
	Total     int            `json:"total"`
	PerTarget map[string]int `json:"per_target"`
	Degraded  bool           `json:"degraded"`
}

// HitRate reports how many of a batch of molecules are already cached for a target.
type HitRate struct {
	Target    string  `json:"target"`
	Requested int     `json:"requested"`
	Cached    int     `json:"cached"`
	Rate      float64 `json:"rate"`
}
