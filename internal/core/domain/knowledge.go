package domain

// Bucket is a qualitative binding-affinity category.
type Bucket string

const (
	// BucketExcellent covers scores below -8.0.
	BucketExcellent Bucket = "excellent"
	// BucketGood covers scores in [-8.0, -6.0).
	BucketGood Bucket = "good"
	// BucketModerate covers scores in [-6.0, -4.0).
	BucketModerate Bucket = "moderate"
	// BucketWeak covers scores of -4.0 and above.
	BucketWeak Bucket = "weak"
)

// Buckets lists all buckets from strongest to weakest binding.
var Buckets = []Bucket{BucketExcellent, BucketGood, BucketModerate, BucketWeak}

// BucketFor maps a docking score to its bucket.
func BucketFor(score float64) Bucket {
	switch {
	case score < -8.0:
		return BucketExcellent
	case score < -6.0:
		return BucketGood
	case score < -4.0:
		return BucketModerate
	default:
		return BucketWeak
	}
}

// KnowledgeBase is the static document behind knowledge lookups.
type KnowledgeBase struct {
	DockingScores       map[string]BucketInfo   `json:"docking_scores" yaml:"docking_scores" toml:"docking_scores"`
	Targets             map[string]TargetInfo   `json:"targets" yaml:"targets" toml:"targets"`
	Processes           map[string]ProcessInfo  `json:"processes" yaml:"processes" toml:"processes"`
	MolecularProperties map[string]PropertyInfo `json:"molecular_properties" yaml:"molecular_properties" toml:"molecular_properties"`
}

// BucketInfo describes a score bucket.
type BucketInfo struct {
	Range          string `json:"range" yaml:"range" toml:"range"`
	Description    string `json:"description" yaml:"description" toml:"description"`
	Recommendation string `json:"recommendation" yaml:"recommendation" toml:"recommendation"`
}

// TargetInfo describes a protein target.
type TargetInfo struct {
	Name            string   `json:"name" yaml:"name" toml:"name"`
	Description     string   `json:"description" yaml:"description" toml:"description"`
	DrugExamples    []string `json:"drug_examples" yaml:"drug_examples" toml:"drug_examples"`
	BindingSite     string   `json:"binding_site" yaml:"binding_site" toml:"binding_site"`
	TherapeuticArea string   `json:"therapeutic_area" yaml:"therapeutic_area" toml:"therapeutic_area"`
}

// ProcessInfo describes a scientific process.
type ProcessInfo struct {
	Description string   `json:"description" yaml:"description" toml:"description"`
	Steps       []string `json:"steps,omitempty" yaml:"steps" toml:"steps"`
	Stages      []string `json:"stages,omitempty" yaml:"stages" toml:"stages"`
	Timeline    string   `json:"timeline,omitempty" yaml:"timeline" toml:"timeline"`
}

// PropertyInfo describes a molecular property.
type PropertyInfo struct {
	Description  string `json:"description" yaml:"description" toml:"description"`
	OptimalRange string `json:"optimal_range,omitempty" yaml:"optimal_range" toml:"optimal_range"`
	Importance   string `json:"importance,omitempty" yaml:"importance" toml:"importance"`
}

// ExplanationKind tells which section of the knowledge base answered a lookup.
type ExplanationKind string

const (
	// KindTarget is an explanation of a protein target.
	KindTarget ExplanationKind = "target"
	// KindScore is an explanation of a score bucket.
	KindScore ExplanationKind = "score"
	// KindProcess is an explanation of a process.
	KindProcess ExplanationKind = "process"
	// KindProperty is an explanation of a molecular property.
	KindProperty ExplanationKind = "property"
)

// Explanation is the answer to a knowledge lookup.
type Explanation struct {
	Key   string          `json:"key"`
	Kind  ExplanationKind `json:"kind"`
	Title string          `json:"title"`
	Text  string          `json:"text"`
}

// Interpretation is a docking score placed in its bucket.
type Interpretation struct {
	Score          float64 `json:"score"`
	Bucket         Bucket  `json:"category"`
	Range          string  `json:"range"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}

// TargetDetails is the knowledge about one target.
type TargetDetails struct {
	ID string `json:"target_id"`
	TargetInfo
	HasKnownDrugs bool `json:"has_known_drugs"`
}
