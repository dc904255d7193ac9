// Package knowledge answers explanation, interpretation and analysis lookups
// against a static knowledge base document.
package knowledge

import (
	"maps"
	"slices"
	"strings"
	"sync/atomic"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Knowledge = (*Base)(nil)

// Base implements ports.Knowledge. The document can be replaced at runtime with Swap.
type Base struct {
	doc atomic.Pointer[domain.KnowledgeBase]
}

// New creates a Base serving the given document.
func New(doc *domain.KnowledgeBase) *Base {
	b := &Base{}
	b.Swap(doc)
	return b
}

// Swap atomically replaces the served document.
func (b *Base) Swap(doc *domain.KnowledgeBase) {
	if doc == nil {
		doc = &domain.KnowledgeBase{}
	}
	b.doc.Store(doc)
}

// Document returns the document currently served.
func (b *Base) Document() *domain.KnowledgeBase {
	return b.doc.Load()
}

// Explain looks a key up in order: target, score bucket, process, molecular property.
func (b *Base) Explain(key string) (domain.Explanation, error) {
	doc := b.doc.Load()
	trimmed := strings.TrimSpace(key)

	if id, info, ok := lookup(doc.Targets, trimmed); ok {
		text := info.Description
		if info.BindingSite != "" {
			text += ". Binding site: " + info.BindingSite
		}
		if len(info.DrugExamples) > 0 {
			text += ". Known drugs: " + strings.Join(info.DrugExamples, ", ")
		}
		return domain.Explanation{Key: id, Kind: domain.KindTarget, Title: info.Name, Text: text}, nil
	}

	if id, info, ok := lookup(doc.DockingScores, trimmed); ok {
		return domain.Explanation{
			Key:   id,
			Kind:  domain.KindScore,
			Title: titleCase(id) + " binding (" + info.Range + ")",
			Text:  info.Description + ". " + info.Recommendation,
		}, nil
	}

	if id, info, ok := lookup(doc.Processes, strings.ReplaceAll(trimmed, " ", "_")); ok {
		text := info.Description
		if steps := append(slices.Clone(info.Steps), info.Stages...); len(steps) > 0 {
			text += ": " + strings.Join(steps, "; ")
		}
		if info.Timeline != "" {
			text += ". Timeline: " + info.Timeline
		}
		return domain.Explanation{Key: id, Kind: domain.KindProcess, Title: titleCase(id), Text: text}, nil
	}

	if id, info, ok := lookup(doc.MolecularProperties, strings.ReplaceAll(trimmed, " ", "_")); ok {
		text := info.Description
		if info.OptimalRange != "" {
			text += ". Optimal range: " + info.OptimalRange
		}
		if info.Importance != "" {
			text += ". " + info.Importance
		}
		return domain.Explanation{Key: id, Kind: domain.KindProperty, Title: titleCase(id), Text: text}, nil
	}

	return domain.Explanation{}, zerr.With(zerr.Wrap(domain.ErrUnknownKey, "nothing known about key"), "key", key)
}

// Interpret places a score in its bucket and attaches the bucket's description.
func (b *Base) Interpret(score float64) domain.Interpretation {
	bucket := domain.BucketFor(score)
	interp := domain.Interpretation{
		Score:          score,
		Bucket:         bucket,
		Range:          "Unknown",
		Description:    "No description available",
		Recommendation: "No specific recommendation available",
	}

	if info, ok := b.doc.Load().DockingScores[string(bucket)]; ok {
		interp.Range = info.Range
		interp.Description = info.Description
		interp.Recommendation = info.Recommendation
	}
	return interp
}

// Target returns what is known about a target.
func (b *Base) Target(id string) (domain.TargetDetails, error) {
	key, info, ok := lookup(b.doc.Load().Targets, domain.NormalizeTarget(id))
	if !ok {
		return domain.TargetDetails{}, zerr.With(zerr.Wrap(domain.ErrUnknownKey, "unknown target"), "target", id)
	}
	return domain.TargetDetails{
		ID:            strings.ToUpper(key),
		TargetInfo:    info,
		HasKnownDrugs: len(info.DrugExamples) > 0,
	}, nil
}

// Analyze summarises the records and adds the target context when the target is known.
func (b *Base) Analyze(target string, records []domain.ScoreRecord) domain.Analysis {
	a := domain.Analyze(target, records)
	if a.Target == "" {
		return a
	}
	if details, err := b.Target(a.Target); err == nil {
		a.TargetContext = &details
	}
	return a
}

// lookup finds a key case-insensitively. Exact matches win over folded ones.
func lookup[V any](section map[string]V, key string) (string, V, bool) {
	if v, ok := section[key]; ok {
		return key, v, true
	}
	for _, k := range slices.Sorted(maps.Keys(section)) {
		if strings.EqualFold(k, key) {
			return k, section[k], true
		}
	}
	var zero V
	return "", zero, false
}

func titleCase(id string) string {
	words := strings.Fields(strings.ReplaceAll(id, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
