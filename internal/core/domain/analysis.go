package domain

import "math"

// significantRange is the score spread above which differences are considered meaningful.
const significantRange = 2.0

// Analysis summarises a set of docking scores.
type Analysis struct {
	Target          string         `json:"target,omitempty"`
	Count           int            `json:"count"`
	Best            *ScoreRecord   `json:"best,omitempty"`
	Worst           *ScoreRecord   `json:"worst,omitempty"`
	Average         float64        `json:"average"`
	Range           float64        `json:"range"`
	Distribution    map[Bucket]int `json:"distribution"`
	TargetContext   *TargetDetails `json:"target_context,omitempty"`
	Recommendations []string       `json:"recommendations"`
}

// Analyze computes summary statistics and recommendations for a set of records.
// Ties for best and worst resolve to the first record in input order.
func Analyze(target string, records []ScoreRecord) Analysis {
	a := Analysis{
		Target:       NormalizeTarget(target),
		Count:        len(records),
		Distribution: make(map[Bucket]int, len(Buckets)),
	}
	if len(records) == 0 {
		a.Recommendations = []string{"No results to analyze"}
		return a
	}

	best, worst := 0, 0
	sum := 0.0
	for i, r := range records {
		sum += r.Score
		if r.Score < records[best].Score {
			best = i
		}
		if r.Score > records[worst].Score {
			worst = i
		}
		a.Distribution[BucketFor(r.Score)]++
	}

	b, w := records[best], records[worst]
	a.Best = &b
	a.Worst = &w
	a.Average = Round1(sum / float64(len(records)))
	a.Range = Round1(w.Score - b.Score)
	a.Recommendations = recommend(a.Distribution, a.Range)
	return a
}

func recommend(dist map[Bucket]int, spread float64) []string {
	var recs []string
	switch {
	case dist[BucketExcellent] > 0:
		recs = append(recs,
			"High priority: focus on compounds with excellent binding for lead optimization",
			"Consider experimental validation of top compounds")
	case dist[BucketGood] > 0:
		recs = append(recs,
			"Medium priority: investigate compounds with good binding affinity",
			"Consider structural modifications to improve moderate binders")
	default:
		recs = append(recs,
			"Low priority: no compound shows good binding",
			"Consider different chemical scaffolds or target modifications")
	}

	if spread > significantRange {
		recs = append(recs,
			"Significant differences in binding affinity detected",
			"Focus on the best-performing compounds")
	} else {
		recs = append(recs,
			"Similar binding affinities across compounds",
			"Consider additional screening criteria")
	}
	return recs
}

// Round1 rounds a score to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
