package simulation

import (
	"fmt"
	"sort"

	"github.com/guimove/stochpack/internal/model"
)

const (
	// HighImbalanceThreshold flags candidates whose lightest bin carries less
	// than 75% of the mean load of the heaviest bin.
	HighImbalanceThreshold = 0.25
)

// Ranker orders evaluations by objective (lower is better) and annotates them.
type Ranker struct {
	ImbalanceThreshold float64
	Percentile         float64
}

// NewRanker creates a ranker that labels percentiles with p.
func NewRanker(p float64) *Ranker {
	return &Ranker{ImbalanceThreshold: HighImbalanceThreshold, Percentile: p}
}

// Rank sorts evaluations ascending by objective and assigns ranks starting at 1.
// Ties keep their input order.
func (r *Ranker) Rank(evals []model.Evaluation) []model.Recommendation {
	if len(evals) == 0 {
		return nil
	}

	recs := make([]model.Recommendation, len(evals))
	for i, ev := range evals {
		recs[i] = model.Recommendation{
			Evaluation: ev,
			Rationale:  r.rationale(ev),
			Warnings:   r.warnings(ev),
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Evaluation.Objective < recs[j].Evaluation.Objective
	})

	for i := range recs {
		recs[i].Rank = i + 1
	}

	return recs
}

func (r *Ranker) rationale(ev model.Evaluation) string {
	label := ev.Label
	if label == "" {
		label = "candidate"
	}

	rationale := fmt.Sprintf("%s: p%g worst-bin load %d over %d scenarios, %d bins",
		label, r.Percentile*100, ev.PercentileValue, len(ev.ScenarioMax), ev.Candidate.BinCount())

	if !ev.Feasible {
		rationale += fmt.Sprintf(" (+%.0f infeasibility penalty)", ev.Penalty)
	}

	return rationale
}

func (r *Ranker) warnings(ev model.Evaluation) []string {
	var warnings []string

	if n := len(ev.Violations.Missing); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d items are not assigned to any bin", n))
	}
	if n := len(ev.Violations.Duplicated); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d items are assigned more than once", n))
	}
	if n := len(ev.Violations.OutOfRange); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d item indices are out of range", n))
	}

	if ev.Load.EmptyBins > 0 {
		warnings = append(warnings, fmt.Sprintf("%d bins are empty", ev.Load.EmptyBins))
	}

	if ev.Load.Imbalance > r.ImbalanceThreshold {
		warnings = append(warnings,
			fmt.Sprintf("Bin loads are imbalanced (%.0f%% spread between lightest and heaviest mean load)",
				ev.Load.Imbalance*100))
	}

	return warnings
}
