package simulation

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/guimove/stochpack/internal/model"
)

const (
	// DefaultPercentile selects the 9th decile of per-scenario worst bin loads.
	DefaultPercentile = 0.9

	// DefaultPenalty is added to the objective of any candidate that is not an
	// exact partition. It must dominate every feasible objective: with item
	// weights bounded by MinItemWeightHigh+MaxItemSpread (150), that holds for
	// fewer than 6,666 items.
	DefaultPenalty = 1e6
)

// Evaluator scores candidate partitions against a scenario weight table.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	Percentile float64
	Penalty    float64
}

// NewEvaluator creates an evaluator with the given percentile (0-1) and penalty.
func NewEvaluator(percentile, penalty float64) (*Evaluator, error) {
	if percentile < 0 || percentile > 1 || math.IsNaN(percentile) {
		return nil, fmt.Errorf("%w: percentile must be between 0 and 1, got %v", ErrInvalidParameter, percentile)
	}
	if penalty < 0 || math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return nil, fmt.Errorf("%w: penalty must be finite and non-negative, got %v", ErrInvalidParameter, penalty)
	}
	return &Evaluator{Percentile: percentile, Penalty: penalty}, nil
}

// DefaultEvaluator returns the p90 evaluator with the 1e6 infeasibility penalty.
func DefaultEvaluator() *Evaluator {
	return &Evaluator{Percentile: DefaultPercentile, Penalty: DefaultPenalty}
}

// Evaluate returns the objective value of candidate: the percentile of the
// per-scenario worst bin loads plus the penalty when candidate is infeasible.
// It never fails; malformed item indices only make the candidate infeasible.
func (e *Evaluator) Evaluate(candidate model.Partition, table model.WeightTable) float64 {
	items := table.Items()
	penalty := 0.0
	if !CheckPartition(candidate, items).Empty() {
		penalty = e.Penalty
	}
	value, _ := e.percentile(ScenarioMaxima(candidate, table))
	return float64(value) + penalty
}

// Inspect evaluates candidate like Evaluate and returns the full breakdown.
func (e *Evaluator) Inspect(candidate model.Partition, table model.WeightTable) model.Evaluation {
	start := time.Now()

	ev := model.Evaluation{
		Candidate:   candidate,
		Violations:  CheckPartition(candidate, table.Items()),
		ScenarioMax: ScenarioMaxima(candidate, table),
	}
	ev.Feasible = ev.Violations.Empty()
	if !ev.Feasible {
		ev.Penalty = e.Penalty
	}
	ev.PercentileValue, ev.PercentileIndex = e.percentile(ev.ScenarioMax)
	ev.Objective = float64(ev.PercentileValue) + ev.Penalty
	ev.Load = AnalyzeLoad(candidate, table)
	ev.Duration = time.Since(start)

	return ev
}

// percentile returns the ceiling-indexed percentile of maxima and the index used.
func (e *Evaluator) percentile(maxima []int) (int, int) {
	if len(maxima) == 0 {
		return 0, 0
	}
	sorted := append([]int{}, maxima...)
	sort.Ints(sorted)
	idx := PercentileIndex(len(sorted), e.Percentile)
	return sorted[idx], idx
}

// PercentileIndex returns ceil(p*(n-1)) clamped to [0, n-1].
// For n=10 and p=0.9 this is 9, the largest value.
func PercentileIndex(n int, p float64) int {
	if n <= 0 {
		return 0
	}
	idx := int(math.Ceil(p * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// CheckPartition reports every way candidate deviates from an exact partition of
// {0, ..., items-1}. Empty bins are allowed.
func CheckPartition(candidate model.Partition, items int) model.Violations {
	var v model.Violations
	seen := make([]int, items)

	for _, bin := range candidate {
		for _, item := range bin {
			if item < 0 || item >= items {
				v.OutOfRange = append(v.OutOfRange, item)
				continue
			}
			seen[item]++
		}
	}

	for item, n := range seen {
		switch {
		case n == 0:
			v.Missing = append(v.Missing, item)
		case n > 1:
			v.Duplicated = append(v.Duplicated, item)
		}
	}
	sort.Ints(v.OutOfRange)

	return v
}

// ScenarioMaxima returns the heaviest bin load of candidate in each scenario.
// Out-of-range item indices contribute nothing. A candidate with no bins has a
// maximum of 0 in every scenario.
func ScenarioMaxima(candidate model.Partition, table model.WeightTable) []int {
	maxima := make([]int, table.Scenarios())
	for s := range table {
		worst := 0
		for _, bin := range candidate {
			if load := binLoad(bin, table, s); load > worst {
				worst = load
			}
		}
		maxima[s] = worst
	}
	return maxima
}

func binLoad(bin []int, table model.WeightTable, s int) int {
	var load int
	for _, item := range bin {
		if w, ok := table.Weight(s, item); ok {
			load += w
		}
	}
	return load
}
