package simulation

import (
	"strings"
	"testing"

	"github.com/guimove/stochpack/internal/model"
)

func makeEvaluation(label string, objective float64, feasible bool) model.Evaluation {
	ev := model.Evaluation{
		Label:           label,
		Candidate:       model.Partition{{0}, {1}},
		Objective:       objective,
		PercentileValue: int(objective),
		Feasible:        feasible,
		ScenarioMax:     []int{int(objective)},
	}
	if !feasible {
		ev.Penalty = DefaultPenalty
		ev.Objective += DefaultPenalty
		ev.Violations.Missing = []int{2}
	}
	return ev
}

func TestRanker_LowestObjectiveWins(t *testing.T) {
	r := NewRanker(DefaultPercentile)

	recs := r.Rank([]model.Evaluation{
		makeEvaluation("a", 300, true),
		makeEvaluation("b", 100, true),
		makeEvaluation("c", 50, false),
		makeEvaluation("d", 200, true),
	})

	wantOrder := []string{"b", "d", "a", "c"}
	for i, want := range wantOrder {
		if recs[i].Evaluation.Label != want {
			t.Errorf("rank %d: got %q, want %q", i+1, recs[i].Evaluation.Label, want)
		}
		if recs[i].Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, recs[i].Rank)
		}
	}
}

func TestRanker_StableTies(t *testing.T) {
	r := NewRanker(DefaultPercentile)

	recs := r.Rank([]model.Evaluation{
		makeEvaluation("first", 100, true),
		makeEvaluation("second", 100, true),
	})
	if recs[0].Evaluation.Label != "first" {
		t.Errorf("ties should keep input order, got %q first", recs[0].Evaluation.Label)
	}
}

func TestRanker_Warnings(t *testing.T) {
	r := NewRanker(DefaultPercentile)

	infeasible := makeEvaluation("bad", 100, false)
	infeasible.Violations.Duplicated = []int{0}
	infeasible.Violations.OutOfRange = []int{9}

	recs := r.Rank([]model.Evaluation{infeasible})
	if len(recs[0].Warnings) != 3 {
		t.Errorf("expected 3 violation warnings, got %v", recs[0].Warnings)
	}
	if !strings.Contains(recs[0].Rationale, "penalty") {
		t.Errorf("rationale should mention the penalty: %q", recs[0].Rationale)
	}

	lopsided := makeEvaluation("lopsided", 100, true)
	lopsided.Load = model.LoadProfile{EmptyBins: 1, Imbalance: 1}
	recs = r.Rank([]model.Evaluation{lopsided})
	if len(recs[0].Warnings) != 2 {
		t.Errorf("expected empty-bin and imbalance warnings, got %v", recs[0].Warnings)
	}

	clean := makeEvaluation("clean", 100, true)
	recs = r.Rank([]model.Evaluation{clean})
	if len(recs[0].Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", recs[0].Warnings)
	}
	if !strings.HasPrefix(recs[0].Rationale, "clean: p90") {
		t.Errorf("unexpected rationale %q", recs[0].Rationale)
	}
}

func TestRanker_EmptyResults(t *testing.T) {
	if recs := NewRanker(DefaultPercentile).Rank(nil); recs != nil {
		t.Errorf("expected nil for empty results, got %v", recs)
	}
}
