package report

import (
	"context"
	"fmt"
	"io"

	"github.com/guimove/stochpack/internal/model"
)

// MarkdownReporter outputs results as Markdown tables.
type MarkdownReporter struct {
	w io.Writer
}

func (r *MarkdownReporter) Report(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	fmt.Fprintf(r.w, "## Stochastic Packing Evaluation\n\n")
	fmt.Fprintf(r.w, "- **Instance:** %d items, %d bins, %d scenarios (seed %d)\n",
		meta.Params.Items, meta.Params.Bins, meta.Params.Scenarios, meta.Params.Seed)
	fmt.Fprintf(r.w, "- **Objective:** p%g worst-bin load, +%.0f if infeasible\n", meta.Percentile*100, meta.Penalty)
	fmt.Fprintf(r.w, "- **Lower bound:** %.1f\n\n", meta.LowerBound)

	if len(recs) == 0 {
		fmt.Fprintf(r.w, "_No candidates evaluated._\n")
		return nil
	}

	fmt.Fprintf(r.w, "| Rank | Candidate | Objective | Feasible | Empty bins | Imbalance |\n")
	fmt.Fprintf(r.w, "|------|-----------|-----------|----------|------------|-----------|\n")
	for _, rec := range recs {
		ev := rec.Evaluation
		fmt.Fprintf(r.w, "| %d | %s | %.0f | %t | %d | %.1f%% |\n",
			rec.Rank, ev.Label, ev.Objective, ev.Feasible, ev.Load.EmptyBins, ev.Load.Imbalance*100)
	}

	top := recs[0]
	fmt.Fprintf(r.w, "\n**Best:** %s\n", top.Rationale)
	for _, w := range top.Warnings {
		fmt.Fprintf(r.w, "\n> %s\n", w)
	}
	return nil
}

func (r *MarkdownReporter) Instance(ctx context.Context, summary model.InstanceSummary) error {
	p := summary.Params
	fmt.Fprintf(r.w, "## Instance\n\n")
	fmt.Fprintf(r.w, "%d items, %d bins, %d scenarios (seed %d). Mean total weight %.1f, even split %.1f.\n\n",
		p.Items, p.Bins, p.Scenarios, p.Seed, summary.MeanScenarioWeight, summary.LowerBound)

	fmt.Fprintf(r.w, "| Item | Min | Max |\n")
	fmt.Fprintf(r.w, "|------|-----|-----|\n")
	for i, d := range summary.Distributions {
		fmt.Fprintf(r.w, "| %d | %d | %d |\n", i, d.Min, d.Max)
	}
	return nil
}
