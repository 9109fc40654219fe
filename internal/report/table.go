package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guimove/stochpack/internal/model"
)

// TableReporter outputs results as a formatted terminal table.
type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	// Header
	fmt.Fprintf(r.w, "\n")
	fmt.Fprintf(r.w, "Stochastic Packing Evaluation\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(r.w, "Items:       %d\n", meta.Params.Items)
	fmt.Fprintf(r.w, "Bins:        %d\n", meta.Params.Bins)
	fmt.Fprintf(r.w, "Scenarios:   %d (seed %d)\n", meta.Params.Scenarios, meta.Params.Seed)
	fmt.Fprintf(r.w, "Objective:   p%g worst-bin load (+%.0f if infeasible)\n", meta.Percentile*100, meta.Penalty)
	if meta.Sampler != "" {
		fmt.Fprintf(r.w, "Sampler:     %s (%d candidates)\n", meta.Sampler, meta.Candidates)
	}
	fmt.Fprintf(r.w, "Lower bound: %.1f\n", meta.LowerBound)
	fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("=", 60))

	if len(recs) == 0 {
		fmt.Fprintf(r.w, "No candidates evaluated.\n")
		return nil
	}

	// Column headers
	fmt.Fprintf(r.w, "%-4s %-28s %12s %8s %6s %10s %s\n",
		"Rank", "Candidate", "Objective", "p-value", "Empty", "Imbalance", "Notes")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 90))

	for _, rec := range recs {
		ev := rec.Evaluation
		label := ev.Label
		if len(label) > 28 {
			label = label[:25] + "..."
		}

		notes := ""
		if !ev.Feasible {
			notes = "[infeasible]"
		}

		fmt.Fprintf(r.w, "#%-3d %-28s %12.0f %8d %6d %9.1f%% %s\n",
			rec.Rank,
			label,
			ev.Objective,
			ev.PercentileValue,
			ev.Load.EmptyBins,
			ev.Load.Imbalance*100,
			notes,
		)
	}

	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 90))

	// Top candidate detail
	top := recs[0]
	fmt.Fprintf(r.w, "\nBest: %s\n", top.Rationale)
	if meta.LowerBound > 0 && top.Evaluation.Feasible {
		fmt.Fprintf(r.w, "  Gap to lower bound: %.1f%%\n",
			(float64(top.Evaluation.PercentileValue)/meta.LowerBound-1)*100)
	}
	for b, bin := range top.Evaluation.Candidate {
		fmt.Fprintf(r.w, "  bin %-3d %v\n", b, bin)
	}

	if len(top.Warnings) > 0 {
		fmt.Fprintf(r.w, "\n  Warnings:\n")
		for _, w := range top.Warnings {
			fmt.Fprintf(r.w, "    - %s\n", w)
		}
	}

	fmt.Fprintf(r.w, "\n")
	return nil
}

func (r *TableReporter) Instance(ctx context.Context, summary model.InstanceSummary) error {
	p := summary.Params
	fmt.Fprintf(r.w, "Instance: %d items, %d bins, %d scenarios (seed %d)\n",
		p.Items, p.Bins, p.Scenarios, p.Seed)
	fmt.Fprintf(r.w, "Mean total weight per scenario: %.1f\n", summary.MeanScenarioWeight)
	fmt.Fprintf(r.w, "Even split per bin:             %.1f\n\n", summary.LowerBound)

	fmt.Fprintf(r.w, "%-6s %6s %6s %6s\n", "ITEM", "MIN", "MAX", "SPREAD")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 28))
	for i, d := range summary.Distributions {
		fmt.Fprintf(r.w, "%-6d %6d %6d %6d\n", i, d.Min, d.Max, d.Spread())
	}
	return nil
}
