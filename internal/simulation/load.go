package simulation

import (
	"github.com/guimove/stochpack/internal/model"
)

// AnalyzeLoad computes per-bin load statistics for candidate across all scenarios.
func AnalyzeLoad(candidate model.Partition, table model.WeightTable) model.LoadProfile {
	report := model.LoadProfile{
		MeanLoad:  make([]float64, len(candidate)),
		MaxLoad:   make([]int, len(candidate)),
		EmptyBins: candidate.EmptyBins(),
	}
	if len(candidate) == 0 || table.Scenarios() == 0 {
		return report
	}

	for b, bin := range candidate {
		var total int
		for s := range table {
			load := binLoad(bin, table, s)
			total += load
			if load > report.MaxLoad[b] {
				report.MaxLoad[b] = load
			}
		}
		report.MeanLoad[b] = float64(total) / float64(table.Scenarios())
	}

	lo, hi := report.MeanLoad[0], report.MeanLoad[0]
	for _, m := range report.MeanLoad[1:] {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	if hi > 0 {
		report.Imbalance = (hi - lo) / hi
	}

	return report
}
