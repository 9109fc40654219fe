package report

import (
	"context"
	"io"

	"github.com/guimove/stochpack/internal/model"
)

// Reporter formats and writes results to an output destination.
type Reporter interface {
	// Report writes ranked recommendations.
	Report(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error

	// Instance writes the description of a generated instance.
	Instance(ctx context.Context, summary model.InstanceSummary) error
}

// ReportMeta contains contextual metadata for the report.
type ReportMeta struct {
	Params     model.InstanceParams `json:"params" yaml:"params"`
	Percentile float64              `json:"percentile" yaml:"percentile"`
	Penalty    float64              `json:"penalty" yaml:"penalty"`
	Sampler    string               `json:"sampler,omitempty" yaml:"sampler,omitempty"`
	Candidates int                  `json:"candidates" yaml:"candidates"`

	// Mean load per bin if the expected total weight were split evenly
	LowerBound float64 `json:"lower_bound" yaml:"lower_bound"`
}

// NewReporter creates a reporter for the given format writing to w.
func NewReporter(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	case "yaml":
		return &YAMLReporter{w: w}
	case "markdown":
		return &MarkdownReporter{w: w}
	default:
		return &TableReporter{w: w}
	}
}
