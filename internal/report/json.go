package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/guimove/stochpack/internal/model"
)

// JSONReporter outputs results as JSON.
type JSONReporter struct {
	w io.Writer
}

type jsonOutput struct {
	Meta            ReportMeta             `json:"meta"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

func (r *JSONReporter) Report(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	return r.encode(jsonOutput{Meta: meta, Recommendations: recs})
}

func (r *JSONReporter) Instance(ctx context.Context, summary model.InstanceSummary) error {
	return r.encode(summary)
}

func (r *JSONReporter) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
