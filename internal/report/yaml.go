package report

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/guimove/stochpack/internal/model"
)

// YAMLReporter outputs results as YAML.
type YAMLReporter struct {
	w io.Writer
}

type yamlOutput struct {
	Meta            ReportMeta             `yaml:"meta"`
	Recommendations []model.Recommendation `yaml:"recommendations"`
}

func (r *YAMLReporter) Report(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	return r.encode(yamlOutput{Meta: meta, Recommendations: recs})
}

func (r *YAMLReporter) Instance(ctx context.Context, summary model.InstanceSummary) error {
	return r.encode(summary)
}

func (r *YAMLReporter) encode(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}
	return enc.Close()
}
