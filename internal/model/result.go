package model

import "time"

// Violations lists why a candidate is not an exact partition of the items.
type Violations struct {
	Missing    []int `json:"missing,omitempty" yaml:"missing,omitempty"`
	Duplicated []int `json:"duplicated,omitempty" yaml:"duplicated,omitempty"`
	OutOfRange []int `json:"out_of_range,omitempty" yaml:"out_of_range,omitempty"`
}

// Empty reports whether no violation was recorded.
func (v Violations) Empty() bool {
	return len(v.Missing) == 0 && len(v.Duplicated) == 0 && len(v.OutOfRange) == 0
}

// LoadProfile summarizes bin loads across all scenarios.
type LoadProfile struct {
	// Per-bin mean and worst load across scenarios
	MeanLoad []float64 `json:"mean_load" yaml:"mean_load"`
	MaxLoad  []int     `json:"max_load" yaml:"max_load"`

	EmptyBins int `json:"empty_bins" yaml:"empty_bins"`

	// (highest mean - lowest mean) / highest mean, 0 when perfectly balanced
	Imbalance float64 `json:"imbalance" yaml:"imbalance"`
}

// Evaluation is the scored outcome of one candidate partition.
type Evaluation struct {
	Label     string    `json:"label" yaml:"label"`
	Candidate Partition `json:"candidate" yaml:"candidate"`

	// Objective = PercentileValue + Penalty
	Objective       float64 `json:"objective" yaml:"objective"`
	PercentileValue int     `json:"percentile_value" yaml:"percentile_value"`
	PercentileIndex int     `json:"percentile_index" yaml:"percentile_index"`
	Penalty         float64 `json:"penalty" yaml:"penalty"`

	Feasible   bool       `json:"feasible" yaml:"feasible"`
	Violations Violations `json:"violations" yaml:"violations"`

	// Worst bin load per scenario, in scenario order
	ScenarioMax []int `json:"scenario_max" yaml:"scenario_max"`

	Load LoadProfile `json:"load" yaml:"load"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Recommendation is a ranked evaluation presented to the user.
type Recommendation struct {
	Rank       int        `json:"rank" yaml:"rank"`
	Evaluation Evaluation `json:"evaluation" yaml:"evaluation"`

	Rationale string   `json:"rationale" yaml:"rationale"`
	Warnings  []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
