package model

// InstanceParams are the constructor parameters of a stochastic packing instance.
type InstanceParams struct {
	Items     int   `json:"items" yaml:"items"`
	Bins      int   `json:"bins" yaml:"bins"`
	Scenarios int   `json:"scenarios" yaml:"scenarios"`
	Seed      int64 `json:"seed" yaml:"seed"`
}

// ItemDistribution is the inclusive uniform range an item's weight is drawn from.
type ItemDistribution struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether w lies in [Min, Max].
func (d ItemDistribution) Contains(w int) bool {
	return w >= d.Min && w <= d.Max
}

// Spread returns Max - Min.
func (d ItemDistribution) Spread() int {
	return d.Max - d.Min
}

// WeightTable holds sampled item weights indexed by [scenario][item].
type WeightTable [][]int

// Scenarios returns the number of scenario rows.
func (wt WeightTable) Scenarios() int {
	return len(wt)
}

// Items returns the number of items per scenario (0 for an empty table).
func (wt WeightTable) Items() int {
	if len(wt) == 0 {
		return 0
	}
	return len(wt[0])
}

// Weight returns the weight of item in scenario s, or false when either index is out of range.
func (wt WeightTable) Weight(s, item int) (int, bool) {
	if s < 0 || s >= len(wt) {
		return 0, false
	}
	row := wt[s]
	if item < 0 || item >= len(row) {
		return 0, false
	}
	return row[item], true
}

// ScenarioTotal returns the summed weight of every item in scenario s.
func (wt WeightTable) ScenarioTotal(s int) int {
	var total int
	if s < 0 || s >= len(wt) {
		return 0
	}
	for _, w := range wt[s] {
		total += w
	}
	return total
}

// InstanceSummary describes a generated instance for reporting.
type InstanceSummary struct {
	Params        InstanceParams     `json:"params" yaml:"params"`
	Distributions []ItemDistribution `json:"distributions" yaml:"distributions"`

	// Mean total item weight per scenario
	MeanScenarioWeight float64 `json:"mean_scenario_weight" yaml:"mean_scenario_weight"`

	// Ideal per-bin load if the mean total were split evenly
	LowerBound float64 `json:"lower_bound" yaml:"lower_bound"`
}
