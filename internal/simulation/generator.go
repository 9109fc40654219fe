package simulation

import (
	"fmt"
	"math/rand"

	"github.com/guimove/stochpack/internal/model"
)

// Bounds of the per-item uniform distributions drawn at generation time.
const (
	MinItemWeightLow  = 10
	MinItemWeightHigh = 100
	MaxItemSpread     = 50
)

// NewRNG returns the deterministic stream used for one instance.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GenerateScenarios draws the item distributions and then the scenario weight table
// from rng. All distributions are drawn first, then weights scenario by scenario in
// item order, so the same seed always yields the same table.
func GenerateScenarios(rng *rand.Rand, items, scenarios int) ([]model.ItemDistribution, model.WeightTable, error) {
	if items < 0 {
		return nil, nil, fmt.Errorf("%w: items must be non-negative, got %d", ErrInvalidInstance, items)
	}
	if scenarios < 0 {
		return nil, nil, fmt.Errorf("%w: scenarios must be non-negative, got %d", ErrInvalidInstance, scenarios)
	}

	dists := make([]model.ItemDistribution, items)
	for i := range dists {
		lo := randInt(rng, MinItemWeightLow, MinItemWeightHigh)
		dists[i] = model.ItemDistribution{Min: lo, Max: lo + randInt(rng, 0, MaxItemSpread)}
	}

	table := make(model.WeightTable, scenarios)
	for s := range table {
		row := make([]int, items)
		for i, d := range dists {
			row[i] = randInt(rng, d.Min, d.Max)
		}
		table[s] = row
	}

	return dists, table, nil
}

// randInt draws uniformly from [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
