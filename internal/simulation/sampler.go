package simulation

import (
	"fmt"
	"math/rand"

	"github.com/guimove/stochpack/internal/model"
)

// Sampler produces candidate partitions from a random stream.
type Sampler interface {
	// Sample draws one candidate. Implementations must not retain rng.
	Sample(rng *rand.Rand) model.Partition

	// Name returns the strategy name.
	Name() string
}

// RandomAssignment places every item in a bin chosen uniformly at random.
type RandomAssignment struct {
	Items int
	Bins  int
}

// NewRandomAssignment creates a sampler for the given item and bin counts.
func NewRandomAssignment(items, bins int) (*RandomAssignment, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: bins must be at least 1, got %d", ErrInvalidParameter, bins)
	}
	if items < 0 {
		return nil, fmt.Errorf("%w: items must be non-negative, got %d", ErrInvalidParameter, items)
	}
	return &RandomAssignment{Items: items, Bins: bins}, nil
}

// Name returns the strategy name.
func (r *RandomAssignment) Name() string { return "random-assignment" }

// Sample visits the items in shuffled order and assigns each to a uniform bin.
// The result is always an exact partition; some bins may be empty.
func (r *RandomAssignment) Sample(rng *rand.Rand) model.Partition {
	if r.Bins < 1 {
		return nil
	}
	order := rng.Perm(r.Items)

	assignment := make([]int, r.Items)
	for i := range assignment {
		assignment[i] = rng.Intn(r.Bins)
	}

	bins := make(model.Partition, r.Bins)
	for i := range bins {
		bins[i] = []int{}
	}
	for i, item := range order {
		bins[assignment[i]] = append(bins[assignment[i]], item)
	}
	return bins
}
