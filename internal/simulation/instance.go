package simulation

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/guimove/stochpack/internal/model"
)

// Instance is one generated stochastic packing problem. Its distributions and
// weight table are produced once at construction and never modified, so
// evaluation may run concurrently without locks. Sampling consumes the
// instance's own random stream and is serialized.
type Instance struct {
	params    model.InstanceParams
	dists     []model.ItemDistribution
	weights   model.WeightTable
	evaluator *Evaluator
	sampler   Sampler

	mu  sync.Mutex
	rng *rand.Rand
}

// InstanceOption configures an Instance.
type InstanceOption func(*Instance)

// WithEvaluator replaces the default p90 evaluator.
func WithEvaluator(e *Evaluator) InstanceOption {
	return func(inst *Instance) { inst.evaluator = e }
}

// NewInstance validates params and generates the scenario weight table.
func NewInstance(params model.InstanceParams, opts ...InstanceOption) (*Instance, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	rng := NewRNG(params.Seed)
	dists, weights, err := GenerateScenarios(rng, params.Items, params.Scenarios)
	if err != nil {
		return nil, err
	}

	sampler, err := NewRandomAssignment(params.Items, params.Bins)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		params:    params,
		dists:     dists,
		weights:   weights,
		evaluator: DefaultEvaluator(),
		sampler:   sampler,
		rng:       rng,
	}
	for _, opt := range opts {
		opt(inst)
	}

	return inst, nil
}

// ValidateParams checks that item, bin, and scenario counts are positive.
func ValidateParams(p model.InstanceParams) error {
	if p.Items <= 0 {
		return fmt.Errorf("%w: items must be positive, got %d", ErrInvalidInstance, p.Items)
	}
	if p.Bins <= 0 {
		return fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidInstance, p.Bins)
	}
	if p.Scenarios <= 0 {
		return fmt.Errorf("%w: scenarios must be positive, got %d", ErrInvalidInstance, p.Scenarios)
	}
	return nil
}

// Params returns the construction parameters.
func (inst *Instance) Params() model.InstanceParams { return inst.params }

// Distributions returns the per-item weight ranges. Callers must not modify it.
func (inst *Instance) Distributions() []model.ItemDistribution { return inst.dists }

// Weights returns the shared scenario weight table. Callers must not modify it.
func (inst *Instance) Weights() model.WeightTable { return inst.weights }

// Evaluator returns the evaluator used by Evaluate and Inspect.
func (inst *Instance) Evaluator() *Evaluator { return inst.evaluator }

// Evaluate scores candidate against this instance.
func (inst *Instance) Evaluate(candidate model.Partition) float64 {
	return inst.evaluator.Evaluate(candidate, inst.weights)
}

// Inspect scores candidate and returns the full breakdown.
func (inst *Instance) Inspect(candidate model.Partition) model.Evaluation {
	return inst.evaluator.Inspect(candidate, inst.weights)
}

// RandomSolution draws a random exact partition from the instance stream.
func (inst *Instance) RandomSolution() model.Partition {
	return inst.Sample(inst.sampler)
}

// Sample draws one candidate from s using the instance stream.
func (inst *Instance) Sample(s Sampler) model.Partition {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return s.Sample(inst.rng)
}

// Summary describes the instance for reporting.
func (inst *Instance) Summary() model.InstanceSummary {
	sum := model.InstanceSummary{
		Params:        inst.params,
		Distributions: inst.dists,
	}
	if inst.weights.Scenarios() == 0 {
		return sum
	}

	var total int
	for s := range inst.weights {
		total += inst.weights.ScenarioTotal(s)
	}
	sum.MeanScenarioWeight = float64(total) / float64(inst.weights.Scenarios())
	sum.LowerBound = sum.MeanScenarioWeight / float64(inst.params.Bins)
	return sum
}
