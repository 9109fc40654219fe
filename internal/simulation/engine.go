package simulation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/guimove/stochpack/internal/model"
)

// Observer receives every evaluation the engine produces.
type Observer interface {
	ObserveEvaluation(ev model.Evaluation)
}

// Engine draws baseline candidates and evaluates them concurrently against the
// shared weight table of an instance.
type Engine struct {
	Sampler     Sampler
	Ranker      *Ranker
	Parallelism int
	Observer    Observer // optional
}

// NewEngine creates a sampling engine.
func NewEngine(sampler Sampler, ranker *Ranker) *Engine {
	return &Engine{
		Sampler:     sampler,
		Ranker:      ranker,
		Parallelism: runtime.NumCPU(),
	}
}

// Candidate is a labelled partition submitted for evaluation.
type Candidate struct {
	Label     string
	Partition model.Partition
}

// Run draws samples candidates from the instance stream and returns them ranked.
// Candidates are drawn sequentially so the result depends only on the seed.
func (e *Engine) Run(ctx context.Context, inst *Instance, samples int) ([]model.Recommendation, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidParameter, samples)
	}

	candidates := make([]Candidate, samples)
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidates[i] = Candidate{
			Label:     fmt.Sprintf("%s-%03d", e.Sampler.Name(), i+1),
			Partition: inst.Sample(e.Sampler),
		}
	}

	return e.EvaluateAll(ctx, inst, candidates)
}

// EvaluateAll scores every candidate against inst and returns ranked recommendations.
func (e *Engine) EvaluateAll(ctx context.Context, inst *Instance, candidates []Candidate) ([]model.Recommendation, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates provided")
	}

	evals := make([]model.Evaluation, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.Parallelism, 1))

	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ev := inst.Inspect(c.Partition)
			ev.Label = c.Label
			evals[i] = ev
			if e.Observer != nil {
				e.Observer.ObserveEvaluation(ev)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return e.Ranker.Rank(evals), nil
}
