package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/guimove/stochpack/internal/config"
	"github.com/guimove/stochpack/internal/metrics"
	"github.com/guimove/stochpack/internal/model"
	"github.com/guimove/stochpack/internal/report"
	"github.com/guimove/stochpack/internal/simulation"
)

// Orchestrator coordinates instance generation, evaluation, and reporting.
type Orchestrator struct {
	Config   config.Config
	Writer   io.Writer
	Logger   *zap.Logger
	Recorder *metrics.Recorder
}

// New creates an orchestrator writing reports to stdout.
func New(cfg config.Config, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		Config:   cfg,
		Writer:   os.Stdout,
		Logger:   logger,
		Recorder: metrics.NewRecorder(),
	}
}

// BuildInstance generates the instance described by the config.
func (o *Orchestrator) BuildInstance(ctx context.Context) (*simulation.Instance, error) {
	cfg := o.Config
	params := cfg.Params()

	evaluator, err := simulation.NewEvaluator(cfg.Objective.Percentile, cfg.Objective.Penalty)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	inst, err := simulation.NewInstance(params, simulation.WithEvaluator(evaluator))
	if err != nil {
		return nil, fmt.Errorf("generating instance: %w", err)
	}
	elapsed := time.Since(start)

	o.Recorder.ObserveGeneration(elapsed)
	o.Logger.Debug("instance generated",
		zap.Int("items", params.Items),
		zap.Int("bins", params.Bins),
		zap.Int("scenarios", params.Scenarios),
		zap.Int64("seed", params.Seed),
		zap.Duration("elapsed", elapsed))

	return inst, nil
}

// Generate builds the instance and reports its item distributions.
func (o *Orchestrator) Generate(ctx context.Context) (model.InstanceSummary, error) {
	inst, err := o.BuildInstance(ctx)
	if err != nil {
		return model.InstanceSummary{}, err
	}

	summary := inst.Summary()
	reporter := report.NewReporter(o.Config.Output.Format, o.Writer)
	if err := reporter.Instance(ctx, summary); err != nil {
		return model.InstanceSummary{}, fmt.Errorf("generating report: %w", err)
	}
	return summary, nil
}

// Evaluate scores the given candidates against the configured instance.
func (o *Orchestrator) Evaluate(ctx context.Context, candidates []simulation.Candidate) ([]model.Recommendation, error) {
	inst, err := o.BuildInstance(ctx)
	if err != nil {
		return nil, err
	}

	engine := o.newEngine(inst)
	recs, err := engine.EvaluateAll(ctx, inst, candidates)
	if err != nil {
		return nil, fmt.Errorf("evaluating candidates: %w", err)
	}

	for _, rec := range recs {
		if !rec.Evaluation.Feasible {
			o.Logger.Warn("candidate is not a partition of the items",
				zap.String("candidate", rec.Evaluation.Label),
				zap.Ints("missing", rec.Evaluation.Violations.Missing),
				zap.Ints("duplicated", rec.Evaluation.Violations.Duplicated),
				zap.Ints("out_of_range", rec.Evaluation.Violations.OutOfRange))
		}
	}

	if err := o.report(ctx, inst, recs, "", len(candidates)); err != nil {
		return nil, err
	}
	return recs, nil
}

// Sample draws random baseline candidates, ranks them, and reports the top N.
func (o *Orchestrator) Sample(ctx context.Context) ([]model.Recommendation, error) {
	inst, err := o.BuildInstance(ctx)
	if err != nil {
		return nil, err
	}

	engine := o.newEngine(inst)
	samples := o.Config.Sampling.Samples

	o.Logger.Debug("sampling random candidates",
		zap.String("sampler", engine.Sampler.Name()),
		zap.Int("samples", samples),
		zap.Int("parallelism", engine.Parallelism))

	recs, err := engine.Run(ctx, inst, samples)
	if err != nil {
		return nil, fmt.Errorf("sampling candidates: %w", err)
	}

	if n := o.Config.Output.TopN; n > 0 && len(recs) > n {
		recs = recs[:n]
	}

	if err := o.report(ctx, inst, recs, engine.Sampler.Name(), samples); err != nil {
		return nil, err
	}
	return recs, nil
}

// DumpMetrics writes collected metrics to w when metrics are enabled.
func (o *Orchestrator) DumpMetrics(w io.Writer) error {
	if !o.Config.Metrics.Enabled {
		return nil
	}
	return o.Recorder.Dump(w)
}

func (o *Orchestrator) newEngine(inst *simulation.Instance) *simulation.Engine {
	p := inst.Params()
	// NewInstance already rejected non-positive bins.
	sampler, _ := simulation.NewRandomAssignment(p.Items, p.Bins)

	engine := simulation.NewEngine(sampler, simulation.NewRanker(inst.Evaluator().Percentile))
	if o.Config.Sampling.Parallelism > 0 {
		engine.Parallelism = o.Config.Sampling.Parallelism
	}
	engine.Observer = o.Recorder
	return engine
}

func (o *Orchestrator) report(
	ctx context.Context,
	inst *simulation.Instance,
	recs []model.Recommendation,
	sampler string,
	candidates int,
) error {
	ev := inst.Evaluator()
	meta := report.ReportMeta{
		Params:     inst.Params(),
		Percentile: ev.Percentile,
		Penalty:    ev.Penalty,
		Sampler:    sampler,
		Candidates: candidates,
		LowerBound: inst.Summary().LowerBound,
	}

	reporter := report.NewReporter(o.Config.Output.Format, o.Writer)
	if err := reporter.Report(ctx, recs, meta); err != nil {
		return fmt.Errorf("generating report: %w", err)
	}
	return nil
}
