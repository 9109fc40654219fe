package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/guimove/stochpack/internal/model"
)

// Recorder collects evaluation and generation metrics in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	Evaluations        *prometheus.CounterVec
	Objective          prometheus.Histogram
	GenerationDuration prometheus.Histogram
	Instances          prometheus.Counter
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stochpack",
			Name:      "evaluations_total",
			Help:      "Candidate partitions evaluated, by feasibility.",
		}, []string{"feasible"}),
		Objective: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stochpack",
			Name:      "objective_value",
			Help:      "Objective values of feasible candidates.",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 12),
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stochpack",
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating scenario weight tables.",
			Buckets:   prometheus.DefBuckets,
		}),
		Instances: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stochpack",
			Name:      "instances_generated_total",
			Help:      "Instances generated.",
		}),
	}

	reg.MustRegister(r.Evaluations, r.Objective, r.GenerationDuration, r.Instances)
	return r
}

// ObserveEvaluation records one evaluation. Infeasible objectives are counted
// but kept out of the histogram so the penalty does not swamp it.
func (r *Recorder) ObserveEvaluation(ev model.Evaluation) {
	r.Evaluations.WithLabelValues(strconv.FormatBool(ev.Feasible)).Inc()
	if ev.Feasible {
		r.Objective.Observe(ev.Objective)
	}
}

// ObserveGeneration records the time taken to build one instance.
func (r *Recorder) ObserveGeneration(d time.Duration) {
	r.Instances.Inc()
	r.GenerationDuration.Observe(d.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Dump writes every collected metric to w in the Prometheus text format.
func (r *Recorder) Dump(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
