package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/guimove/stochpack/internal/config"
	"github.com/guimove/stochpack/internal/model"
	"github.com/guimove/stochpack/internal/simulation"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Instance.Items = 8
	cfg.Instance.Bins = 2
	cfg.Instance.Scenarios = 5
	cfg.Sampling.Samples = 10
	cfg.Sampling.Parallelism = 2
	cfg.Output.Format = "json"
	cfg.Output.TopN = 3
	return cfg
}

func newTestOrchestrator(cfg config.Config) (*Orchestrator, *bytes.Buffer) {
	var buf bytes.Buffer
	o := New(cfg, zap.NewNop())
	o.Writer = &buf
	return o, &buf
}

func TestOrchestrator_Sample(t *testing.T) {
	o, buf := newTestOrchestrator(testConfig())

	recs, err := o.Sample(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(recs) != 3 {
		t.Fatalf("expected top 3 recommendations, got %d", len(recs))
	}
	for _, rec := range recs {
		if !rec.Evaluation.Feasible {
			t.Errorf("random sample %s should be feasible", rec.Evaluation.Label)
		}
	}

	var out struct {
		Meta struct {
			Sampler    string `json:"sampler"`
			Candidates int    `json:"candidates"`
		} `json:"meta"`
		Recommendations []model.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON report: %v", err)
	}
	if out.Meta.Sampler != "random-assignment" || out.Meta.Candidates != 10 {
		t.Errorf("unexpected meta: %+v", out.Meta)
	}
	if len(out.Recommendations) != 3 {
		t.Errorf("expected 3 reported recommendations, got %d", len(out.Recommendations))
	}
}

func TestOrchestrator_Evaluate(t *testing.T) {
	cfg := testConfig()
	cfg.Instance.Items = 4
	o, _ := newTestOrchestrator(cfg)

	recs, err := o.Evaluate(context.Background(), []simulation.Candidate{
		{Label: "dup", Partition: model.Partition{{0, 1}, {1, 2, 3}}},
		{Label: "good", Partition: model.Partition{{0, 3}, {1, 2}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if recs[0].Evaluation.Label != "good" || !recs[0].Evaluation.Feasible {
		t.Errorf("expected the feasible candidate first, got %+v", recs[0].Evaluation)
	}
	if recs[1].Evaluation.Objective < simulation.DefaultPenalty {
		t.Errorf("infeasible candidate objective %v should include the penalty", recs[1].Evaluation.Objective)
	}
}

func TestOrchestrator_Generate(t *testing.T) {
	cfg := testConfig()
	cfg.Output.Format = "table"
	o, buf := newTestOrchestrator(cfg)

	summary, err := o.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Distributions) != 8 {
		t.Errorf("expected 8 distributions, got %d", len(summary.Distributions))
	}
	if !strings.Contains(buf.String(), "Instance: 8 items, 2 bins, 5 scenarios") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestOrchestrator_InvalidInstance(t *testing.T) {
	cfg := testConfig()
	cfg.Instance.Bins = 0
	o, _ := newTestOrchestrator(cfg)

	if _, err := o.Sample(context.Background()); err == nil {
		t.Error("expected error for zero bins")
	}
}

func TestOrchestrator_DumpMetrics(t *testing.T) {
	cfg := testConfig()
	o, _ := newTestOrchestrator(cfg)
	if _, err := o.Sample(context.Background()); err != nil {
		t.Fatal(err)
	}

	var disabled bytes.Buffer
	if err := o.DumpMetrics(&disabled); err != nil {
		t.Fatal(err)
	}
	if disabled.Len() != 0 {
		t.Error("metrics should not be written when disabled")
	}

	o.Config.Metrics.Enabled = true
	var enabled bytes.Buffer
	if err := o.DumpMetrics(&enabled); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(enabled.String(), `stochpack_evaluations_total{feasible="true"} 10`) {
		t.Errorf("unexpected metrics dump:\n%s", enabled.String())
	}
}
