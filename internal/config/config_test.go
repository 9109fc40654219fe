package config

import (
	"runtime"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidate_InvalidInstance(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero items", func(c *Config) { c.Instance.Items = 0 }},
		{"negative bins", func(c *Config) { c.Instance.Bins = -1 }},
		{"zero scenarios", func(c *Config) { c.Instance.Scenarios = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_InvalidPercentile(t *testing.T) {
	cfg := Default()
	cfg.Objective.Percentile = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for percentile > 1.0")
	}

	cfg.Objective.Percentile = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative percentile")
	}
}

func TestValidate_PenaltyMustDominate(t *testing.T) {
	cfg := Default()
	cfg.Objective.Penalty = 1000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for a penalty below the worst feasible load")
	}

	cfg.Objective.Penalty = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("a zero penalty disables the check, got %v", err)
	}
}

func TestValidate_InvalidSamples(t *testing.T) {
	cfg := Default()
	cfg.Sampling.Samples = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero samples")
	}
}

func TestValidate_InvalidFormat(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid output format")
	}
}

func TestValidate_FixesZeroes(t *testing.T) {
	cfg := Default()
	cfg.Output.TopN = 0
	cfg.Sampling.Parallelism = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.TopN != 5 {
		t.Errorf("expected TopN to be fixed to 5, got %d", cfg.Output.TopN)
	}
	if cfg.Sampling.Parallelism != runtime.NumCPU() {
		t.Errorf("expected Parallelism to default to NumCPU, got %d", cfg.Sampling.Parallelism)
	}
}

func TestParams(t *testing.T) {
	cfg := Default()
	p := cfg.Params()
	if p.Items != 50 || p.Bins != 5 || p.Scenarios != 20 || p.Seed != 42 {
		t.Errorf("Params() = %+v", p)
	}
}
