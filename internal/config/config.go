package config

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"

	"github.com/guimove/stochpack/internal/model"
	"github.com/guimove/stochpack/internal/simulation"
)

// Config is the top-level configuration for stochpack.
type Config struct {
	Instance  InstanceConfig  `mapstructure:"instance" yaml:"instance"`
	Objective ObjectiveConfig `mapstructure:"objective" yaml:"objective"`
	Sampling  SamplingConfig  `mapstructure:"sampling" yaml:"sampling"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Metrics   MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
}

type InstanceConfig struct {
	Items     int   `mapstructure:"items" yaml:"items" validate:"gt=0"`
	Bins      int   `mapstructure:"bins" yaml:"bins" validate:"gt=0"`
	Scenarios int   `mapstructure:"scenarios" yaml:"scenarios" validate:"gt=0"`
	Seed      int64 `mapstructure:"seed" yaml:"seed"`
}

type ObjectiveConfig struct {
	Percentile float64 `mapstructure:"percentile" yaml:"percentile" validate:"gte=0,lte=1"`
	Penalty    float64 `mapstructure:"penalty" yaml:"penalty" validate:"gte=0"`
}

type SamplingConfig struct {
	Samples     int `mapstructure:"samples" yaml:"samples" validate:"gt=0"`
	Parallelism int `mapstructure:"parallelism" yaml:"parallelism" validate:"gte=0"` // 0 = NumCPU
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=table json markdown yaml"`
	TopN   int    `mapstructure:"top_n" yaml:"top_n"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Instance: InstanceConfig{
			Items:     50,
			Bins:      5,
			Scenarios: 20,
			Seed:      42,
		},
		Objective: ObjectiveConfig{
			Percentile: 0.9,
			Penalty:    1e6,
		},
		Sampling: SamplingConfig{
			Samples:     100,
			Parallelism: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Format: "table",
			TopN:   5,
		},
	}
}

var validate = validator.New()

// Validate checks the config for consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	// A penalty below the heaviest possible bin load no longer separates
	// infeasible candidates from feasible ones.
	maxWeight := simulation.MinItemWeightHigh + simulation.MaxItemSpread
	if worst := float64(c.Instance.Items * maxWeight); c.Objective.Penalty > 0 && c.Objective.Penalty <= worst {
		return fmt.Errorf("penalty %v does not dominate the worst feasible load %v for %d items",
			c.Objective.Penalty, worst, c.Instance.Items)
	}
	if c.Sampling.Parallelism == 0 {
		c.Sampling.Parallelism = runtime.NumCPU()
	}
	if c.Output.TopN <= 0 {
		c.Output.TopN = 5
	}
	return nil
}

// Params returns the instance construction parameters.
func (c Config) Params() model.InstanceParams {
	return model.InstanceParams{
		Items:     c.Instance.Items,
		Bins:      c.Instance.Bins,
		Scenarios: c.Instance.Scenarios,
		Seed:      c.Instance.Seed,
	}
}
