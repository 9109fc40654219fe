package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/guimove/stochpack/internal/orchestrator"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Score random baseline partitions and show the best ones",
	Long: `Draws random partitions (every item assigned to a uniformly chosen bin),
evaluates them concurrently against the instance, and prints the best
candidates ranked by objective.`,
	RunE: runSample,
}

func init() {
	f := sampleCmd.Flags()
	f.Int("samples", 100, "number of random partitions to evaluate")
	f.Int("parallelism", 0, "concurrent evaluations (0 = number of CPUs)")
	f.Int("top", 5, "number of candidates to show")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Apply flag overrides
	if n, _ := cmd.Flags().GetInt("samples"); cmd.Flags().Changed("samples") {
		cfg.Sampling.Samples = n
	}
	if p, _ := cmd.Flags().GetInt("parallelism"); cmd.Flags().Changed("parallelism") {
		cfg.Sampling.Parallelism = p
	}
	if n, _ := cmd.Flags().GetInt("top"); cmd.Flags().Changed("top") {
		cfg.Output.TopN = n
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	orch := orchestrator.New(cfg, logger)
	if _, err := orch.Sample(ctx); err != nil {
		return err
	}
	return orch.DumpMetrics(os.Stderr)
}
