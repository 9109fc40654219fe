package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/guimove/stochpack/internal/orchestrator"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an instance and print its item weight distributions",
	Long: `Builds the instance described by --items, --bins, --scenarios and --seed
and prints the uniform weight range drawn for every item. The same parameters
always produce the same instance.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	orch := orchestrator.New(cfg, logger)
	if _, err := orch.Generate(ctx); err != nil {
		return err
	}
	return orch.DumpMetrics(os.Stderr)
}
