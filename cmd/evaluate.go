package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guimove/stochpack/internal/model"
	"github.com/guimove/stochpack/internal/orchestrator"
	"github.com/guimove/stochpack/internal/simulation"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score candidate partitions against an instance",
	Long: `Evaluates one or more candidate partitions. A candidate is a JSON array of
bins, each bin an array of item indices, e.g. [[0,1],[2,3]]. A candidate file
may hold a single candidate or an array of candidates.

Candidates that miss, duplicate, or reference unknown items are still scored,
with a fixed penalty added to their objective.`,
	RunE: runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringArray("candidate", nil, "candidate partition as JSON (repeatable)")
	f.String("candidate-file", "", "path to a JSON file with one or more candidates")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var candidates []simulation.Candidate

	inline, _ := cmd.Flags().GetStringArray("candidate")
	for i, raw := range inline {
		parsed, err := parseCandidates([]byte(raw))
		if err != nil {
			return fmt.Errorf("parsing --candidate #%d: %w", i+1, err)
		}
		candidates = appendCandidates(candidates, fmt.Sprintf("arg-%d", i+1), parsed)
	}

	if path, _ := cmd.Flags().GetString("candidate-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading candidate file: %w", err)
		}
		parsed, err := parseCandidates(data)
		if err != nil {
			return fmt.Errorf("parsing candidate file: %w", err)
		}
		candidates = appendCandidates(candidates, "file", parsed)
	}

	if len(candidates) == 0 {
		return fmt.Errorf("no candidates given: use --candidate or --candidate-file")
	}

	orch := orchestrator.New(cfg, logger)
	if _, err := orch.Evaluate(ctx, candidates); err != nil {
		return err
	}
	return orch.DumpMetrics(os.Stderr)
}

// parseCandidates accepts either a single partition or an array of partitions.
func parseCandidates(data []byte) ([]model.Partition, error) {
	var single model.Partition
	if err := json.Unmarshal(data, &single); err == nil {
		return []model.Partition{single}, nil
	}

	var many []model.Partition
	if err := json.Unmarshal(data, &many); err != nil {
		return nil, fmt.Errorf("expected [[items...], ...] or [[[items...], ...], ...]: %w", err)
	}
	return many, nil
}

func appendCandidates(dst []simulation.Candidate, prefix string, parts []model.Partition) []simulation.Candidate {
	for i, p := range parts {
		label := prefix
		if len(parts) > 1 {
			label = fmt.Sprintf("%s-%d", prefix, i+1)
		}
		dst = append(dst, simulation.Candidate{Label: label, Partition: p})
	}
	return dst
}
