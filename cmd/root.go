package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/guimove/stochpack/internal/config"
	"github.com/guimove/stochpack/internal/logging"
)

var (
	cfgFile string
	cfg     config.Config
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "stochpack",
	Short: "Stochastic bin-packing instance generator and risk-aware evaluator",
	Long: `stochpack generates random stochastic bin-packing instances and scores
candidate partitions by the 90th percentile of the heaviest bin load across
sampled weight scenarios. Candidates that are not an exact partition of the
items are penalized rather than rejected.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: stochpack.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	// Global flags that map to config
	rootCmd.PersistentFlags().Int("items", 0, "number of items")
	rootCmd.PersistentFlags().Int("bins", 0, "number of bins")
	rootCmd.PersistentFlags().Int("scenarios", 0, "number of weight scenarios")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed for instance generation")
	rootCmd.PersistentFlags().Float64("percentile", 0, "objective percentile (0.0-1.0)")
	rootCmd.PersistentFlags().String("output", "", "output format: table, json, markdown, yaml")
	rootCmd.PersistentFlags().Bool("metrics", false, "print Prometheus metrics after the run")

	bindFlag("instance.items", "items")
	bindFlag("instance.bins", "bins")
	bindFlag("instance.scenarios", "scenarios")
	bindFlag("instance.seed", "seed")
	bindFlag("objective.percentile", "percentile")
	bindFlag("output.format", "output")
	bindFlag("metrics.enabled", "metrics")
}

func bindFlag(key, flag string) {
	_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
}

func loadConfig() error {
	// Start with defaults
	cfg = config.Default()
	setDefaults(cfg)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stochpack")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.stochpack")
	}

	// Environment variable overrides
	viper.SetEnvPrefix("STOCHPACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (not an error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return cfg.Validate()
}

// setDefaults registers defaults so unchanged flags do not override them.
func setDefaults(d config.Config) {
	viper.SetDefault("instance.items", d.Instance.Items)
	viper.SetDefault("instance.bins", d.Instance.Bins)
	viper.SetDefault("instance.scenarios", d.Instance.Scenarios)
	viper.SetDefault("instance.seed", d.Instance.Seed)
	viper.SetDefault("objective.percentile", d.Objective.Percentile)
	viper.SetDefault("objective.penalty", d.Objective.Penalty)
	viper.SetDefault("sampling.samples", d.Sampling.Samples)
	viper.SetDefault("sampling.parallelism", d.Sampling.Parallelism)
	viper.SetDefault("output.format", d.Output.Format)
	viper.SetDefault("output.top_n", d.Output.TopN)
	viper.SetDefault("metrics.enabled", d.Metrics.Enabled)
}
