package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"workforce-engine/internal/clock"
	"workforce-engine/internal/config"
	"workforce-engine/internal/engine"
	"workforce-engine/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "workforce-engine",
	Short: "Generate a synthetic employee population and summarize it",
	Long: `workforce-engine produces employee records bounded by a count and an
inclusive age range, then computes workload and age statistics over them.

Input:  {"count": 50, "age": {"min": 18, "max": 60}}
Output: total, workload10..40, averageAge, minAge, maxAge, medianAge,
        medianWorkload, averageWomenWorkload, sortedByWorkload`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, runCmd)
}

// newEngine wires the engine from the loaded config.
func newEngine() *engine.Engine {
	opts := []engine.Option{
		engine.WithClock(clock.System{}),
		engine.WithLogger(logger),
		engine.WithMaxCount(cfg.Generation.MaxCount),
	}
	if cfg.Generation.Seed != nil {
		opts = append(opts, engine.WithSeed(*cfg.Generation.Seed))
	}
	return engine.New(opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
