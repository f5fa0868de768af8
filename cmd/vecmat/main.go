package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "vecmat"
	version = "v0.1.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. Split out of main for tests.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Evaluate vector and matrix workloads",
		Version: version,
		Long: `vecmat runs vector and matrix jobs described in YAML workload files.

Each job names an op (add, sub, dot, cross, mul, equal), two operands and an
optional expectation. 'vecmat selftest' runs the built-in reference workload.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setLogLevel(cmd)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("fail-fast", false, "Stop at the first failing job")

	rootCmd.AddCommand(newSelfTestCmd(), newRunCmd())

	return rootCmd
}

func setLogLevel(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	log.Logger = log.Logger.Level(level)

	return nil
}
