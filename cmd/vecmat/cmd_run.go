package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vecmat/internal/workload"
)

func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in reference workload",
		Long:  "Checks vector add/sub/dot/cross and a 3x3 matrix product against known results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := workload.SelfTest()
			if err != nil {
				return err
			}
			if err := runWorkload(cmd, f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Test completed")
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a workload file",
		Long:  "Evaluates every job of a YAML workload file and prints one result line per job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			return runWorkload(cmd, f)
		},
	}
}

// runWorkload executes f and prints "name: result" for each job that produced one.
func runWorkload(cmd *cobra.Command, f *workload.File) error {
	failFast, _ := cmd.Flags().GetBool("fail-fast")
	runner := workload.NewRunner(log.Logger, workload.WithFailFast(failFast))

	rep, err := runner.Run(f)
	out := cmd.OutOrStdout()
	for i, res := range rep.Results {
		if res.Kind == workload.KindNone {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", f.Jobs[i].Name, res)
	}
	if err != nil {
		return fmt.Errorf("%d of %d jobs failed: %w", rep.Failed, len(rep.Results), err)
	}

	return nil
}
