// Package cli implements the timebench command tree.
package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	Verbose bool

	// Iterations is the benchmark loop count.
	Iterations uint64

	// FrequencyHz fixes the tick frequency for the high-resolution
	// timer instead of calibrating. 0 means calibrate.
	FrequencyHz uint64
}

// NewRootCommand creates the timebench root command. With no
// subcommand it runs the full suite: system report, system-clock
// benchmark, high-resolution-timer benchmark.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "timebench",
		Short: "Measure clock-source call costs in nanoseconds",
		Long: `timebench measures how many nanoseconds a single clock read costs by
calling it in a tight loop and dividing elapsed time by loop count.

Two clock sources are compared: the OS system clock (one syscall-path
read per call) and a hardware-tick high-resolution timer (QPC on
Windows, RDTSC on amd64, CNTVCT_EL0 on arm64).

Examples:
  timebench                       run the full suite
  timebench hires -n 1000000      high-resolution timer only
  timebench hires --frequency-hz 2800000000
                                  skip calibration, assume a 2.8 GHz TSC`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(opts, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().Uint64VarP(&opts.Iterations, "iterations", "n", 10_000_000, "benchmark loop count")
	cmd.PersistentFlags().Uint64Var(&opts.FrequencyHz, "frequency-hz", 0, "fixed tick frequency in Hz (0 = calibrate)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewSysinfoCommand(opts))
	cmd.AddCommand(NewSyscallCommand(opts))
	cmd.AddCommand(NewHiresCommand(opts))

	return cmd
}

func runSuite(opts *RootOptions, w io.Writer) error {
	writeSysinfo(w)
	if err := runSyscallBench(opts, w); err != nil {
		return err
	}
	return runHiresBench(opts, w)
}
