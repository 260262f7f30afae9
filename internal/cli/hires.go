package cli

import (
	"github.com/spf13/cobra"
)

// NewHiresCommand creates the high-resolution timer benchmark command.
func NewHiresCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hires",
		Short: "Benchmark the hardware-tick high-resolution timer",
		Long: `Benchmark the per-call cost of reading elapsed nanoseconds from the
hardware tick counter. The tick frequency is calibrated once before
the measured loop, or fixed with --frequency-hz.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHiresBench(opts, cmd.OutOrStdout())
		},
	}
}
