package cli

import (
	"github.com/spf13/cobra"
)

// NewSyscallCommand creates the syscall benchmark command.
func NewSyscallCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "syscall",
		Short: "Benchmark the OS system clock",
		Long: `Benchmark the per-call cost of reading the OS system clock
(time.Now().UnixNano()) in a tight loop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyscallBench(opts, cmd.OutOrStdout())
		},
	}
}
