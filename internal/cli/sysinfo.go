package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/sysinfo"
)

// NewSysinfoCommand creates the sysinfo command.
func NewSysinfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Print OS and CPU information",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeSysinfo(cmd.OutOrStdout())
			return nil
		},
	}
}

func writeSysinfo(w io.Writer) {
	fmt.Fprintf(w, "\n---------- OS and CPU info ----------\n\n")
	sysinfo.Report(w)
}
