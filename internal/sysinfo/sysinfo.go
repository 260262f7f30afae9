// Package sysinfo reports the host environment a benchmark ran on, so
// that recorded numbers can be tied back to an OS and CPU architecture.
package sysinfo

import (
	"io"
	"runtime"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Family classifies the operating system the way benchmark reports
// group it: "windows" or "unix".
func Family() string {
	if runtime.GOOS == "windows" {
		return "windows"
	}
	return "unix"
}

// Report writes an OS and CPU summary table to w.
func Report(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Operating system", runtime.GOOS})
	table.Append([]string{"OS family", Family()})
	table.Append([]string{"Architecture", runtime.GOARCH})
	table.Append([]string{"Logical CPUs", strconv.Itoa(runtime.NumCPU())})
	table.Append([]string{"Go runtime", runtime.Version()})

	table.Render()
}
