// Package stats computes and renders elapsed-vs-loop-count statistics
// for the benchmark commands.
package stats

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// ErrEndBeforeStart is returned when a report's end timestamp precedes
// its start timestamp.
var ErrEndBeforeStart = errors.New("stats: end time must be after start time")

// Report holds one benchmark run: a start and end timestamp in
// nanoseconds and the number of loop iterations between them.
type Report struct {
	StartNS   uint64
	EndNS     uint64
	LoopCount uint64
}

// New validates the timestamps and builds a Report.
func New(startNS, endNS, loopCount uint64) (Report, error) {
	if endNS < startNS {
		return Report{}, fmt.Errorf("%w: start=%d end=%d", ErrEndBeforeStart, startNS, endNS)
	}
	return Report{StartNS: startNS, EndNS: endNS, LoopCount: loopCount}, nil
}

// ElapsedNS returns the total measured time in nanoseconds.
func (r Report) ElapsedNS() uint64 {
	return r.EndNS - r.StartNS
}

// NsPerCall returns the mean cost of one iteration in nanoseconds, or
// 0 if the loop count is zero.
func (r Report) NsPerCall() float64 {
	if r.LoopCount == 0 {
		return 0
	}
	return float64(r.ElapsedNS()) / float64(r.LoopCount)
}

// Write renders the report as a table. Per-call time is shown as a
// whole number of nanoseconds when at least 1, otherwise as a
// fractional value so sub-nanosecond costs stay visible.
func (r Report) Write(w io.Writer) {
	perCall := "N/A (loop count is 0)"
	if r.LoopCount > 0 {
		whole := r.ElapsedNS() / r.LoopCount
		if whole == 0 {
			perCall = fmt.Sprintf("%.3f ns", r.NsPerCall())
		} else {
			perCall = fmt.Sprintf("%d ns", whole)
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Time consumed", fmt.Sprintf("%d ns", r.ElapsedNS())})
	table.Append([]string{"Loop count", strconv.FormatUint(r.LoopCount, 10)})
	table.Append([]string{"Time per call", perCall})

	table.Render()
}
