package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/hrtimer"
	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/stats"
	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/walltime"
)

// sinkTimestamp receives the last loop value so the compiler cannot
// eliminate the benchmark loops as dead code.
var sinkTimestamp uint64

// runSyscallBench measures the per-call cost of the OS system clock.
func runSyscallBench(opts *RootOptions, w io.Writer) error {
	fmt.Fprintf(w, "\n---------- System clock: walltime.Now() ----------\n\n")

	start := walltime.Now()
	var last uint64
	for i := uint64(0); i < opts.Iterations; i++ {
		last = walltime.Now()
	}
	end := walltime.Now()
	sinkTimestamp = last

	logrus.WithField("last", last).Debug("system clock loop finished")

	return writeReport(w, start, end, opts.Iterations)
}

// runHiresBench measures the per-call cost of reading elapsed
// nanoseconds from the hardware-tick timer. The timer (and any
// calibration) is set up before the measured window opens.
func runHiresBench(opts *RootOptions, w io.Writer) error {
	fmt.Fprintf(w, "\n---------- High-resolution timer: CPU ticks ----------\n\n")

	var tm hrtimer.Timer
	if opts.FrequencyHz > 0 {
		tm = hrtimer.StartWithFrequency(opts.FrequencyHz)
	} else {
		tm = hrtimer.Start()
	}
	logrus.WithFields(logrus.Fields{
		"tick_hz":    tm.Frequency(),
		"calibrated": opts.FrequencyHz == 0,
	}).Debug("tick frequency resolved")

	start := walltime.Now()
	var last uint64
	for i := uint64(0); i < opts.Iterations; i++ {
		last = tm.ElapsedNanoseconds()
	}
	end := walltime.Now()
	sinkTimestamp = last

	logrus.WithField("last", last).Debug("high-resolution timer loop finished")

	return writeReport(w, start, end, opts.Iterations)
}

func writeReport(w io.Writer, startNS, endNS, loops uint64) error {
	r, err := stats.New(startNS, endNS, loops)
	if err != nil {
		return err
	}
	r.Write(w)
	return nil
}
