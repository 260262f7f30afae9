//go:build amd64 && (linux || darwin)

package hrtimer

import (
	"time"

	"golang.org/x/sys/unix"
)

// rdtsc reads the CPU's Time Stamp Counter, bracketed by LFENCE on both
// sides so out-of-order execution cannot move surrounding instructions
// across the read. Implemented in ticks_amd64.s.
//
//go:noescape
func rdtsc() uint64

func readTicks() uint64 {
	return rdtsc()
}

// calibrationWindow trades calibration accuracy against startup
// latency: 10ms keeps the relative error from clock-read overhead well
// under 1% while staying invisible at process start.
const calibrationWindow = 10 * time.Millisecond

// tickFrequency measures the TSC rate empirically, since non-Windows
// kernels do not expose it. The TSC is compared against
// CLOCK_MONOTONIC_RAW (unaffected by NTP slewing) across a busy-wait
// window. Frequency scaling after this point is not corrected for.
func tickFrequency() uint64 {
	// Warm up the rdtsc path so the first fenced read is not paying
	// for instruction-cache misses inside the window.
	rdtsc()
	rdtsc()

	nsStart := monotonicNanos()
	tickStart := rdtsc()

	spinWait(calibrationWindow.Nanoseconds())

	nsEnd := monotonicNanos()
	tickEnd := rdtsc()

	return ticksPerSecond(tickEnd-tickStart, uint64(nsEnd-nsStart))
}

// monotonicNanos reads CLOCK_MONOTONIC_RAW. A failing clock_gettime on
// a clock the kernel always provides is a fatal startup condition.
func monotonicNanos() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		panic("hrtimer: clock_gettime(CLOCK_MONOTONIC_RAW): " + err.Error())
	}
	return ts.Nano()
}

// spinWait busy-waits for at least ns nanoseconds, polling the
// monotonic clock. Blocks only the calibrating thread, once per
// process.
func spinWait(ns int64) {
	start := monotonicNanos()
	for monotonicNanos()-start < ns {
	}
}
