// Package hrtimer provides a sub-microsecond elapsed-time measurement
// primitive built on the platform's hardware tick counter.
//
// Tick sources per platform:
//   - Windows: QueryPerformanceCounter
//   - amd64 Linux/macOS: RDTSC bracketed by LFENCE
//   - arm64 Linux/macOS: CNTVCT_EL0
//   - everything else: a constant zero (elapsed time reads as zero)
//
// The tick-to-nanosecond conversion factor is established once per
// process: Windows and arm64 query it from the OS/hardware, amd64
// measures the TSC against CLOCK_MONOTONIC_RAW during a ~10ms busy-wait
// on first use. The calibrated frequency is assumed stable for the
// process lifetime; CPU frequency scaling after calibration is not
// corrected for.
package hrtimer

import (
	"math"
	"math/bits"
	"sync"
	"time"
)

const nanosPerSecond = 1_000_000_000

// fallbackHz is used when the platform cannot report or measure a tick
// frequency. 2.5 GHz is conservative for the zero-tick fallback source,
// where any non-zero value yields the same zero-elapsed result.
const fallbackHz uint64 = 2_500_000_000

var (
	calibrateOnce sync.Once
	tickHz        uint64
)

// Frequency returns the tick frequency of the platform tick source in
// ticks per second. The first call calibrates (blocking ~10ms on amd64
// Linux/macOS); subsequent calls return the cached value. The result is
// always non-zero.
func Frequency() uint64 {
	calibrateOnce.Do(func() {
		tickHz = tickFrequency()
		if tickHz == 0 {
			tickHz = fallbackHz
		}
	})
	return tickHz
}

// Timer measures elapsed time from a start snapshot of the hardware
// tick counter. The zero value is not meaningful; construct with Start
// or StartWithFrequency. Timers are values: copying one copies the
// start snapshot, and independent timers need no synchronization.
type Timer struct {
	startTicks uint64
	hz         uint64
}

// Start begins a measurement. The process-wide frequency is resolved
// before the tick snapshot is taken, so first-use calibration cost does
// not pollute the measured interval.
func Start() Timer {
	hz := Frequency()
	return Timer{startTicks: readTicks(), hz: hz}
}

// StartWithFrequency begins a measurement using an explicit tick
// frequency, skipping calibration. Useful when the frequency has been
// measured ahead of time (e.g. a known 2.8 GHz TSC). A zero hz falls
// back to the calibrated process-wide frequency.
func StartWithFrequency(hz uint64) Timer {
	if hz == 0 {
		hz = Frequency()
	}
	return Timer{startTicks: readTicks(), hz: hz}
}

// ElapsedTicks returns the raw tick delta since Start. The subtraction
// is unsigned and modular, so a counter wraparound still yields the
// correct positive delta.
func (t Timer) ElapsedTicks() uint64 {
	return readTicks() - t.startTicks
}

// ElapsedNanoseconds returns the elapsed wall-clock nanoseconds since
// Start. The conversion uses a 128-bit intermediate so large tick
// deltas at high frequencies do not overflow; division truncates toward
// zero. Successive calls on the same timer return non-decreasing
// values (absent counter wraparound).
func (t Timer) ElapsedNanoseconds() uint64 {
	return scaleTicks(t.ElapsedTicks(), t.hz)
}

// ElapsedMicroseconds returns the elapsed time in microseconds,
// including the fractional part lost to integer nanosecond truncation.
func (t Timer) ElapsedMicroseconds() float64 {
	return float64(t.ElapsedNanoseconds()) / 1e3
}

// ElapsedMilliseconds returns the elapsed time in milliseconds.
func (t Timer) ElapsedMilliseconds() float64 {
	return float64(t.ElapsedNanoseconds()) / 1e6
}

// Elapsed returns the elapsed time as a time.Duration.
func (t Timer) Elapsed() time.Duration {
	return time.Duration(t.ElapsedNanoseconds())
}

// Frequency returns the tick frequency this timer converts with.
func (t Timer) Frequency() uint64 {
	return t.hz
}

// scaleTicks converts a tick delta to nanoseconds: delta * 1e9 / hz
// with a 128-bit intermediate product. Returns 0 for a zero frequency
// (must never reach the divide) and saturates to MaxUint64 when the
// quotient does not fit in 64 bits.
func scaleTicks(delta, hz uint64) uint64 {
	if hz == 0 {
		return 0
	}
	hi, lo := bits.Mul64(delta, nanosPerSecond)
	if hi >= hz {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, hz)
	return q
}

// ticksPerSecond derives a tick frequency from a calibration window:
// tickDelta ticks observed over nsDelta nanoseconds. A zero or
// implausibly small window falls back to fallbackHz rather than
// dividing by zero or overflowing.
func ticksPerSecond(tickDelta, nsDelta uint64) uint64 {
	if nsDelta == 0 {
		return fallbackHz
	}
	hi, lo := bits.Mul64(tickDelta, nanosPerSecond)
	if hi >= nsDelta {
		// Quotient exceeds 64 bits; no real clock runs that fast.
		return fallbackHz
	}
	q, _ := bits.Div64(hi, lo, nsDelta)
	if q == 0 {
		return fallbackHz
	}
	return q
}
