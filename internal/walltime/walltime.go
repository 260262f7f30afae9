// Package walltime provides the coarse system-clock timestamp used as
// the baseline in the clock-source benchmarks. For monotonic
// high-resolution measurement use internal/hrtimer instead.
package walltime

import "time"

// Now returns the current wall-clock time as nanoseconds since the
// Unix epoch. Each call goes through the OS system clock; unlike the
// hrtimer tick source it is subject to clock adjustments and carries
// full syscall-path overhead.
func Now() uint64 {
	return uint64(time.Now().UnixNano())
}
