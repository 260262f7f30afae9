//go:build windows

package hrtimer

import "golang.org/x/sys/windows"

// readTicks reads the performance counter. QPC cannot fail on any
// supported Windows version, and its signed result is reinterpreted as
// an unsigned tick value.
func readTicks() uint64 {
	return uint64(windows.QueryPerformanceCounter())
}

// tickFrequency queries the performance counter frequency. The value is
// fixed at boot and exact; no empirical calibration is needed. A
// non-positive result means the counter is unusable, which has no
// meaningful partial recovery.
func tickFrequency() uint64 {
	freq := windows.QueryPerformanceFrequency()
	if freq <= 0 {
		panic("hrtimer: QueryPerformanceFrequency returned a non-positive frequency")
	}
	return uint64(freq)
}
