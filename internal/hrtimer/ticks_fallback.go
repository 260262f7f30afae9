//go:build !windows && !((amd64 || arm64) && (linux || darwin))

package hrtimer

// Unsupported platform: the tick source reads a constant zero and the
// frequency is a fixed constant, so every timer reports zero elapsed
// time. A deterministic, documented degradation rather than a crash or
// a silently wrong measurement.

func readTicks() uint64 {
	return 0
}

func tickFrequency() uint64 {
	return fallbackHz
}
