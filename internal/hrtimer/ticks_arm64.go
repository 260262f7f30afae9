//go:build arm64 && (linux || darwin)

package hrtimer

// cntvct reads the virtual counter-timer register (CNTVCT_EL0). The
// register is access-ordered relative to adjacent instructions on the
// targeted implementations, so no explicit fence is needed.
// Implemented in ticks_arm64.s.
//
//go:noescape
func cntvct() uint64

// cntfrq reads the counter-timer frequency register (CNTFRQ_EL0),
// exact by architectural contract. Implemented in ticks_arm64.s.
//
//go:noescape
func cntfrq() uint64

func readTicks() uint64 {
	return cntvct()
}

// tickFrequency queries the hardware directly rather than hardcoding a
// per-SoC constant; firmware that leaves CNTFRQ_EL0 unprogrammed reads
// as zero and is clamped to the fallback by Frequency.
func tickFrequency() uint64 {
	return cntfrq()
}
