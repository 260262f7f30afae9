package hrtimer

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleTicks(t *testing.T) {
	tests := []struct {
		name  string
		delta uint64
		hz    uint64
		want  uint64
	}{
		// 4000 ticks at 4 GHz is exactly 1000ns.
		{"4GHz exact", 5000 - 1000, 4_000_000_000, 1000},
		{"1GHz identity", 123_456_789, 1_000_000_000, 123_456_789},
		// Division truncates toward zero.
		{"truncation", 1, 3_000_000_000, 0},
		{"truncation large", 10_000_000_001, 3_000_000_000, 3_333_333_333},
		{"zero delta", 0, 2_400_000_000, 0},
		// A zero frequency must never reach the divide.
		{"zero frequency guard", 42, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scaleTicks(tt.delta, tt.hz))
		})
	}
}

// The conversion must use a 128-bit intermediate: delta * 1e9 overflows
// uint64 for any delta above ~18.4e9 ticks (a few seconds at GHz
// rates). Cross-check against big.Int arithmetic.
func TestScaleTicksWideIntermediate(t *testing.T) {
	deltas := []uint64{
		1 << 40,
		1 << 62,
		math.MaxUint64 - 1,
	}
	freqs := []uint64{24_000_000, 1_000_000_000, 2_500_000_000, 10_000_000_000}

	for _, d := range deltas {
		for _, hz := range freqs {
			want := new(big.Int).SetUint64(d)
			want.Mul(want, big.NewInt(nanosPerSecond))
			want.Div(want, new(big.Int).SetUint64(hz))

			got := scaleTicks(d, hz)
			if want.IsUint64() {
				assert.Equal(t, want.Uint64(), got,
					"delta=%d hz=%d", d, hz)
			} else {
				assert.Equal(t, uint64(math.MaxUint64), got,
					"delta=%d hz=%d should saturate", d, hz)
			}
		}
	}
}

func TestScaleTicksSaturates(t *testing.T) {
	// At 1 tick/s the quotient exceeds 64 bits for any delta over ~18.
	assert.Equal(t, uint64(math.MaxUint64), scaleTicks(math.MaxUint64, 1))
}

func TestWraparoundDelta(t *testing.T) {
	// Counter wrapped: start near the top, current just past zero.
	// Unsigned modular subtraction must yield the small positive delta.
	start := uint64(math.MaxUint64 - 9)
	current := uint64(5)
	delta := current - start
	require.Equal(t, uint64(15), delta)
	assert.Equal(t, uint64(15), scaleTicks(delta, 1_000_000_000))
}

func TestTicksPerSecond(t *testing.T) {
	// 24M ticks over a perfect 10ms window is a 2.4 GHz TSC.
	got := ticksPerSecond(24_000_000, 10_000_000)
	assert.Equal(t, uint64(2_400_000_000), got)
}

func TestTicksPerSecondWithJitter(t *testing.T) {
	// 24M ticks over a window measured 50µs long (0.5% jitter) must
	// still land within 1% of 2.4 GHz.
	got := ticksPerSecond(24_000_000, 10_050_000)
	assert.InEpsilon(t, 2.4e9, float64(got), 0.01)
}

func TestTicksPerSecondZeroWindow(t *testing.T) {
	// Insufficient clock resolution: fall back, never divide by zero.
	assert.Equal(t, fallbackHz, ticksPerSecond(24_000_000, 0))
}

func TestTicksPerSecondStuckTickSource(t *testing.T) {
	assert.Equal(t, fallbackHz, ticksPerSecond(0, 10_000_000))
}

func TestTicksPerSecondImplausibleRate(t *testing.T) {
	// A rate that would overflow uint64 ticks/sec is a broken
	// measurement, not a real clock.
	assert.Equal(t, fallbackHz, ticksPerSecond(math.MaxUint64, 1))
}

func TestFrequency(t *testing.T) {
	f1 := Frequency()
	f2 := Frequency()
	require.NotZero(t, f1, "calibrated frequency must never be zero")
	assert.Equal(t, f1, f2, "calibration runs once and is cached")
}

func TestStartResolvesFrequencyFirst(t *testing.T) {
	tm := Start()
	assert.Equal(t, Frequency(), tm.Frequency())
}

func TestStartWithFrequency(t *testing.T) {
	tm := StartWithFrequency(2_800_000_000)
	assert.Equal(t, uint64(2_800_000_000), tm.Frequency())

	// Zero falls back to the calibrated process-wide value.
	tm = StartWithFrequency(0)
	assert.Equal(t, Frequency(), tm.Frequency())
}

func TestElapsedMonotonic(t *testing.T) {
	tm := Start()
	prev := tm.ElapsedNanoseconds()
	for i := 0; i < 1000; i++ {
		cur := tm.ElapsedNanoseconds()
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestElapsedAgainstSleep(t *testing.T) {
	if readTicks() == 0 && Frequency() == fallbackHz {
		t.Skip("zero-tick fallback platform reports zero elapsed time")
	}

	tm := Start()
	time.Sleep(10 * time.Millisecond)
	got := tm.ElapsedNanoseconds()

	// Sleep may oversleep substantially under CI load, never by 5s.
	assert.GreaterOrEqual(t, got, uint64(9_000_000))
	assert.Less(t, got, uint64(5_000_000_000))
}

func TestDerivedUnits(t *testing.T) {
	tm := Start()
	time.Sleep(2 * time.Millisecond)

	// Each accessor re-reads the tick source, so values only grow.
	ns := tm.ElapsedNanoseconds()
	us := tm.ElapsedMicroseconds()
	ms := tm.ElapsedMilliseconds()
	d := tm.Elapsed()

	assert.GreaterOrEqual(t, us, float64(ns)/1e3)
	assert.GreaterOrEqual(t, ms*1e3, us*0.99)
	assert.GreaterOrEqual(t, d.Nanoseconds(), int64(ns))
}
