package retry_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teenjuna/again/random"
	"github.com/teenjuna/again/retry"
)

func TestExponential(t *testing.T) {
	const base = time.Millisecond

	run(t, "First attempt", func(t *testing.T) {
		s := retry.Exponential(base)
		seen := make(map[time.Duration]bool)
		for range SAMPLES {
			d := s.Delay(1)
			require.Contains(t, []time.Duration{0, base}, d)
			seen[d] = true
		}
		require.Len(t, seen, 2)
	})

	run(t, "Second attempt", func(t *testing.T) {
		s := retry.Exponential(base)
		seen := make(map[time.Duration]bool)
		for range SAMPLES {
			d := s.Delay(2)
			require.Contains(t, []time.Duration{0, base, 2 * base, 3 * base}, d)
			seen[d] = true
		}
		require.Len(t, seen, 4)
	})

	run(t, "First attempts use the injected source", func(t *testing.T) {
		src := &stubSource{ints: []int{1, 0, 3, 2}}
		s := retry.Exponential(base).WithRandom(src)
		require.Equal(t, base, s.Delay(1))
		require.Zero(t, s.Delay(1))
		require.Equal(t, 3*base, s.Delay(2))
		require.Equal(t, 2*base, s.Delay(2))
	})

	run(t, "Later attempts", func(t *testing.T) {
		s := retry.Exponential(base).WithRandom(random.New(1))
		for n := 3; n <= 40; n++ {
			upper := time.Duration((math.Exp2(float64(min(n, 32))) - 1) * float64(base))
			for range SAMPLES / 10 {
				d := s.Delay(n)
				require.GreaterOrEqual(t, d, time.Duration(0))
				require.LessOrEqual(t, d, upper)
			}
		}
	})

	run(t, "Window is clamped", func(t *testing.T) {
		src := &stubSource{fractions: []float64{1}}
		s := retry.Exponential(base).WithRandom(src)
		maximum := time.Duration((math.Exp2(32) - 1) * float64(base))
		require.Equal(t, maximum, s.Delay(32))
		require.Equal(t, maximum, s.Delay(33))
		require.Equal(t, maximum, s.Delay(math.MaxInt32))
	})

	run(t, "Continuous multiplier", func(t *testing.T) {
		src := &stubSource{fractions: []float64{0.5}}
		s := retry.Exponential(time.Second).WithRandom(src)
		require.Equal(t, time.Duration(3.5*float64(time.Second)), s.Delay(3))
	})

	run(t, "Saturates on overflow", func(t *testing.T) {
		src := &stubSource{fractions: []float64{1}}
		s := retry.Exponential(time.Hour).WithRandom(src)
		require.Equal(t, time.Duration(math.MaxInt64), s.Delay(32))
	})

	run(t, "With invalid base", func(t *testing.T) {
		require.PanicsWithValue(t, "base can't be < 0", func() {
			_ = retry.Exponential(-1)
		})
	})

	run(t, "With invalid random", func(t *testing.T) {
		require.PanicsWithValue(t, "random can't be nil", func() {
			_ = retry.Exponential(base).WithRandom(nil)
		})
	})
}
