package channel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImpulseNoiseZeroProbabilityIsIdentity(t *testing.T) {
	w := sine(10000, 1000, 0.8, 44100)
	out, err := ImpulseNoise(w, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, w, out)
}

func TestImpulseNoiseIsAdditiveAndBounded(t *testing.T) {
	w := sine(10000, 1000, 0.8, 44100)
	out, err := ImpulseNoise(w, 1.0, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	changed := 0
	for i := range w {
		d := math.Abs(out[i] - w[i])
		require.LessOrEqual(t, d, 1.0, "spike exceeds [-1, 1] at %d", i)
		if d > 0 {
			changed++
		}
	}
	require.Greater(t, changed, len(w)/2)
}

func TestImpulseNoiseSparse(t *testing.T) {
	// At p = 1e-3 over 100k samples, expect roughly 100 hits; being two
	// orders looser on the bounds keeps this deterministic enough.
	w := make([]float64, 100000)
	for i := range w {
		w[i] = 0.5
	}
	out, err := ImpulseNoise(w, 1e-3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	changed := 0
	for i := range w {
		if out[i] != w[i] {
			changed++
		}
	}
	require.Greater(t, changed, 10)
	require.Less(t, changed, 1000)
}

func TestImpulseNoiseDeterministicWithSeed(t *testing.T) {
	w := sine(5000, 1000, 0.8, 44100)

	a, err := ImpulseNoise(w, 0.01, rand.New(rand.NewSource(17)))
	require.NoError(t, err)
	b, err := ImpulseNoise(w, 0.01, rand.New(rand.NewSource(17)))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestImpulseNoiseParameterErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := ImpulseNoise([]float64{0.1}, -0.5, rng)
	require.Error(t, err)

	_, err = ImpulseNoise([]float64{0.1}, 1.5, rng)
	require.Error(t, err)
}
