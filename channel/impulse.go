package channel

import (
	"fmt"
	"math/rand"
)

/*
 * Impulse Noise
 *
 * Atmospheric static and electrical bursts: each sample independently
 * has a small probability of receiving an additive uniform spike in
 * [-1, 1]. The vast majority of samples pass through untouched.
 */

// ImpulseNoise adds random spikes with the given per-sample
// probability.
func ImpulseNoise(w []float64, probability float64, rng *rand.Rand) ([]float64, error) {
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("channel: impulse probability must be in [0, 1], got %g", probability)
	}

	out := make([]float64, len(w))
	copy(out, w)
	for i := range out {
		if rng.Float64() < probability {
			out[i] += 2.0*rng.Float64() - 1.0
		}
	}
	return out, nil
}
