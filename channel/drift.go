package channel

import (
	"fmt"
	"math"
)

/*
 * Timing Drift
 *
 * Simulates a clock-rate mismatch between transmitter and receiver,
 * the classic cause of slanted SSTV pictures. The waveform is
 * resampled onto a uniformly stretched/compressed index grid with
 * linear interpolation; positive ppm lengthens the signal.
 */

// TimingDrift resamples w as if its clock ran off by ppm parts per
// million. A drift of 0 ppm returns an exact copy.
func TimingDrift(w []float64, ppm float64) ([]float64, error) {
	if math.IsNaN(ppm) || math.IsInf(ppm, 0) {
		return nil, fmt.Errorf("channel: drift must be finite, got %g", ppm)
	}

	n := len(w)
	if ppm == 0 {
		out := make([]float64, n)
		copy(out, w)
		return out, nil
	}

	outN := int(float64(n) * (1.0 + ppm/1e6))
	if outN < 2 {
		return nil, fmt.Errorf("channel: drift of %g ppm leaves %d samples, need at least 2", ppm, outN)
	}

	// Evenly spaced positions spanning [0, n-1], outN points.
	out := make([]float64, outN)
	step := float64(n-1) / float64(outN-1)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= n-1 {
			out[i] = w[n-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = w[j]*(1.0-frac) + w[j+1]*frac
	}
	return out, nil
}
