package channel

import (
	"fmt"
	"math"
)

/*
 * Fading (QSB)
 *
 * Slow signal-strength variation from ionospheric propagation. The
 * waveform is multiplied by a low-frequency sinusoidal envelope:
 *
 *   env(t) = 1 - depth/2 * (1 + sin(2*pi*speed*t))
 *
 * so the signal swings between full strength and (1 - depth).
 */

// Fading applies a sinusoidal amplitude envelope. speedHz is the
// envelope rate, depth in [0, 1] the fraction lost at the deepest
// point. Depth 0 returns the input values unchanged.
func Fading(w []float64, speedHz, depth, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("channel: sample rate must be positive, got %g", sampleRate)
	}
	if depth < 0 || depth > 1 || math.IsNaN(depth) {
		return nil, fmt.Errorf("channel: fading depth must be in [0, 1], got %g", depth)
	}
	if math.IsNaN(speedHz) || math.IsInf(speedHz, 0) {
		return nil, fmt.Errorf("channel: fading speed must be finite, got %g", speedHz)
	}

	out := make([]float64, len(w))
	for i, v := range w {
		t := float64(i) / sampleRate
		env := 1.0 - depth*0.5*(1.0+math.Sin(2.0*math.Pi*speedHz*t))
		out[i] = v * env
	}
	return out, nil
}
