package channel

import (
	"fmt"
	"math"
	"math/cmplx"
)

/*
 * Carrier Frequency Offset
 *
 * Simulates an SSB tuning error: every spectral component shifts by the
 * same amount, which a decoder sees as a wholesale color/level shift.
 * The shift is done by rotating the analytic signal with a complex
 * exponential and keeping the real part.
 */

// FrequencyOffset shifts the spectrum of w by offsetHz. An offset of
// 0 Hz reproduces the input to within FFT round-off.
func FrequencyOffset(w []float64, offsetHz, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("channel: sample rate must be positive, got %g", sampleRate)
	}
	if math.IsNaN(offsetHz) || math.IsInf(offsetHz, 0) {
		return nil, fmt.Errorf("channel: offset must be finite, got %g", offsetHz)
	}

	analytic := analyticSignal(w)

	out := make([]float64, len(w))
	for i, a := range analytic {
		t := float64(i) / sampleRate
		rot := cmplx.Exp(complex(0, 2.0*math.Pi*offsetHz*t))
		out[i] = real(a * rot)
	}
	return out, nil
}
