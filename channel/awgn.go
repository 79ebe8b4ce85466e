package channel

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

/*
 * Additive White Gaussian Noise
 *
 * Noise variance is derived from the measured signal power and the
 * requested SNR: noisePowerDb = signalPowerDb - snrDb. Each sample gets
 * an independent zero-mean Gaussian draw.
 */

// ErrZeroSignalPower is returned when the input has zero average power,
// which leaves the SNR-to-variance conversion undefined.
var ErrZeroSignalPower = errors.New("channel: signal power is zero, SNR is undefined")

// AddNoise adds white Gaussian noise sized for the requested
// signal-to-noise ratio in dB.
func AddNoise(w []float64, snrDB float64, rng *rand.Rand) ([]float64, error) {
	if math.IsNaN(snrDB) || math.IsInf(snrDB, 0) {
		return nil, fmt.Errorf("channel: SNR must be finite, got %g", snrDB)
	}
	if len(w) == 0 {
		return nil, ErrZeroSignalPower
	}

	sigPower := floats.Dot(w, w) / float64(len(w))
	if sigPower == 0 {
		return nil, ErrZeroSignalPower
	}

	sigDB := 10.0 * math.Log10(sigPower)
	noisePower := math.Pow(10, (sigDB-snrDB)/10.0)
	sigma := math.Sqrt(noisePower)

	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v + sigma*rng.NormFloat64()
	}
	return out, nil
}
