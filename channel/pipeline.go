package channel

import (
	"log"
	"math/rand"
	"time"
)

/*
 * Channel Impairment Pipeline
 *
 * Applies the reference impairment chain in a fixed order: timing
 * drift, carrier offset, fading, additive noise, impulse noise, then a
 * hard clip to [-1, 1] so the result survives fixed-width
 * serialization. Every stage is also usable standalone.
 */

// Params configures the pipeline. Drift, offset, fading depth and
// impulse probability of zero disable the corresponding stage; additive
// noise has an explicit enable because 0 dB is a meaningful SNR.
type Params struct {
	DriftPPM           float64
	OffsetHz           float64
	FadingSpeedHz      float64
	FadingDepth        float64
	NoiseEnabled       bool
	SNRdB              float64
	ImpulseProbability float64
	Seed               int64 // 0 picks a time-based seed
}

// Apply runs the full impairment chain over w and returns the clipped
// result. The input slice is not modified.
func Apply(w []float64, p Params, sampleRate float64) ([]float64, error) {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		if p.NoiseEnabled || p.ImpulseProbability != 0 {
			log.Printf("[Channel] No seed configured, using %d", seed)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	out := w
	touched := false
	var err error

	if p.DriftPPM != 0 {
		touched = true
		if out, err = TimingDrift(out, p.DriftPPM); err != nil {
			return nil, err
		}
	}
	if p.OffsetHz != 0 {
		touched = true
		if out, err = FrequencyOffset(out, p.OffsetHz, sampleRate); err != nil {
			return nil, err
		}
	}
	if p.FadingDepth != 0 {
		touched = true
		if out, err = Fading(out, p.FadingSpeedHz, p.FadingDepth, sampleRate); err != nil {
			return nil, err
		}
	}
	if p.NoiseEnabled {
		touched = true
		if out, err = AddNoise(out, p.SNRdB, rng); err != nil {
			return nil, err
		}
	}
	if p.ImpulseProbability != 0 {
		touched = true
		if out, err = ImpulseNoise(out, p.ImpulseProbability, rng); err != nil {
			return nil, err
		}
	}

	if !touched {
		// Every stage was disabled; still hand back a private copy.
		out = make([]float64, len(w))
		copy(out, w)
	}
	return Clip(out), nil
}

// Clip hard-limits every sample to [-1, 1] in place and returns the
// slice.
func Clip(w []float64) []float64 {
	for i, v := range w {
		if v > 1.0 {
			w[i] = 1.0
		} else if v < -1.0 {
			w[i] = -1.0
		}
	}
	return w
}
