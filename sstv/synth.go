package sstv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
 * Phase-Continuous FM Synthesis
 *
 * A tone sequence is rendered by building a per-sample instantaneous
 * frequency array and integrating it into a single running phase. The
 * phase accumulator is never reset between segments, so the waveform is
 * continuous at every frequency change; restarting the oscillator per
 * segment would put clicks in the audio and tearing in the decode.
 */

// DefaultSampleRate is the synthesis rate in Hz.
const DefaultSampleRate = 44100.0

// DefaultAmplitude leaves headroom for added noise before clipping.
const DefaultAmplitude = 0.8

// Synthesize renders a tone sequence into a sampled waveform. Segment
// boundaries are rounded to sample indices independently and
// monotonically, so the index ranges partition the output with no gaps
// or overlaps and total length is deterministic for a given sequence.
func Synthesize(tones []Tone, sampleRate, amplitude float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sstv: sample rate must be positive, got %g", sampleRate)
	}

	totalMs := 0.0
	for _, t := range tones {
		if t.Duration < 0 {
			return nil, fmt.Errorf("sstv: negative tone duration %g ms", t.Duration)
		}
		totalMs += t.Duration
	}
	totalSamples := int(math.Round(totalMs / 1000.0 * sampleRate))

	// Per-sample phase increment, then a cumulative sum for the phase.
	phase := make([]float64, totalSamples)
	currIdx := 0
	cumMs := 0.0
	for _, t := range tones {
		cumMs += t.Duration
		nextIdx := int(math.Round(cumMs / 1000.0 * sampleRate))
		if nextIdx > totalSamples {
			nextIdx = totalSamples
		}
		delta := 2.0 * math.Pi * t.Freq / sampleRate
		for i := currIdx; i < nextIdx; i++ {
			phase[i] = delta
		}
		if nextIdx > currIdx {
			currIdx = nextIdx
		}
	}
	floats.CumSum(phase, phase)

	wave := make([]float64, totalSamples)
	for i, p := range phase {
		wave[i] = amplitude * math.Sin(p)
	}
	return wave, nil
}
