package sstv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynthesizeSampleCount(t *testing.T) {
	tests := []struct {
		name  string
		tones []Tone
	}{
		{"single tone", []Tone{{1000, 100}}},
		{"two tones", []Tone{{1000, 100}, {2000, 50.5}}},
		{"sub-sample segments", []Tone{{1500, 0.19}, {1900, 0.19}, {2300, 0.19}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wave, err := Synthesize(tt.tones, DefaultSampleRate, DefaultAmplitude)
			require.NoError(t, err)

			want := math.Round(TotalDuration(tt.tones) / 1000.0 * DefaultSampleRate)
			require.InDelta(t, want, float64(len(wave)), 1.0)
		})
	}
}

func TestSynthesizeToneFrequency(t *testing.T) {
	// A 1000 Hz tone for 100ms crosses zero 200 times.
	wave, err := Synthesize([]Tone{{1000, 100}}, 44100, 0.8)
	require.NoError(t, err)

	crossings := 0
	for i := 1; i < len(wave); i++ {
		if (wave[i-1] < 0) != (wave[i] < 0) {
			crossings++
		}
	}
	require.InDelta(t, 200, crossings, 2)
}

func TestSynthesizePhaseContinuity(t *testing.T) {
	// Across a frequency step the sample-to-sample change can never
	// exceed the phase increment of the higher tone. A per-segment
	// oscillator restart would show up as a full-scale jump.
	const rate = 44100.0
	const amp = 0.8
	wave, err := Synthesize([]Tone{{1000, 50}, {2300, 50}, {1100, 50}}, rate, amp)
	require.NoError(t, err)

	maxStep := amp * 2.0 * math.Pi * 2300.0 / rate * 1.001
	for i := 1; i < len(wave); i++ {
		require.LessOrEqual(t, math.Abs(wave[i]-wave[i-1]), maxStep,
			"discontinuity at sample %d", i)
	}
}

func TestSynthesizeAmplitude(t *testing.T) {
	wave, err := Synthesize([]Tone{{1000, 500}}, 44100, 0.8)
	require.NoError(t, err)

	peak := 0.0
	for _, v := range wave {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	require.LessOrEqual(t, peak, 0.8)
	require.Greater(t, peak, 0.79)
}

func TestSynthesizeEmptySequence(t *testing.T) {
	wave, err := Synthesize(nil, 44100, 0.8)
	require.NoError(t, err)
	require.Empty(t, wave)
}

func TestSynthesizeParameterErrors(t *testing.T) {
	_, err := Synthesize([]Tone{{1000, 100}}, 0, 0.8)
	require.Error(t, err)

	_, err = Synthesize([]Tone{{1000, 100}}, -44100, 0.8)
	require.Error(t, err)

	_, err = Synthesize([]Tone{{1000, -5}}, 44100, 0.8)
	require.Error(t, err)
}

func TestSynthesizeDeterministic(t *testing.T) {
	tones := []Tone{{1200, 20}, {1500, 2.08}, {1964, 0.19}}
	a, err := Synthesize(tones, 44100, 0.8)
	require.NoError(t, err)
	b, err := Synthesize(tones, 44100, 0.8)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
