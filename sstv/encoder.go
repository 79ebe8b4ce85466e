package sstv

import "fmt"

/*
 * Tone Sequence Encoder
 *
 * Maps Y/Cr/Cb planes onto the PD wire protocol: calibration preamble,
 * VIS header, then one sync/porch/YUVY group per pair of image rows.
 * The output is a flat list of (frequency, duration) segments that the
 * synthesizer turns into audio.
 *
 * VIS (Vertical Interval Signaling) header structure:
 *   - 300ms 1900 Hz leader
 *   - 10ms 1200 Hz break
 *   - 300ms 1900 Hz leader
 *   - 30ms 1200 Hz start bit
 *   - 7 x 30ms data bits, LSB first (1100 Hz = 1, 1300 Hz = 0)
 *   - 30ms even parity bit, same encoding
 *   - 30ms 1200 Hz stop bit
 */

// Tone is one segment of the transmission: an instantaneous frequency
// held for a fixed duration.
type Tone struct {
	Freq     float64 // Hz
	Duration float64 // milliseconds
}

// PixelFreq maps a channel value (nominally 0-255) onto the black-white
// frequency band. Monotone in v; values outside 0-255 map outside the
// nominal 1500-2300 Hz range and are not an error.
func PixelFreq(v float64) float64 {
	return FreqBlack + v/255.0*FreqRange
}

// Encode produces the complete tone sequence for one image. The planes
// must match the mode's dimensions exactly; no resizing is done here.
func Encode(mode *ModeSpec, y, cr, cb Plane) ([]Tone, error) {
	for _, p := range []struct {
		name  string
		plane Plane
	}{{"Y", y}, {"Cr", cr}, {"Cb", cb}} {
		if p.plane.Width() != mode.ImgWidth || p.plane.Height() != mode.ImgHeight {
			return nil, fmt.Errorf("sstv: %s plane is %dx%d, %s requires %dx%d",
				p.name, p.plane.Width(), p.plane.Height(),
				mode.ShortName, mode.ImgWidth, mode.ImgHeight)
		}
	}

	// 8 preamble + 13 VIS segments, then sync+porch+4 passes per group.
	count := len(PreambleFreqs) + 13 + mode.NumLineGroups()*(2+4*mode.ImgWidth)
	tones := make([]Tone, 0, count)

	for _, f := range PreambleFreqs {
		tones = append(tones, Tone{f, PreambleToneTime})
	}

	tones = append(tones, visHeader(mode.VIS)...)

	for row := 0; row < mode.ImgHeight; row += 2 {
		tones = append(tones,
			Tone{FreqSync, mode.SyncTime},
			Tone{FreqBlack, mode.PorchTime})

		for col := 0; col < mode.ImgWidth; col++ {
			tones = append(tones, Tone{PixelFreq(y[row][col]), mode.PixelTime})
		}
		for col := 0; col < mode.ImgWidth; col++ {
			avg := (cr[row][col] + cr[row+1][col]) / 2.0
			tones = append(tones, Tone{PixelFreq(avg), mode.PixelTime})
		}
		for col := 0; col < mode.ImgWidth; col++ {
			avg := (cb[row][col] + cb[row+1][col]) / 2.0
			tones = append(tones, Tone{PixelFreq(avg), mode.PixelTime})
		}
		for col := 0; col < mode.ImgWidth; col++ {
			tones = append(tones, Tone{PixelFreq(y[row+1][col]), mode.PixelTime})
		}
	}

	return tones, nil
}

// visHeader builds the 13-segment VIS header for a 7-bit mode code.
func visHeader(vis uint8) []Tone {
	tones := make([]Tone, 0, 13)
	tones = append(tones,
		Tone{FreqLeaderBurst, VISLeaderTime},
		Tone{FreqBreak, VISBreakTime},
		Tone{FreqLeaderBurst, VISLeaderTime},
		Tone{FreqBreak, VISBitTime}) // start bit

	parity := uint8(0)
	for i := 0; i < 7; i++ {
		bit := (vis >> i) & 1
		parity ^= bit
		tones = append(tones, Tone{bitFreq(bit), VISBitTime})
	}

	tones = append(tones,
		Tone{bitFreq(parity), VISBitTime},
		Tone{FreqBreak, VISBitTime}) // stop bit
	return tones
}

func bitFreq(bit uint8) float64 {
	if bit == 1 {
		return FreqLogic1
	}
	return FreqLogic0
}

// TotalDuration returns the summed duration of a tone sequence in
// milliseconds.
func TotalDuration(tones []Tone) float64 {
	total := 0.0
	for _, t := range tones {
		total += t.Duration
	}
	return total
}
