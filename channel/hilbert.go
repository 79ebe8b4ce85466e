package channel

import "gonum.org/v1/gonum/dsp/fourier"

/*
 * Analytic Signal Construction
 * Using gonum's FFT implementation
 *
 * Frequency-domain Hilbert transform: forward FFT, double the positive
 * frequencies, zero the negative ones (DC and Nyquist untouched),
 * inverse FFT. The real part of the result is the input, the imaginary
 * part its 90-degree-shifted counterpart.
 */

// analyticSignal returns the complex analytic signal of w.
func analyticSignal(w []float64) []complex128 {
	n := len(w)
	if n == 0 {
		return nil
	}

	fft := fourier.NewCmplxFFT(n)

	buf := make([]complex128, n)
	for i, v := range w {
		buf[i] = complex(v, 0)
	}
	coeffs := fft.Coefficients(nil, buf)

	for i := 1; i < (n+1)/2; i++ {
		coeffs[i] *= 2
	}
	for i := n/2 + 1; i < n; i++ {
		coeffs[i] = 0
	}

	out := fft.Sequence(nil, coeffs)

	// gonum's inverse transform is unnormalized.
	scale := complex(1.0/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}
