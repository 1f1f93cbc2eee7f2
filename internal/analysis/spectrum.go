// Package analysis provides frequency-domain views of recorded runs.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |FFT|^2 of the series, zero-padded to the next
// power of two. Only the first half of the returned slice carries
// distinct frequencies.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}

	n := 1
	for n < len(series) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, series)

	coeffs := fft.FFTReal(padded)

	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		a := cmplx.Abs(coeffs[i])
		ps[i] = a * a
	}
	return ps
}

// DominantBin returns the index of the strongest non-DC bin, or 0 when
// the spectrum is flat. Convert to hertz with bin*sampleRate/nfft.
func DominantBin(ps []float64) int {
	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	return maxIdx
}
