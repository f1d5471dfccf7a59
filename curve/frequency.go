package curve

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// EstimateFrequency returns a best-guess oscillation frequency for the
// signal y sampled at positions x. It picks the dominant peak of the
// positive-frequency half of the spectrum; when the peak sits at DC
// (oscillation period at or beyond the sampling window) it falls back to a
// time-domain half-period heuristic. Degenerate or ambiguous signals
// resolve to 0 rather than an error.
//
// x must be uniformly spaced with at least 2 samples; len(x) == len(y).
func EstimateFrequency(x, y []float64) float64 {
	n := len(x)
	dx := x[1] - x[0]

	// Remove the DC component so the mean doesn't dominate the spectrum
	mean := stat.Mean(y, nil)
	centered := make([]float64, len(y))
	for i, v := range y {
		centered[i] = v - mean
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, centered)

	// Scan the positive-frequency half only. The real transform already
	// folds the mirrored negative bins; stop short of Nyquist to match the
	// first-half-of-bins convention. First maximum wins.
	peak := 0
	peakMag := 0.0
	for i := 0; i < n/2 && i < len(coeffs); i++ {
		if mag := cmplx.Abs(coeffs[i]); mag > peakMag {
			peak, peakMag = i, mag
		}
	}

	guess := float64(peak) / (float64(n) * dx)
	if guess == 0 {
		return fallbackFrequency(x, y)
	}
	return guess
}

// fallbackFrequency estimates the frequency of a signal whose period meets
// or exceeds the sampling window, where the spectral bins cannot resolve the
// oscillation. The signal is smoothed and the first local minimum is treated
// as half a period from the origin, which assumes the cosine starts near its
// maximum at x~0.
func fallbackFrequency(x, y []float64) float64 {
	smoothed := smoothTwoTap(y)
	minima := localMinima(smoothed, len(x)/4)
	if len(minima) == 0 || len(minima) > 4 {
		// Too ambiguous or too noisy to place a half period
		return 0
	}
	return 1 / (2 * x[minima[0]])
}

// smoothTwoTap applies a 0.5/0.5 moving average with same-length output.
// The first sample has no predecessor and is halved.
func smoothTwoTap(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if i == 0 {
			out[0] = 0.5 * v
			continue
		}
		out[i] = 0.5 * (v + y[i-1])
	}
	return out
}

// localMinima returns the indices of samples strictly smaller than every
// other sample within order positions on each side, with the window clamped
// at the edges. The first and last samples never qualify.
func localMinima(y []float64, order int) []int {
	if order < 1 {
		order = 1
	}
	var minima []int
	for i := 1; i < len(y)-1; i++ {
		lo := max(i-order, 0)
		hi := min(i+order, len(y)-1)
		isMin := true
		for j := lo; j <= hi; j++ {
			if j != i && y[j] <= y[i] {
				isMin = false
				break
			}
		}
		if isMin {
			minima = append(minima, i)
		}
	}
	return minima
}
