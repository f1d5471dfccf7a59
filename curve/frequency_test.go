package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCosine generates n uniformly spaced samples of
// a*cos(2*pi*f*x + phi) + b starting at x = 0.
func sampleCosine(n int, dx, a, f, phi, b float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(i) * dx
		y[i] = a*math.Cos(2*math.Pi*f*x[i]+phi) + b
	}
	return x, y
}

func TestEstimateFrequencyPureCosine(t *testing.T) {
	const (
		n  = 100
		dx = 0.01
	)
	binWidth := 1 / (n * dx)

	cases := []struct {
		name      string
		amp, freq float64
		phi, off  float64
	}{
		{"five cycles", 1.0, 5.0, 0, 0},
		{"three cycles with offset", 0.4, 3.0, 0.3, 1.2},
		{"eight cycles negative amp", -2.0, 8.0, -1.1, 0.5},
		{"off-bin frequency", 1.0, 12.5, 0.7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := sampleCosine(n, dx, tc.amp, tc.freq, tc.phi, tc.off)
			got := EstimateFrequency(x, y)
			assert.InDelta(t, tc.freq, got, binWidth)
		})
	}
}

func TestEstimateFrequencyConstantSignal(t *testing.T) {
	x := make([]float64, 50)
	y := make([]float64, 50)
	for i := range x {
		x[i] = float64(i) * 0.02
		y[i] = 0.75
	}
	assert.Zero(t, EstimateFrequency(x, y))
}

func TestEstimateFrequencyNeverNegative(t *testing.T) {
	x, y := sampleCosine(64, 0.05, 1.5, 4.0, 0.2, -0.3)
	assert.GreaterOrEqual(t, EstimateFrequency(x, y), 0.0)
}

func TestEstimateFrequencyTwoSamples(t *testing.T) {
	// Too short for any spectral content; must resolve to 0, not panic
	assert.Zero(t, EstimateFrequency([]float64{0, 1}, []float64{0.2, 0.8}))
}

func TestFallbackFrequencySingleMinimum(t *testing.T) {
	// A single dip well inside the window: the first minimum is read as half
	// a period from the origin. The 5.03 offset keeps the smoothed minimum
	// off a two-sample tie.
	n := 100
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * 0.1
		y[i] = (x[i] - 5.03) * (x[i] - 5.03)
	}

	got := fallbackFrequency(x, y)
	require.NotZero(t, got)
	assert.InDelta(t, 1/(2*x[51]), got, 1e-12)
}

func TestFallbackFrequencyNoMinimum(t *testing.T) {
	// Monotone signal has no interior local minimum
	n := 40
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i) * 0.5
	}
	assert.Zero(t, fallbackFrequency(x, y))
}

func TestSmoothTwoTap(t *testing.T) {
	got := smoothTwoTap([]float64{2, 4, 6, 8})
	assert.Equal(t, []float64{1, 3, 5, 7}, got)
}

func TestLocalMinima(t *testing.T) {
	t.Run("finds interior dips", func(t *testing.T) {
		y := []float64{5, 1, 5, 5, 0, 5, 5}
		assert.Equal(t, []int{1, 4}, localMinima(y, 1))
	})

	t.Run("endpoints never qualify", func(t *testing.T) {
		y := []float64{0, 5, 5, 5, 1}
		assert.Empty(t, localMinima(y, 1))
	})

	t.Run("ties are not strict minima", func(t *testing.T) {
		y := []float64{5, 2, 2, 5}
		assert.Empty(t, localMinima(y, 1))
	})

	t.Run("wide order suppresses shallow dips", func(t *testing.T) {
		// The shallow dip at 6 sees the deeper dip at 2 inside its window
		y := []float64{9, 9, 1, 9, 9, 9, 3, 9, 9}
		assert.Equal(t, []int{2}, localMinima(y, 4))
		assert.Equal(t, []int{2, 6}, localMinima(y, 2))
	})
}
