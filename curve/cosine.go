// Package curve seeds nonlinear least-squares fits of noisy periodic
// calibration signals. It estimates oscillation frequency from the sampled
// data and generates candidate parameter vectors and bounds for an external
// fitter. All functions are pure and safe for concurrent use.
package curve

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// phaseStarts is the number of phase-swept initial guesses per call
const phaseStarts = 10

// Parameters is one candidate parameter vector for the model
// amplitude*cos(2*pi*frequency*x + phase) + offset.
type Parameters struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Phase     float64 `json:"phase"`
	Offset    float64 `json:"offset"`
}

// Vector returns the parameters in fitter order
// (amplitude, frequency, phase, offset).
func (p Parameters) Vector() []float64 {
	return []float64{p.Amplitude, p.Frequency, p.Phase, p.Offset}
}

// Bound is an inclusive per-parameter fit constraint. Min and Max may be
// infinite for unconstrained parameters.
type Bound struct {
	Min float64
	Max float64
}

// MarshalJSON emits unbounded endpoints as null, since JSON has no
// infinity literal.
func (b Bound) MarshalJSON() ([]byte, error) {
	finite := func(v float64) *float64 {
		if math.IsInf(v, 0) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}{finite(b.Min), finite(b.Max)})
}

// CosineModel describes a single-tone cosine for an external
// nonlinear least-squares fitter: the fit function itself, a family of
// starting parameter vectors, and per-parameter bounds.
type CosineModel struct{}

// Cosine evaluates the model at a single point.
func Cosine(x float64, p Parameters) float64 {
	return p.Amplitude*math.Cos(2*math.Pi*p.Frequency*x+p.Phase) + p.Offset
}

// FitFunction evaluates the model elementwise over x.
func (CosineModel) FitFunction(x []float64, p Parameters) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = Cosine(v, p)
	}
	return out
}

// InitialGuess produces 10 candidate parameter vectors for the fitter.
// Amplitude, frequency and offset are point estimates from the data; phase
// is swept across [-pi, pi] with both endpoints included, because phase is
// the parameter most likely to trap the optimizer in a wrong basin.
//
// Callers must supply at least 2 uniformly spaced samples; shorter input is
// not validated.
func (CosineModel) InitialGuess(x, y []float64) []Parameters {
	mean := stat.Mean(y, nil)

	// Oscillation swing above the DC floor
	maxAbs := 0.0
	for _, v := range y {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	amp := maxAbs - math.Abs(mean)
	freq := math.Max(0, EstimateFrequency(x, y))

	phases := floats.Span(make([]float64, phaseStarts), -math.Pi, math.Pi)
	guesses := make([]Parameters, 0, phaseStarts)
	for _, phi := range phases {
		guesses = append(guesses, Parameters{
			Amplitude: amp,
			Frequency: freq,
			Phase:     phi,
			Offset:    mean,
		})
	}
	return guesses
}

// FitBoundary returns the fixed fitter bounds in parameter order. Frequency
// sign is degenerate with phase, and phase beyond one period is redundant
// under the 2*pi symmetry, so both are constrained; amplitude and offset
// stay free. The sample arrays are accepted to match the fitter callback
// shape and are ignored.
func (CosineModel) FitBoundary(x, y []float64) []Bound {
	return []Bound{
		{Min: math.Inf(-1), Max: math.Inf(1)},
		{Min: 0, Max: math.Inf(1)},
		{Min: -math.Pi, Max: math.Pi},
		{Min: math.Inf(-1), Max: math.Inf(1)},
	}
}
