package stl

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result holds the components of an STL decomposition. All component slices
// have the length of the input series and satisfy
// seasonal[i] + trend[i] + remainder[i] == original[i] within floating point
// tolerance.
type Result struct {
	seasonal  []float64
	trend     []float64
	remainder []float64
	weights   []float64
}

// Seasonal returns the seasonal component. The returned slice is a view into
// the result and must not be modified.
func (r *Result) Seasonal() []float64 {
	return r.seasonal
}

// Trend returns the trend component. The returned slice is a view into the
// result and must not be modified.
func (r *Result) Trend() []float64 {
	return r.trend
}

// Remainder returns the remainder component. The returned slice is a view
// into the result and must not be modified.
func (r *Result) Remainder() []float64 {
	return r.remainder
}

// Weights returns the robustness weights, each in [0, 1]. Non-robust fits
// yield all ones. The returned slice is a view into the result and must not
// be modified.
func (r *Result) Weights() []float64 {
	return r.weights
}

// SeasonalStrength returns the strength of the seasonal component.
func (r *Result) SeasonalStrength() float64 {
	return Strength(r.seasonal, r.remainder)
}

// TrendStrength returns the strength of the trend component.
func (r *Result) TrendStrength() float64 {
	return Strength(r.trend, r.remainder)
}

// Decompose returns the seasonal, trend, remainder, and weight sequences.
// The returned slices are the result's backing storage; the Result should
// not be used afterwards.
func (r *Result) Decompose() (seasonal, trend, remainder, weights []float64) {
	return r.seasonal, r.trend, r.remainder, r.weights
}

// Strength measures how much variance a component explains relative to the
// remainder: max(0, 1 - Var(remainder)/Var(component+remainder)), using
// sample variance. It is zero when the component explains nothing and
// approaches one as the remainder variance becomes negligible.
func Strength(component, remainder []float64) float64 {
	sum := make([]float64, len(component))
	floats.AddTo(sum, component, remainder)
	s := 1.0 - stat.Variance(remainder, nil)/stat.Variance(sum, nil)
	if s < 0 {
		return 0
	}
	return s
}
