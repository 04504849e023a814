package mstl

import "github.com/sartorproj/gostl/stl"

// Result holds the components of an MSTL decomposition: one seasonal
// component per requested period, in the caller's period order, plus a
// shared trend and remainder. The sum of all components reproduces the
// (possibly Box-Cox transformed) input within floating point tolerance.
type Result struct {
	seasonal  [][]float64
	trend     []float64
	remainder []float64
}

// Seasonal returns the seasonal components, one per period in the caller's
// order. The returned slices are views into the result and must not be
// modified.
func (r *Result) Seasonal() [][]float64 {
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

// SeasonalStrength returns the strength of each seasonal component, in the
// caller's period order.
func (r *Result) SeasonalStrength() []float64 {
	strength := make([]float64, len(r.seasonal))
	for i, s := range r.seasonal {
		strength[i] = stl.Strength(s, r.remainder)
	}
	return strength
}

// TrendStrength returns the strength of the trend component.
func (r *Result) TrendStrength() float64 {
	return stl.Strength(r.trend, r.remainder)
}

// Decompose returns the seasonal components, trend, and remainder. The
// returned slices are the result's backing storage; the Result should not be
// used afterwards.
func (r *Result) Decompose() (seasonal [][]float64, trend, remainder []float64) {
	return r.seasonal, r.trend, r.remainder
}
