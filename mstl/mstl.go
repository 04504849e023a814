// Package mstl implements multiple seasonal-trend decomposition using Loess (MSTL).
package mstl

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gostl/stl"
)

// Fit decomposes series into one seasonal component per period plus a shared
// trend and remainder, with default parameters. Seasonal components are
// returned in the caller's period order.
func Fit(series []float64, periods []int) (*Result, error) {
	return NewParams().Fit(series, periods)
}

// decompose runs STL per period, smallest first, on a working series with
// the other periods' current seasonal estimates removed, repeating the
// sweep for the requested number of refinement passes. periods must be
// sorted ascending and already validated; lengths, when non-nil, holds one
// seasonal smoother length per period in the same order.
//
// The trend comes from the final sub-fit (the largest period on the last
// pass) and the remainder is the working series minus that trend.
func decompose(series []float64, periods []int, iterations int, lambda *float64, lengths []int, template *stl.Params) ([][]float64, []float64, []float64, error) {
	n := len(series)
	if len(periods) == 1 {
		iterations = 1
	}

	working := make([]float64, n)
	if lambda != nil {
		boxCox(series, *lambda, working)
	} else {
		copy(working, series)
	}

	seasonal := make([][]float64, len(periods))
	var trend []float64

	for pass := 0; pass < iterations; pass++ {
		for i, period := range periods {
			if pass > 0 {
				// restore this period's previous estimate before re-fitting
				floats.Add(working, seasonal[i])
			}

			params := template
			switch {
			case lengths != nil:
				params = template.Clone().SeasonalLength(lengths[i])
			case !template.HasSeasonalLength():
				params = template.Clone().SeasonalLength(7 + 4*(i+1))
			}

			fit, err := params.Fit(working, period)
			if err != nil {
				return nil, nil, nil, err
			}

			s, t, _, _ := fit.Decompose()
			seasonal[i] = s
			trend = t
			floats.Sub(working, s)
		}
	}

	remainder := make([]float64, n)
	floats.SubTo(remainder, working, trend)
	return seasonal, trend, remainder, nil
}
