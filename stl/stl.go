// Package stl implements seasonal-trend decomposition using Loess (STL).
package stl

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Fit decomposes series into seasonal, trend, and remainder components with
// default parameters. The series must contain at least two full periods.
func Fit(series []float64, period int) (*Result, error) {
	return NewParams().Fit(series, period)
}

// config holds the effective settings for one decomposition after defaulting
// and validation.
type config struct {
	period                                     int
	seasonalLength, trendLength, lowPassLength int
	seasonalDegree, trendDegree, lowPassDegree int
	seasonalJump, trendJump, lowPassJump       int
	innerLoops, outerLoops                     int
}

// decompose runs the STL outer/inner loop, filling season, trend, and rw
// (all length n). The input y is never modified.
func decompose(y []float64, n int, cfg config, rw, season, trend []float64) {
	np := cfg.period
	for i := range trend {
		trend[i] = 0.0
	}
	work := make([][]float64, 5)
	for i := range work {
		work[i] = make([]float64, n+2*np)
	}

	userw := false
	for k := 0; ; k++ {
		innerLoop(y, n, cfg, userw, rw, season, trend, work)
		if k >= cfg.outerLoops {
			break
		}
		for i := 0; i < n; i++ {
			work[0][i] = trend[i] + season[i]
		}
		robustnessWeights(y, n, work[0], rw)
		userw = true
	}
	if cfg.outerLoops <= 0 {
		for i := range rw {
			rw[i] = 1.0
		}
	}
}

// innerLoop runs the configured number of inner iterations. Each iteration
// detrends the series, smooths the cycle-subseries, removes the low-pass
// filtered seasonal from it, and re-estimates the trend from the
// deseasonalized series.
func innerLoop(y []float64, n int, cfg config, userw bool, rw, season, trend []float64, work [][]float64) {
	np := cfg.period
	for j := 0; j < cfg.innerLoops; j++ {
		for i := 0; i < n; i++ {
			work[0][i] = y[i] - trend[i]
		}

		// extended seasonal estimate, length n+2*np, in work[1]
		seasonalSmooth(work[0], n, np, cfg.seasonalLength, cfg.seasonalDegree, cfg.seasonalJump,
			userw, rw, work[1], work[2], work[3], work[4], season)

		// low-pass filter the extended seasonal and loess-smooth the result
		lowPass(work[1], n+2*np, np, work[2], work[0])
		ess(work[2], n, cfg.lowPassLength, cfg.lowPassDegree, cfg.lowPassJump, false, work[3], work[0], work[4])

		// trim the extrapolated ends and subtract the low-pass component
		for i := 0; i < n; i++ {
			season[i] = work[1][np+i] - work[0][i]
		}

		for i := 0; i < n; i++ {
			work[0][i] = y[i] - season[i]
		}
		ess(work[0], n, cfg.trendLength, cfg.trendDegree, cfg.trendJump, userw, rw, trend, work[2])
	}
}

// robustnessWeights fills rw with bisquare weights computed from the absolute
// residuals of fit, using scale h = 6*median(|y - fit|). Residuals at or
// beyond the scale get weight zero.
func robustnessWeights(y []float64, n int, fit, rw []float64) {
	for i := 0; i < n; i++ {
		rw[i] = math.Abs(y[i] - fit[i])
	}
	med, err := stats.Median(rw[:n])
	if err != nil {
		med = 0
	}
	h := 6.0 * med
	h9 := 0.999 * h
	h1 := 0.001 * h
	for i := 0; i < n; i++ {
		r := math.Abs(y[i] - fit[i])
		switch {
		case r <= h1:
			rw[i] = 1.0
		case r <= h9:
			u := r / h
			b := 1.0 - u*u
			rw[i] = b * b
		default:
			rw[i] = 0.0
		}
	}
}
