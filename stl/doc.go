// Package stl implements seasonal-trend decomposition using Loess (STL).
//
// STL decomposes a regularly-sampled time series into three additive
// components: a seasonal component with a fixed period, a smooth trend, and a
// remainder. The algorithm alternates seasonal extraction over
// cycle-subseries, low-pass filtering, and trend smoothing, all built on
// locally weighted polynomial regression (loess). An optional outer loop
// down-weights outliers with bisquare robustness weights.
//
// # Basic Usage
//
// Decompose daily data with a weekly cycle:
//
//	result, err := stl.Fit(values, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	seasonal := result.Seasonal()
//	trend := result.Trend()
//	remainder := result.Remainder()
//
// # Parameters
//
// Smoothing lengths, degrees, and evaluation strides can be tuned through a
// fluent parameter builder; unset fields default from the period:
//
//	result, err := stl.NewParams().
//	    Robust(true).
//	    SeasonalLength(11).
//	    TrendLength(15).
//	    Fit(values, 7)
//
// Larger seasonal lengths give a smoother, slower-changing seasonal pattern;
// larger trend lengths give a flatter trend. Jump parameters trade accuracy
// for speed by evaluating the loess fit only at every k-th position and
// interpolating between.
//
// # Strength
//
// SeasonalStrength and TrendStrength score how much variance a component
// explains relative to the remainder, on a 0 to 1 scale:
//
//	if result.SeasonalStrength() > 0.64 {
//	    // strong seasonality
//	}
//
// # Errors
//
// Fit validates its inputs before any computation and reports failures as
// wrapped sentinel errors: ErrParameter for invalid configuration and
// ErrSeries for data that cannot support the requested period.
//
//	_, err := stl.Fit(short, 16)
//	if errors.Is(err, stl.ErrSeries) {
//	    // need at least two full periods
//	}
//
// # References
//
//   - Cleveland, R.B., Cleveland, W.S., McRae, J.E., & Terpenning, I. (1990).
//     STL: A Seasonal-Trend Decomposition Procedure Based on Loess.
//     Journal of Official Statistics, 6(1), 3-73
package stl
