// Package mstl implements multiple seasonal-trend decomposition using Loess (MSTL).
//
// MSTL extends STL to series with more than one seasonal cycle, such as
// hourly data with both daily and weekly patterns. It applies STL to each
// requested period, smallest first, each time on a working series with the
// other periods' seasonal estimates removed, refines the estimates over
// repeated passes, and returns one seasonal component per period plus a
// shared trend and remainder.
//
// # Basic Usage
//
// Extract daily and weekly cycles from hourly observations:
//
//	result, err := mstl.Fit(values, []int{24, 168})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	daily := result.Seasonal()[0]
//	weekly := result.Seasonal()[1]
//	trend := result.Trend()
//
// Seasonal components come back in the order the periods were given,
// regardless of the ascending order used internally.
//
// # Parameters
//
// Sub-fits share an STL parameter template; a Box-Cox power transform can be
// applied before decomposition to stabilize variance:
//
//	result, err := mstl.NewParams().
//	    StlParams(stl.NewParams().Robust(true)).
//	    Lambda(0.5).
//	    Fit(values, []int{24, 168})
//
// By default each period's seasonal smoother length follows the 7+4i
// convention of R's forecast::mstl; SeasonalLengths overrides it per period.
//
// # Errors
//
// Validation is eager: an empty period list, a period below 2, a lambda
// outside [0, 1], or a series too short for any requested period fails
// before any sub-fit runs, with the same error kinds package stl uses.
//
// # References
//
//   - Bandara, K., Hyndman, R.J., & Bergmeir, C. (2021). MSTL: A
//     Seasonal-Trend Decomposition Algorithm for Time Series with Multiple
//     Seasonal Patterns
package mstl
