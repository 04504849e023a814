// Package gostl provides seasonal-trend decomposition of time series using
// Loess (STL) and its multi-seasonal extension (MSTL).
//
// GoSTL decomposes a regularly-sampled series into additive components: one
// or more seasonal components, a trend component, and a remainder. It
// implements the STL algorithm of Cleveland et al. (1990) with robustness
// re-weighting, and the MSTL extension that extracts several seasonal cycles
// (e.g. daily and weekly patterns) from one series.
//
// # Features
//
//   - STL decomposition with configurable smoothing lengths, degrees, and
//     jump acceleration
//   - Robust fitting with bisquare outlier down-weighting
//   - MSTL for multiple seasonal periods, with optional Box-Cox transform
//   - Seasonal and trend strength metrics
//   - Deterministic fits with no shared state, safe for concurrent use
//
// # Quick Start
//
// Decompose a series with a weekly cycle:
//
//	result, err := stl.Fit(values, 7)
//	seasonal := result.Seasonal()
//	trend := result.Trend()
//
// Extract daily and weekly cycles from hourly data:
//
//	result, err := mstl.Fit(values, []int{24, 168})
//	daily := result.Seasonal()[0]
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stl: Single-period seasonal-trend decomposition
//   - mstl: Multi-period decomposition built on stl
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Cleveland, R.B., Cleveland, W.S., McRae, J.E., & Terpenning, I. (1990).
//     STL: A Seasonal-Trend Decomposition Procedure Based on Loess
//   - Bandara, K., Hyndman, R.J., & Bergmeir, C. (2021). MSTL: A
//     Seasonal-Trend Decomposition Algorithm for Time Series with Multiple
//     Seasonal Patterns
package gostl
