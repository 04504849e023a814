// Package timeseries provides time series data structures and utilities.
//
// The Series type pairs float64 observations with timestamps and offers the
// summary statistics and transformations commonly needed around a
// decomposition: mean, variance, median, moving averages, log transform, and
// z-score normalization. Its Values field feeds directly into the stl and
// mstl engines, which operate on plain []float64.
//
// # Creating Series
//
// From values (synthetic hourly timestamps are generated):
//
//	series := timeseries.New([]float64{1.2, 3.4, 5.6})
//
// With explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// # CSV Loading
//
// Load observations from a CSV file; column names and date formats are
// configurable through CSVOptions:
//
//	series, err := timeseries.LoadCSV("demand.csv", nil)
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "demand"
//	opts.DateColumn = "ds"
//	series, err := timeseries.LoadCSV("demand.csv", opts)
//
// # Decomposing
//
// Pass the values into the decomposition engines:
//
//	result, err := stl.Fit(series.Values, 24)
package timeseries
