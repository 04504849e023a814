package stl

import "errors"

// Error kinds returned by Fit. Use errors.Is to distinguish invalid
// configuration from data that cannot support the requested period.
var (
	// ErrParameter indicates caller-supplied configuration is invalid:
	// a bad degree, a non-positive length or jump, a bad lambda, or an
	// empty period list.
	ErrParameter = errors.New("invalid parameter")

	// ErrSeries indicates the data is structurally incompatible with the
	// requested period, such as too few observations for two full cycles.
	ErrSeries = errors.New("invalid series")
)
