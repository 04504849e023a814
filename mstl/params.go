package mstl

import (
	"fmt"
	"sort"

	"github.com/sartorproj/gostl/stl"
)

// Params configures an MSTL decomposition. Setters return the receiver so
// calls can be chained; validation happens at fit time, before any
// computation.
type Params struct {
	stlParams       *stl.Params
	lambda          *float64
	iterations      int
	seasonalLengths []int
}

// NewParams creates a new set of parameters: a default STL template, no
// Box-Cox transform, and two refinement passes.
func NewParams() *Params {
	return &Params{iterations: 2}
}

// StlParams sets the STL parameter template applied to every per-period
// sub-fit. The template is cloned per sub-fit and never mutated.
func (p *Params) StlParams(params *stl.Params) *Params {
	p.stlParams = params
	return p
}

// Lambda sets the exponent of the Box-Cox power transform applied to the
// series before decomposition. Must be between 0 and 1; 0 takes the natural
// logarithm.
func (p *Params) Lambda(lambda float64) *Params {
	p.lambda = &lambda
	return p
}

// Iterations sets the number of refinement passes over the period list.
// Defaults to 2; with a single period extra passes change nothing and are
// skipped.
func (p *Params) Iterations(n int) *Params {
	p.iterations = n
	return p
}

// SeasonalLengths sets one seasonal smoother length per period, in the same
// order as the periods passed to Fit. When unset, the i-th period in
// ascending order uses 7+4*(i+1) unless the STL template carries an explicit
// seasonal length.
func (p *Params) SeasonalLengths(lengths []int) *Params {
	p.seasonalLengths = lengths
	return p
}

// Fit decomposes series into one seasonal component per period plus a shared
// trend and remainder. Seasonal components are returned in the caller's
// period order. The input slices are not modified or retained.
func (p *Params) Fit(series []float64, periods []int) (*Result, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: periods must not be empty", stl.ErrParameter)
	}
	for _, period := range periods {
		if period < 2 {
			return nil, fmt.Errorf("%w: periods must be at least 2", stl.ErrParameter)
		}
	}
	if p.lambda != nil && (*p.lambda < 0 || *p.lambda > 1) {
		return nil, fmt.Errorf("%w: lambda must be between 0 and 1", stl.ErrParameter)
	}
	if p.iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be at least 1", stl.ErrParameter)
	}
	if p.seasonalLengths != nil && len(p.seasonalLengths) != len(periods) {
		return nil, fmt.Errorf("%w: seasonal lengths must match periods", stl.ErrParameter)
	}
	// fail fast before any sub-fit runs
	for _, period := range periods {
		if len(series) < 2*period {
			return nil, fmt.Errorf("%w: series has less than two periods", stl.ErrSeries)
		}
	}

	// Periods are processed in ascending order; order maps the sorted
	// position back to the caller's position so results come out in the
	// order the periods were given.
	order := make([]int, len(periods))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return periods[order[a]] < periods[order[b]]
	})

	sorted := make([]int, len(periods))
	var lengths []int
	if p.seasonalLengths != nil {
		lengths = make([]int, len(periods))
	}
	for i, idx := range order {
		sorted[i] = periods[idx]
		if lengths != nil {
			lengths[i] = p.seasonalLengths[idx]
		}
	}

	template := p.stlParams
	if template == nil {
		template = stl.NewParams()
	}

	seasonal, trend, remainder, err := decompose(series, sorted, p.iterations, p.lambda, lengths, template)
	if err != nil {
		return nil, err
	}

	ordered := make([][]float64, len(periods))
	for i, idx := range order {
		ordered[idx] = seasonal[i]
	}

	return &Result{
		seasonal:  ordered,
		trend:     trend,
		remainder: remainder,
	}, nil
}
