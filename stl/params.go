package stl

import (
	"fmt"
	"math"
)

// Params configures an STL decomposition. The zero value from NewParams uses
// defaults derived from the period at fit time; setters return the receiver
// so calls can be chained:
//
//	result, err := stl.NewParams().Robust(true).SeasonalLength(11).Fit(series, 7)
//
// Validation happens at fit time, before any computation. A Params value is
// not consumed by Fit and can be reused across series.
type Params struct {
	seasonalLength *int
	trendLength    *int
	lowPassLength  *int
	seasonalDegree int
	trendDegree    int
	lowPassDegree  *int
	seasonalJump   *int
	trendJump      *int
	lowPassJump    *int
	innerLoops     *int
	outerLoops     *int
	robust         bool
}

// NewParams creates a new set of parameters with all optional fields unset.
func NewParams() *Params {
	return &Params{
		seasonalDegree: 0,
		trendDegree:    1,
	}
}

// Clone returns a copy of the parameters. The copy can be modified without
// affecting the original.
func (p *Params) Clone() *Params {
	c := *p
	return &c
}

// SeasonalLength sets the length of the seasonal smoother. Defaults to the
// period.
func (p *Params) SeasonalLength(length int) *Params {
	p.seasonalLength = &length
	return p
}

// HasSeasonalLength reports whether a seasonal length has been set.
func (p *Params) HasSeasonalLength() bool {
	return p.seasonalLength != nil
}

// TrendLength sets the length of the trend smoother. Defaults to the smallest
// odd integer that satisfies 1.5*period/(1 - 1.5/seasonalLength).
func (p *Params) TrendLength(length int) *Params {
	p.trendLength = &length
	return p
}

// LowPassLength sets the length of the low-pass filter smoother. Defaults to
// the smallest odd integer greater than or equal to the period; an explicit
// length is used as given, even parity included.
func (p *Params) LowPassLength(length int) *Params {
	p.lowPassLength = &length
	return p
}

// SeasonalDegree sets the polynomial degree of the seasonal smoother, 0 or 1.
// Defaults to 0.
func (p *Params) SeasonalDegree(degree int) *Params {
	p.seasonalDegree = degree
	return p
}

// TrendDegree sets the polynomial degree of the trend smoother, 0 or 1.
// Defaults to 1.
func (p *Params) TrendDegree(degree int) *Params {
	p.trendDegree = degree
	return p
}

// LowPassDegree sets the polynomial degree of the low-pass smoother, 0 or 1.
// Defaults to the trend degree.
func (p *Params) LowPassDegree(degree int) *Params {
	p.lowPassDegree = &degree
	return p
}

// SeasonalJump sets the evaluation stride of the seasonal smoother; positions
// between exact evaluations are linearly interpolated. Defaults to one tenth
// of the seasonal length, rounded up.
func (p *Params) SeasonalJump(jump int) *Params {
	p.seasonalJump = &jump
	return p
}

// TrendJump sets the evaluation stride of the trend smoother. Defaults to one
// tenth of the trend length, rounded up.
func (p *Params) TrendJump(jump int) *Params {
	p.trendJump = &jump
	return p
}

// LowPassJump sets the evaluation stride of the low-pass smoother. Defaults
// to one tenth of the low-pass length, rounded up.
func (p *Params) LowPassJump(jump int) *Params {
	p.lowPassJump = &jump
	return p
}

// InnerLoops sets the number of inner loop passes. Defaults to 2 when robust,
// 5 otherwise.
func (p *Params) InnerLoops(n int) *Params {
	p.innerLoops = &n
	return p
}

// OuterLoops sets the number of robustness iterations. Defaults to 15 when
// robust, 0 otherwise.
func (p *Params) OuterLoops(n int) *Params {
	p.outerLoops = &n
	return p
}

// Robust enables robust fitting with bisquare outlier down-weighting.
func (p *Params) Robust(robust bool) *Params {
	p.robust = robust
	return p
}

// Fit decomposes series with the given period. The series must contain at
// least two full periods. The input slice is not modified or retained.
func (p *Params) Fit(series []float64, period int) (*Result, error) {
	cfg, err := p.resolve(len(series), period)
	if err != nil {
		return nil, err
	}

	n := len(series)
	seasonal := make([]float64, n)
	trend := make([]float64, n)
	weights := make([]float64, n)
	decompose(series, n, cfg, weights, seasonal, trend)

	remainder := make([]float64, n)
	for i := 0; i < n; i++ {
		remainder[i] = series[i] - seasonal[i] - trend[i]
	}

	return &Result{
		seasonal:  seasonal,
		trend:     trend,
		remainder: remainder,
		weights:   weights,
	}, nil
}

// resolve validates the parameters against the series length and period and
// computes the effective configuration, applying defaults for unset fields.
func (p *Params) resolve(n, period int) (config, error) {
	var cfg config

	if period < 2 {
		return cfg, fmt.Errorf("%w: period must be at least 2", ErrParameter)
	}
	if n < 2*period {
		return cfg, fmt.Errorf("%w: series has less than two periods", ErrSeries)
	}

	if p.seasonalDegree != 0 && p.seasonalDegree != 1 {
		return cfg, fmt.Errorf("%w: seasonal degree must be 0 or 1", ErrParameter)
	}
	if p.trendDegree != 0 && p.trendDegree != 1 {
		return cfg, fmt.Errorf("%w: trend degree must be 0 or 1", ErrParameter)
	}
	lowPassDegree := p.trendDegree
	if p.lowPassDegree != nil {
		lowPassDegree = *p.lowPassDegree
	}
	if lowPassDegree != 0 && lowPassDegree != 1 {
		return cfg, fmt.Errorf("%w: low-pass degree must be 0 or 1", ErrParameter)
	}

	for _, c := range []struct {
		name  string
		value *int
	}{
		{"seasonal length", p.seasonalLength},
		{"trend length", p.trendLength},
		{"low-pass length", p.lowPassLength},
		{"seasonal jump", p.seasonalJump},
		{"trend jump", p.trendJump},
		{"low-pass jump", p.lowPassJump},
	} {
		if c.value != nil && *c.value < 1 {
			return cfg, fmt.Errorf("%w: %s must be at least 1", ErrParameter, c.name)
		}
	}
	if p.innerLoops != nil && *p.innerLoops < 1 {
		return cfg, fmt.Errorf("%w: inner loops must be at least 1", ErrParameter)
	}
	if p.outerLoops != nil && *p.outerLoops < 0 {
		return cfg, fmt.Errorf("%w: outer loops must not be negative", ErrParameter)
	}

	// Effective lengths are raised to at least 3 (the period for the
	// low-pass default) and bumped to the next odd integer, except an
	// explicitly set low-pass length, which keeps its parity; the Params
	// fields themselves are never mutated.
	seasonalLength := period
	if p.seasonalLength != nil {
		seasonalLength = *p.seasonalLength
	}
	seasonalLength = oddAtLeast(seasonalLength, 3)

	var trendLength int
	if p.trendLength != nil {
		trendLength = *p.trendLength
	} else {
		trendLength = int(math.Ceil(1.5 * float64(period) / (1.0 - 1.5/float64(seasonalLength))))
	}
	trendLength = oddAtLeast(trendLength, 3)

	lowPassLength := period
	if p.lowPassLength != nil {
		lowPassLength = *p.lowPassLength
	}
	if lowPassLength < 3 {
		lowPassLength = 3
	}
	if lowPassLength%2 == 0 && p.lowPassLength == nil {
		lowPassLength++
	}

	innerLoops := 5
	outerLoops := 0
	if p.robust {
		innerLoops = 2
		outerLoops = 15
	}
	if p.innerLoops != nil {
		innerLoops = *p.innerLoops
	}
	if p.outerLoops != nil {
		outerLoops = *p.outerLoops
	}

	cfg = config{
		period:         period,
		seasonalLength: seasonalLength,
		trendLength:    trendLength,
		lowPassLength:  lowPassLength,
		seasonalDegree: p.seasonalDegree,
		trendDegree:    p.trendDegree,
		lowPassDegree:  lowPassDegree,
		seasonalJump:   jumpOrDefault(p.seasonalJump, seasonalLength),
		trendJump:      jumpOrDefault(p.trendJump, trendLength),
		lowPassJump:    jumpOrDefault(p.lowPassJump, lowPassLength),
		innerLoops:     innerLoops,
		outerLoops:     outerLoops,
	}
	return cfg, nil
}

// oddAtLeast raises v to the given floor and bumps even values to the next
// odd integer.
func oddAtLeast(v, floor int) int {
	if v < floor {
		v = floor
	}
	if v%2 == 0 {
		v++
	}
	return v
}

// jumpOrDefault returns the set jump, or one tenth of the smoother length
// rounded up.
func jumpOrDefault(jump *int, length int) int {
	if jump != nil {
		return *jump
	}
	return (length + 9) / 10
}
