package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearSeries(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = 2*float64(i) + 1
	}
	return y
}

func constantSeries(n, v int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = float64(v)
	}
	return y
}

func TestEstConstantSeries(t *testing.T) {
	y := constantSeries(10, 4)
	w := make([]float64, 10)

	var ys float64
	ok := est(y, 10, 5, 0, 3.0, &ys, 1, 5, w, false, nil)
	require.True(t, ok)
	assert.InDelta(t, 4.0, ys, 1e-12)
}

func TestEstDegreeOneReproducesLine(t *testing.T) {
	y := linearSeries(10)
	w := make([]float64, 10)

	// interior fit and extrapolation beyond both ends
	for _, xs := range []float64{0.0, 4.0, 11.0} {
		var ys float64
		ok := est(y, 10, 7, 1, xs, &ys, 1, 7, w, false, nil)
		require.True(t, ok, "xs=%v", xs)
		// positions are 1-based, so the line through y is 2*xs - 1
		assert.InDelta(t, 2*xs-1, ys, 1e-9, "xs=%v", xs)
	}
}

func TestEstWindowStretchWholePoints(t *testing.T) {
	// window length 5 over 2 points: the odd overhang of 3 stretches the
	// bandwidth by exactly 1, so h = 2 and the far point gets tricube
	// weight (1 - 0.5^3)^3 = 343/512; the estimate at position 1 is then
	// (343/512) / (1 + 343/512) = 343/855
	y := []float64{0, 1}
	w := make([]float64, 2)

	var ys float64
	ok := est(y, 2, 5, 0, 1.0, &ys, 1, 2, w, false, nil)
	require.True(t, ok)
	assert.InDelta(t, 343.0/855.0, ys, 1e-12)
}

func TestEstAllZeroWeights(t *testing.T) {
	y := linearSeries(10)
	w := make([]float64, 10)
	rw := make([]float64, 10)

	var ys float64
	ok := est(y, 10, 5, 0, 3.0, &ys, 1, 5, w, true, rw)
	assert.False(t, ok)
}

func TestEssLinearSeries(t *testing.T) {
	y := linearSeries(20)
	ys := make([]float64, 20)
	res := make([]float64, 20)

	// a degree-1 smoother reproduces a line exactly at any jump, because
	// interpolating between exact points on a line stays on the line
	for _, jump := range []int{1, 3, 7} {
		ess(y, 20, 7, 1, jump, false, nil, ys, res)
		for i := range y {
			assert.InDelta(t, y[i], ys[i], 1e-9, "jump=%d index %d", jump, i)
		}
	}
}

func TestEssConstantSeries(t *testing.T) {
	y := constantSeries(15, 3)
	ys := make([]float64, 15)
	res := make([]float64, 15)

	ess(y, 15, 5, 0, 2, false, nil, ys, res)
	for i := range y {
		assert.InDelta(t, 3.0, ys[i], 1e-12, "index %d", i)
	}
}

func TestEssWindowWiderThanData(t *testing.T) {
	y := linearSeries(5)
	ys := make([]float64, 5)
	res := make([]float64, 5)

	ess(y, 5, 11, 1, 1, false, nil, ys, res)
	for i := range y {
		assert.InDelta(t, y[i], ys[i], 1e-9, "index %d", i)
	}
}

func TestEssZeroWeightFallback(t *testing.T) {
	y := []float64{4, 8, 15, 16, 23, 42}
	rw := make([]float64, 6)
	ys := make([]float64, 6)
	res := make([]float64, 6)

	// with all robustness weights zero every estimate falls back to the
	// raw value
	ess(y, 6, 3, 1, 1, true, rw, ys, res)
	assert.Equal(t, y, ys)
}

func TestMovingAverage(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	ave := make([]float64, 3)
	movingAverage(x, 5, 3, ave)
	assert.InDelta(t, 2.0, ave[0], 1e-12)
	assert.InDelta(t, 3.0, ave[1], 1e-12)
	assert.InDelta(t, 4.0, ave[2], 1e-12)
}

func TestLowPassConstantSeries(t *testing.T) {
	n, period := 20, 4
	x := constantSeries(n, 7)
	out := make([]float64, n)
	work := make([]float64, n)

	lowPass(x, n, period, out, work)
	for i := 0; i < n-2*period; i++ {
		assert.InDelta(t, 7.0, out[i], 1e-12, "index %d", i)
	}
}

func TestSeasonalSmoothConstantSeries(t *testing.T) {
	n, period := 30, 7
	y := constantSeries(n, 5)
	season := make([]float64, n+2*period)
	sub := make([]float64, n+2*period)
	smoothed := make([]float64, n+2*period)
	subrw := make([]float64, n+2*period)
	wres := make([]float64, n+2*period)

	// a constant series must survive subseries smoothing and extrapolation,
	// including the extended positions before and after the observed range
	seasonalSmooth(y, n, period, 7, 0, 1, false, nil, season, sub, smoothed, subrw, wres)
	for i := 0; i < n+2*period; i++ {
		assert.InDelta(t, 5.0, season[i], 1e-12, "index %d", i)
	}
}

func TestRobustnessWeights(t *testing.T) {
	n := 9
	y := make([]float64, n)
	fit := make([]float64, n)
	rw := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = float64(i)
		fit[i] = float64(i) + 0.5
	}
	y[0] = fit[0] + 100 // gross outlier

	robustnessWeights(y, n, fit, rw)

	assert.Equal(t, 0.0, rw[0])
	for i := 1; i < n; i++ {
		// residual 0.5 equals the median, well inside the 6*median scale
		u := 0.5 / 3.0
		expected := (1 - u*u) * (1 - u*u)
		assert.InDelta(t, expected, rw[i], 1e-12, "index %d", i)
	}
}
