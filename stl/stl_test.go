package stl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() []float64 {
	return []float64{
		5, 9, 2, 9, 0, 6, 3, 8, 5, 8, 7, 8, 8, 0, 2,
		5, 0, 5, 6, 7, 3, 6, 1, 4, 4, 4, 3, 7, 5, 8,
	}
}

// assertPrefixInDelta checks the leading values of a component against the
// expected prefix at 1e-3 tolerance.
func assertPrefixInDelta(t *testing.T, expected, actual []float64) {
	t.Helper()
	require.GreaterOrEqual(t, len(actual), len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 0.001, "index %d", i)
	}
}

func TestFit(t *testing.T) {
	result, err := Fit(testSeries(), 7)
	require.NoError(t, err)

	assertPrefixInDelta(t, []float64{
		0.37219643670729, 0.75891225195555, -1.32782256841625, 1.95709597673555, -0.60611637118181,
	}, result.Seasonal())
	assertPrefixInDelta(t, []float64{
		4.80207783921496, 4.90800236378156, 5.01392688834816, 5.15927237254058, 5.30461785673299,
	}, result.Trend())
	assertPrefixInDelta(t, []float64{
		-0.17427427592226, 3.33308538426287, -1.68610431993190, 1.88363165072386, -4.69850148555118,
	}, result.Remainder())
	assertPrefixInDelta(t, []float64{1, 1, 1, 1, 1}, result.Weights())
}

func TestFitRobust(t *testing.T) {
	result, err := NewParams().Robust(true).Fit(testSeries(), 7)
	require.NoError(t, err)

	assertPrefixInDelta(t, []float64{
		0.14695846927381, 0.47820120771618, -1.83591431493602, 1.74014792457097, 0.82780634585963,
	}, result.Seasonal())
	assertPrefixInDelta(t, []float64{
		5.40136665599873, 5.47829285413974, 5.55521905228075, 5.65309290040513, 5.75096674852951,
	}, result.Trend())
	assertPrefixInDelta(t, []float64{
		-0.54832512527255, 3.04350593814406, -1.71930473734472, 1.60675917502388, -6.57877309438914,
	}, result.Remainder())
	assertPrefixInDelta(t, []float64{
		0.99370210685015, 0.81307454698319, 0.93847779235982, 0.94590286067129, 0.29526025353680,
	}, result.Weights())
}

func TestAdditiveIdentity(t *testing.T) {
	series := testSeries()
	for _, robust := range []bool{false, true} {
		result, err := NewParams().Robust(robust).Fit(series, 7)
		require.NoError(t, err)

		seasonal := result.Seasonal()
		trend := result.Trend()
		remainder := result.Remainder()
		require.Len(t, seasonal, len(series))
		require.Len(t, trend, len(series))
		require.Len(t, remainder, len(series))
		for i := range series {
			assert.InDelta(t, series[i], seasonal[i]+trend[i]+remainder[i], 1e-9, "robust=%v index %d", robust, i)
		}
	}
}

func TestWeightsRange(t *testing.T) {
	result, err := NewParams().Robust(true).Fit(testSeries(), 7)
	require.NoError(t, err)
	for i, w := range result.Weights() {
		assert.GreaterOrEqual(t, w, 0.0, "index %d", i)
		assert.LessOrEqual(t, w, 1.0, "index %d", i)
	}
}

func TestNonRobustWeightsAllOne(t *testing.T) {
	result, err := Fit(testSeries(), 7)
	require.NoError(t, err)
	for i, w := range result.Weights() {
		assert.Equal(t, 1.0, w, "index %d", i)
	}
}

func TestDeterministic(t *testing.T) {
	a, err := NewParams().Robust(true).Fit(testSeries(), 7)
	require.NoError(t, err)
	b, err := NewParams().Robust(true).Fit(testSeries(), 7)
	require.NoError(t, err)

	assert.Equal(t, a.Seasonal(), b.Seasonal())
	assert.Equal(t, a.Trend(), b.Trend())
	assert.Equal(t, a.Remainder(), b.Remainder())
	assert.Equal(t, a.Weights(), b.Weights())
}

func TestInputNotModified(t *testing.T) {
	series := testSeries()
	_, err := NewParams().Robust(true).Fit(series, 7)
	require.NoError(t, err)
	assert.Equal(t, testSeries(), series)
}

func TestPeriodTooSmall(t *testing.T) {
	_, err := Fit(testSeries(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParameter))
	assert.ErrorContains(t, err, "period must be at least 2")
}

func TestTooFewPeriods(t *testing.T) {
	_, err := Fit(testSeries(), 16)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSeries))
	assert.ErrorContains(t, err, "series has less than two periods")
}

func TestBadDegrees(t *testing.T) {
	_, err := NewParams().SeasonalDegree(2).Fit(testSeries(), 7)
	assert.True(t, errors.Is(err, ErrParameter))
	assert.ErrorContains(t, err, "seasonal degree must be 0 or 1")

	_, err = NewParams().TrendDegree(-1).Fit(testSeries(), 7)
	assert.True(t, errors.Is(err, ErrParameter))
	assert.ErrorContains(t, err, "trend degree must be 0 or 1")

	_, err = NewParams().LowPassDegree(2).Fit(testSeries(), 7)
	assert.True(t, errors.Is(err, ErrParameter))
	assert.ErrorContains(t, err, "low-pass degree must be 0 or 1")
}

func TestBadLengthsAndJumps(t *testing.T) {
	cases := []struct {
		name   string
		params *Params
		msg    string
	}{
		{"seasonal length", NewParams().SeasonalLength(0), "seasonal length must be at least 1"},
		{"trend length", NewParams().TrendLength(-5), "trend length must be at least 1"},
		{"low-pass length", NewParams().LowPassLength(0), "low-pass length must be at least 1"},
		{"seasonal jump", NewParams().SeasonalJump(0), "seasonal jump must be at least 1"},
		{"trend jump", NewParams().TrendJump(0), "trend jump must be at least 1"},
		{"low-pass jump", NewParams().LowPassJump(-1), "low-pass jump must be at least 1"},
		{"inner loops", NewParams().InnerLoops(0), "inner loops must be at least 1"},
		{"outer loops", NewParams().OuterLoops(-1), "outer loops must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.params.Fit(testSeries(), 7)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParameter))
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestExplicitLoops(t *testing.T) {
	// forcing the robust loop counts on a non-robust fit matches Robust(true)
	robust, err := NewParams().Robust(true).Fit(testSeries(), 7)
	require.NoError(t, err)
	manual, err := NewParams().InnerLoops(2).OuterLoops(15).Fit(testSeries(), 7)
	require.NoError(t, err)

	assert.Equal(t, robust.Seasonal(), manual.Seasonal())
	assert.Equal(t, robust.Trend(), manual.Trend())
	assert.Equal(t, robust.Weights(), manual.Weights())
}

func TestZeroOuterLoops(t *testing.T) {
	result, err := NewParams().OuterLoops(0).Fit(testSeries(), 7)
	require.NoError(t, err)
	for _, w := range result.Weights() {
		assert.Equal(t, 1.0, w)
	}
}

func TestParamsReusable(t *testing.T) {
	params := NewParams().Robust(true)
	a, err := params.Fit(testSeries(), 7)
	require.NoError(t, err)
	b, err := params.Fit(testSeries(), 7)
	require.NoError(t, err)
	assert.Equal(t, a.Seasonal(), b.Seasonal())
}

func TestClone(t *testing.T) {
	params := NewParams().SeasonalLength(7)
	clone := params.Clone().SeasonalDegree(2)

	_, err := clone.Fit(testSeries(), 7)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = params.Fit(testSeries(), 7)
	assert.NoError(t, err)
}

func TestSeasonalStrength(t *testing.T) {
	result, err := Fit(testSeries(), 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.284111676315015, result.SeasonalStrength(), 0.001)
}

func TestSeasonalStrengthMax(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = float64(i % 7)
	}
	result, err := Fit(series, 7)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.SeasonalStrength(), 0.001)
}

func TestTrendStrength(t *testing.T) {
	result, err := Fit(testSeries(), 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.16384245231864702, result.TrendStrength(), 0.001)
}

func TestTrendStrengthMax(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = float64(i)
	}
	result, err := Fit(series, 7)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.TrendStrength(), 0.001)
}

func TestDecompose(t *testing.T) {
	result, err := Fit(testSeries(), 7)
	require.NoError(t, err)

	seasonal, trend, remainder, weights := result.Decompose()
	assert.Equal(t, result.Seasonal(), seasonal)
	assert.Equal(t, result.Trend(), trend)
	assert.Equal(t, result.Remainder(), remainder)
	assert.Equal(t, result.Weights(), weights)
}
