package crossing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func utSeries() Series {
	return Series{
		PeriodNM:  []float64{200, 210, 220, 230, 240},
		EMFreqGHz: []float64{5.010, 5.005, 5.000, 4.995, 4.990},
		OMFreqGHz: []float64{4.970, 4.985, 5.000, 5.015, 5.030},
	}
}

func TestFindMinimumSplitting(t *testing.T) {
	result, err := FindMinimumSplitting(utSeries())
	assert.Nil(t, err)
	assert.EqualValues(t, 2, result.MinIndex)
	assert.InDelta(t, 0, result.MinSplittingGHz, 1e-12)
	assert.InDelta(t, 0, result.CouplingRateMHz, 1e-12)
}

func TestFindMinimumSplittingCouplingRate(t *testing.T) {
	series := Series{
		PeriodNM:  []float64{100, 110, 120},
		EMFreqGHz: []float64{5.2, 5.1, 5.0},
		OMFreqGHz: []float64{5.0, 5.06, 5.2},
	}

	result, err := FindMinimumSplitting(series)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, result.MinIndex)
	assert.InDelta(t, 0.04, result.MinSplittingGHz, 1e-12)
	assert.InDelta(t, result.MinSplittingGHz*500, result.CouplingRateMHz, 1e-12)
}

func TestFindMinimumSplittingTie(t *testing.T) {
	series := Series{
		PeriodNM:  []float64{100, 110, 120, 130},
		EMFreqGHz: []float64{5.1, 5.05, 5.0, 5.05},
		OMFreqGHz: []float64{5.0, 5.0, 4.95, 5.0},
	}

	// indices 1, 2 and 3 all split by exactly 0.05: first occurrence wins
	result, err := FindMinimumSplitting(series)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, result.MinIndex)
}

func TestFindMinimumSplittingBadInput(t *testing.T) {
	_, err := FindMinimumSplitting(Series{})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = FindMinimumSplitting(Series{
		PeriodNM:  []float64{100, 110},
		EMFreqGHz: []float64{5.1, 5.0},
		OMFreqGHz: []float64{5.0},
	})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestSplittingMHz(t *testing.T) {
	ds := utSeries().SplittingMHz()
	assert.EqualValues(t, 5, len(ds))
	assert.InDelta(t, 40, ds[0], 1e-9)
	assert.InDelta(t, 0, ds[2], 1e-9)
	assert.InDelta(t, 40, ds[4], 1e-9)
}
