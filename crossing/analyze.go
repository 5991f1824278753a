package crossing

import "math"

// FindMinimumSplitting locates the closest approach of the two branches.
// The scan overwrites only on strictly smaller values, so exact ties resolve
// to the first occurrence. The coupling rate follows the 2g convention: half
// the minimum splitting, in MHz.
func FindMinimumSplitting(series Series) (result Result, err error) {
	if series.Len() == 0 && len(series.EMFreqGHz) == 0 && len(series.OMFreqGHz) == 0 {
		err = ErrNoData

		return
	}

	if !series.aligned() {
		err = ErrMalformedInput

		return
	}

	result.MinSplittingGHz = math.Abs(series.EMFreqGHz[0] - series.OMFreqGHz[0])

	for i := 1; i < series.Len(); i++ {
		split := math.Abs(series.EMFreqGHz[i] - series.OMFreqGHz[i])

		if split < result.MinSplittingGHz {
			result.MinSplittingGHz = split
			result.MinIndex = i
		}
	}

	result.CouplingRateMHz = result.MinSplittingGHz * 1000 / 2

	return
}
