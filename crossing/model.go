package crossing

import "math"

// Series holds two mode branches sampled at the same sweep parameter values.
type Series struct {
	PeriodNM  []float64
	EMFreqGHz []float64
	OMFreqGHz []float64
}

func (s Series) Len() int {
	return len(s.PeriodNM)
}

func (s Series) aligned() bool {
	return len(s.EMFreqGHz) == len(s.PeriodNM) && len(s.OMFreqGHz) == len(s.PeriodNM)
}

// SplittingMHz returns |em - om| per sample, converted GHz -> MHz.
func (s Series) SplittingMHz() []float64 {
	ds := make([]float64, 0, s.Len())

	for i := 0; i < s.Len(); i++ {
		ds = append(ds, math.Abs(s.EMFreqGHz[i]-s.OMFreqGHz[i])*1000)
	}

	return ds
}

type Result struct {
	MinIndex        int
	MinSplittingGHz float64
	CouplingRateMHz float64
}
