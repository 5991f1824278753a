package render

import "math"

type Range struct {
	Min float64
	Max float64
}

func RangeOf(seriesList ...[]float64) (r Range) {
	first := true

	for _, series := range seriesList {
		for _, v := range series {
			if first {
				r.Min = v
				r.Max = v
				first = false

				continue
			}

			if v < r.Min {
				r.Min = v
			}

			if v > r.Max {
				r.Max = v
			}
		}
	}

	return
}

func (r Range) Pad(amount float64) Range {
	return Range{
		Min: r.Min - amount,
		Max: r.Max + amount,
	}
}

// MapX maps v on [vMin, vMax] linearly onto [left, right].
// A degenerate domain collapses to the left edge.
func MapX(v, vMin, vMax float64, left, right int) int {
	if vMax <= vMin {
		return left
	}

	return left + int(math.Round((v-vMin)/(vMax-vMin)*float64(right-left)))
}

// MapY maps v on [vMin, vMax] linearly onto [top, bottom], inverted so that
// larger values land higher on the chart. A degenerate domain collapses to
// the vertical center.
func MapY(v, vMin, vMax float64, top, bottom int) int {
	if vMax <= vMin {
		return (top + bottom) / 2
	}

	return bottom - int(math.Round((v-vMin)/(vMax-vMin)*float64(bottom-top)))
}
