package taper

import "math"

func SideFor(n int) Side {
	if n == 0 {
		return SideCenter
	}

	if n < 0 {
		return SideMirror
	}

	return SideWaveguide
}

func (q Quantity) target(side Side) float64 {
	if side == SideMirror {
		return q.MirrorTarget
	}

	return q.WaveguideTarget
}

// At evaluates v(n) = target - (target - v0) * 2^(-(|n|/delX)^m). The center
// index bypasses the formula so that v(0) is exactly v0.
func (q Quantity) At(n int, delX, m float64) float64 {
	side := SideFor(n)
	if side == SideCenter {
		return q.V0
	}

	target := q.target(side)

	return target - (target-q.V0)*math.Exp2(-math.Pow(math.Abs(float64(n))/delX, m))
}

// Generate produces one row per integer index in [-NExt, NExt], ascending.
func Generate(spec TaperSpec) (profile GeometryProfile, err error) {
	if spec.NExt < 0 {
		err = ErrInvalidRange

		return
	}

	if spec.DelX <= 0 {
		err = ErrInvalidParameter

		return
	}

	profile = make(GeometryProfile, 0, 2*spec.NExt+1)

	for n := -spec.NExt; n <= spec.NExt; n++ {
		profile = append(profile, ProfileRow{
			Index: n,
			D:     spec.D.At(n, spec.DelX, spec.M),
			H:     spec.H.At(n, spec.DelX, spec.M),
		})
	}

	return
}
