package taper

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func utSpec() TaperSpec {
	return TaperSpec{
		NExt: 17,
		DelX: 6,
		M:    2,
		D: Quantity{
			V0:              220,
			MirrorTarget:    180,
			WaveguideTarget: 260,
		},
		H: Quantity{
			V0:              350,
			MirrorTarget:    320,
			WaveguideTarget: 380,
		},
	}
}

func TestGenerate(t *testing.T) {
	spec := utSpec()

	profile, err := Generate(spec)
	assert.Nil(t, err)
	assert.EqualValues(t, 2*spec.NExt+1, len(profile))

	for i, row := range profile {
		assert.EqualValues(t, -spec.NExt+i, row.Index)
	}

	center := profile[spec.NExt]
	assert.EqualValues(t, 0, center.Index)
	assert.EqualValues(t, spec.D.V0, center.D)
	assert.EqualValues(t, spec.H.V0, center.H)

	left := profile[0]
	assert.EqualValues(t, -17, left.Index)
	assert.Greater(t, left.D, 180.0)
	assert.Less(t, left.D, 220.0)
	assert.InDelta(t, 180, left.D, 1)

	right := profile[len(profile)-1]
	assert.EqualValues(t, 17, right.Index)
	assert.Greater(t, right.D, 220.0)
	assert.Less(t, right.D, 260.0)
	assert.InDelta(t, 260, right.D, 1)
}

func TestGenerateMonotonicApproach(t *testing.T) {
	spec := utSpec()

	profile, err := Generate(spec)
	assert.Nil(t, err)

	// distance to the mirror target shrinks from center to the left edge
	for n := 0; n < spec.NExt; n++ {
		cur := math.Abs(profile[spec.NExt-n].D - spec.D.MirrorTarget)
		next := math.Abs(profile[spec.NExt-n-1].D - spec.D.MirrorTarget)
		assert.Less(t, next, cur)
	}

	// and to the waveguide target on the right
	for n := 0; n < spec.NExt; n++ {
		cur := math.Abs(profile[spec.NExt+n].D - spec.D.WaveguideTarget)
		next := math.Abs(profile[spec.NExt+n+1].D - spec.D.WaveguideTarget)
		assert.Less(t, next, cur)
	}
}

func TestGenerateInvalid(t *testing.T) {
	spec := utSpec()
	spec.NExt = -1

	_, err := Generate(spec)
	assert.ErrorIs(t, err, ErrInvalidRange)

	spec = utSpec()
	spec.DelX = 0

	_, err = Generate(spec)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSideFor(t *testing.T) {
	assert.EqualValues(t, SideCenter, SideFor(0))
	assert.EqualValues(t, SideMirror, SideFor(-3))
	assert.EqualValues(t, SideWaveguide, SideFor(3))
}

func TestWriteCSV(t *testing.T) {
	spec := utSpec()
	spec.NExt = 2

	profile, err := Generate(spec)
	assert.Nil(t, err)

	var buf bytes.Buffer

	err = profile.WriteCSV(&buf)
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.EqualValues(t, 6, len(lines))
	assert.EqualValues(t, "index,d,h", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "-2,"))
	assert.EqualValues(t, "0,220,350", lines[3])
}
