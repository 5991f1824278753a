package taper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnitValue(t *testing.T) {
	v, err := parseUnitValue("220[nm]")
	assert.Nil(t, err)
	assert.EqualValues(t, 220, v)

	v, err = parseUnitValue(" 6.5 ")
	assert.Nil(t, err)
	assert.EqualValues(t, 6.5, v)

	_, err = parseUnitValue("abc[nm]")
	assert.NotNil(t, err)
}

func TestSpecFromParams(t *testing.T) {
	spec, err := SpecFromParams(map[string]string{
		"n_ext":   "17",
		"delx":    "6",
		"M":       "2",
		"d0":      "220[nm]",
		"d17_mir": "180[nm]",
		"d17_wg":  "260[nm]",
		"h0":      "350[nm]",
		"h17":     "320[nm]",
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 17, spec.NExt)
	assert.EqualValues(t, 6, spec.DelX)
	assert.EqualValues(t, 2, spec.M)
	assert.EqualValues(t, 220, spec.D.V0)
	assert.EqualValues(t, 180, spec.D.MirrorTarget)
	assert.EqualValues(t, 260, spec.D.WaveguideTarget)

	// generic fallback fills both sides
	assert.EqualValues(t, 320, spec.H.MirrorTarget)
	assert.EqualValues(t, 320, spec.H.WaveguideTarget)
}

func TestSpecFromParamsAliases(t *testing.T) {
	spec, err := SpecFromParams(map[string]string{
		"N":       "8",
		"delta_x": "4",
		"m":       "1.5",
		"d0":      "200",
		"d_ext":   "240",
		"h0":      "300",
		"hN":      "330",
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 8, spec.NExt)
	assert.EqualValues(t, 4, spec.DelX)
	assert.EqualValues(t, 1.5, spec.M)
	assert.EqualValues(t, 240, spec.D.MirrorTarget)
	assert.EqualValues(t, 330, spec.H.WaveguideTarget)
}

func TestSpecFromParamsMissing(t *testing.T) {
	_, err := SpecFromParams(map[string]string{
		"n_ext": "17",
		"delx":  "6",
		"M":     "2",
		"d0":    "220",
		// no d target at all
		"h0":  "350",
		"h17": "320",
	})
	assert.NotNil(t, err)
}

func TestLoadSpecFile(t *testing.T) {
	dir := t.TempDir()

	jsonFileName := filepath.Join(dir, "final_dimensions.json")
	err := os.WriteFile(jsonFileName, []byte(`{
		"n_ext": "17",
		"delx": "6[1]",
		"M": 2,
		"d0": "220[nm]",
		"d17": "180[nm]",
		"h0": "350[nm]",
		"h17": "320[nm]"
	}`), 0600)
	assert.Nil(t, err)

	spec, err := LoadSpecFile(jsonFileName)
	assert.Nil(t, err)
	assert.EqualValues(t, 17, spec.NExt)
	assert.EqualValues(t, 2, spec.M)
	assert.EqualValues(t, 180, spec.D.MirrorTarget)

	yamlFileName := filepath.Join(dir, "final_dimensions.yaml")
	err = os.WriteFile(yamlFileName, []byte(`
n_ext: 17
delx: 6
M: 2
d0: 220[nm]
d17: 180[nm]
h0: 350[nm]
h17: 320[nm]
`), 0600)
	assert.Nil(t, err)

	spec, err = LoadSpecFile(yamlFileName)
	assert.Nil(t, err)
	assert.EqualValues(t, 220, spec.D.V0)

	_, err = LoadSpecFile(filepath.Join(dir, "not_exists.json"))
	assert.NotNil(t, err)
}
