package taper

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const DefaultParamsFileName = "final_dimensions.json"

// parseUnitValue accepts a plain number or a number with a bracketed unit
// suffix, e.g. "220[nm]".
func parseUnitValue(s string) (float64, error) {
	t := strings.TrimSpace(s)

	if idx := strings.Index(t, "["); idx >= 0 {
		t = strings.TrimSpace(t[:idx])
	}

	return cast.ToFloat64E(t)
}

func numberOf(params map[string]string, keys ...string) (v float64, err error) {
	for _, key := range keys {
		s, ok := params[key]
		if !ok {
			continue
		}

		return parseUnitValue(s)
	}

	err = cuserror.NewWithErrorMsg(fmt.Sprintf("missing parameter: one of %v", keys))

	return
}

func quantityFromParams(params map[string]string, name string) (q Quantity, err error) {
	q.V0, err = numberOf(params, name+"0")
	if err != nil {
		return
	}

	_, hasMirror := params[name+"17_mir"]
	_, hasWaveguide := params[name+"17_wg"]

	if hasMirror {
		q.MirrorTarget, err = parseUnitValue(params[name+"17_mir"])
		if err != nil {
			return
		}
	}

	if hasWaveguide {
		q.WaveguideTarget, err = parseUnitValue(params[name+"17_wg"])
		if err != nil {
			return
		}
	}

	if hasMirror && hasWaveguide {
		return
	}

	common, errCommon := numberOf(params, name+"17", name+"N", name+"_ext")
	if errCommon != nil {
		err = errCommon

		return
	}

	if !hasMirror {
		q.MirrorTarget = common
	}

	if !hasWaveguide {
		q.WaveguideTarget = common
	}

	return
}

// SpecFromParams resolves a raw parameter map into a TaperSpec, accepting the
// historical key aliases of the modeling exports.
func SpecFromParams(params map[string]string) (spec TaperSpec, err error) {
	nExt, err := numberOf(params, "n_ext", "N", "n", "N_unitcell")
	if err != nil {
		return
	}

	spec.NExt = int(math.Round(nExt))

	spec.DelX, err = numberOf(params, "delx", "delta_x", "dx")
	if err != nil {
		return
	}

	spec.M, err = numberOf(params, "M", "m")
	if err != nil {
		return
	}

	spec.D, err = quantityFromParams(params, "d")
	if err != nil {
		return
	}

	spec.H, err = quantityFromParams(params, "h")

	return
}

// LoadSpecFile reads a JSON or YAML parameter file (name -> value, values may
// carry unit suffixes) and resolves it into a TaperSpec.
func LoadSpecFile(fileName string) (spec TaperSpec, err error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	var raw map[string]interface{}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(d, &raw)
	default:
		err = json.Unmarshal(d, &raw)
	}

	if err != nil {
		return
	}

	params, err := cast.ToStringMapStringE(raw)
	if err != nil {
		return
	}

	return SpecFromParams(params)
}
