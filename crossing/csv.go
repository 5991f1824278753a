package crossing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sgostarter/libeasygo/cuserror"
)

const (
	DefaultDataFileName           = "avoided_crossing_data.csv"
	DefaultChartFileName          = "avoided_crossing.png"
	DefaultSplittingChartFileName = "avoided_crossing_split.png"
)

// columnIndex matches headers by case-insensitive keyword so that minor
// wording differences in exported data do not break ingestion.
func columnIndex(header []string, keyword string) (int, error) {
	for idx, name := range header {
		if strings.Contains(strings.ToLower(name), keyword) {
			return idx, nil
		}
	}

	return 0, cuserror.NewWithErrorMsg(fmt.Sprintf("no column containing %q in %v", keyword, header))
}

func parseCell(record []string, idx int) (float64, error) {
	if idx >= len(record) {
		return 0, ErrMalformedInput
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, ErrMalformedInput
	}

	return v, nil
}

// ReadSeries loads the sweep table and returns it sorted by period ascending.
func ReadSeries(r io.Reader) (series Series, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return
	}

	if len(records) == 0 {
		err = ErrNoData

		return
	}

	header := records[0]

	periodIdx, err := columnIndex(header, "period")
	if err != nil {
		return
	}

	emIdx, err := columnIndex(header, "electromechanical")
	if err != nil {
		return
	}

	omIdx, err := columnIndex(header, "optomechanical")
	if err != nil {
		return
	}

	rows := records[1:]
	if len(rows) == 0 {
		err = ErrNoData

		return
	}

	type sample struct {
		period, em, om float64
	}

	samples := make([]sample, 0, len(rows))

	for _, record := range rows {
		var sm sample

		sm.period, err = parseCell(record, periodIdx)
		if err != nil {
			return
		}

		sm.em, err = parseCell(record, emIdx)
		if err != nil {
			return
		}

		sm.om, err = parseCell(record, omIdx)
		if err != nil {
			return
		}

		samples = append(samples, sm)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].period < samples[j].period
	})

	series.PeriodNM = make([]float64, 0, len(samples))
	series.EMFreqGHz = make([]float64, 0, len(samples))
	series.OMFreqGHz = make([]float64, 0, len(samples))

	for _, sm := range samples {
		series.PeriodNM = append(series.PeriodNM, sm.period)
		series.EMFreqGHz = append(series.EMFreqGHz, sm.em)
		series.OMFreqGHz = append(series.OMFreqGHz, sm.om)
	}

	return
}

func LoadSeriesFile(fileName string) (series Series, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}

	defer func() {
		_ = f.Close()
	}()

	return ReadSeries(f)
}
