package taper

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sgostarter/libeasygo/pathutils"
)

const DefaultProfileCSVFileName = "geometry_profile.csv"

func (profile GeometryProfile) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "d", "h"}); err != nil {
		return err
	}

	for _, row := range profile {
		err := cw.Write([]string{
			strconv.Itoa(row.Index),
			strconv.FormatFloat(row.D, 'g', -1, 64),
			strconv.FormatFloat(row.H, 'g', -1, 64),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func (profile GeometryProfile) SaveCSVFile(fileName string) (err error) {
	if dir := filepath.Dir(fileName); dir != "" && dir != "." {
		_ = pathutils.MustDirExists(dir)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return
	}

	defer func() {
		_ = f.Close()
	}()

	err = profile.WriteCSV(f)

	return
}
