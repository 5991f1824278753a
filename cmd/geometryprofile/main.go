package main

import (
	"flag"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/omckit/taper"
)

func main() {
	logger := l.NewConsoleLoggerWrapper()

	paramsFileName := flag.String("params", taper.DefaultParamsFileName, "parameter file (json or yaml)")
	outCSVFileName := flag.String("out-csv", taper.DefaultProfileCSVFileName, "output profile table (csv)")
	outPNGFileName := flag.String("out-png", taper.DefaultProfileChartFileName,
		"output profile chart (png), empty to disable")
	flag.Parse()

	spec, err := taper.LoadSpecFile(*paramsFileName)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("fileName", *paramsFileName)).Fatal("load parameters failed")
	}

	profile, err := taper.Generate(spec)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("generate profile failed")
	}

	err = profile.SaveCSVFile(*outCSVFileName)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("fileName", *outCSVFileName)).Fatal("write profile table failed")
	}

	logger.Info("profile rows ", len(profile), " written to ", *outCSVFileName)

	if *outPNGFileName == "" {
		return
	}

	err = profile.SaveChartFile(taper.DefaultChartConfig(), *outPNGFileName)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("fileName", *outPNGFileName)).Fatal("render profile chart failed")
	}
}
