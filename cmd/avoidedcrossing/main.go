package main

import (
	"flag"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/omckit/crossing"
)

func main() {
	logger := l.NewConsoleLoggerWrapper()

	dataFileName := flag.String("data", crossing.DefaultDataFileName, "input sweep table (csv)")
	outFileName := flag.String("out", crossing.DefaultChartFileName, "output mode chart (png)")
	splitOutFileName := flag.String("split-out", crossing.DefaultSplittingChartFileName,
		"output splitting chart (png), empty to disable")
	flag.Parse()

	// positional form: <data> [out] [split-out]
	if flag.NArg() > 0 {
		*dataFileName = flag.Arg(0)
	}

	if flag.NArg() > 1 {
		*outFileName = flag.Arg(1)
	}

	if flag.NArg() > 2 {
		*splitOutFileName = flag.Arg(2)
	}

	series, err := crossing.LoadSeriesFile(*dataFileName)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("fileName", *dataFileName)).Fatal("load sweep data failed")
	}

	result, err := crossing.FindMinimumSplitting(series)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("analyze failed")
	}

	logger.Info("min splitting ", result.MinSplittingGHz, " GHz at period ",
		series.PeriodNM[result.MinIndex], " nm, g ", result.CouplingRateMHz, " MHz")

	renderer := crossing.NewChartRenderer(crossing.DefaultChartConfig(), logger)

	err = renderer.SaveModeChartFile(series, result, *outFileName)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("fileName", *outFileName)).Fatal("render mode chart failed")
	}

	if *splitOutFileName == "" {
		return
	}

	err = renderer.SaveSplittingChartFile(series, result, *splitOutFileName)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("fileName", *splitOutFileName)).Fatal("render splitting chart failed")
	}
}
