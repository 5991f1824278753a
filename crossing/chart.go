package crossing

import (
	"fmt"
	"io"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/omckit/render"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type ChartConfig struct {
	Render render.Config

	EMColor        drawing.Color
	OMColor        drawing.Color
	SplitColor     drawing.Color
	ConnectorColor drawing.Color

	// FrequencyPadGHz pads the vertical range of the mode chart so that the
	// branches never touch the plot-area frame.
	FrequencyPadGHz float64
	SplittingPadMHz float64

	EMLabel string
	OMLabel string
}

func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Render:          render.DefaultConfig(),
		EMColor:         drawing.ColorFromHex("d62728"),
		OMColor:         drawing.ColorFromHex("1f77b4"),
		SplitColor:      drawing.ColorFromHex("2ca02c"),
		ConnectorColor:  drawing.ColorFromHex("666666"),
		FrequencyPadGHz: 0.01,
		SplittingPadMHz: 1,
		EMLabel:         "Electromechanical mode",
		OMLabel:         "Optomechanical mode",
	}
}

func NewChartRenderer(cfg ChartConfig, logger l.Wrapper) *ChartRenderer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &ChartRenderer{
		cfg:    cfg,
		logger: logger,
	}
}

type ChartRenderer struct {
	cfg    ChartConfig
	logger l.Wrapper
}

func (impl *ChartRenderer) modePlot(series Series, result Result) (*render.Plot, error) {
	if series.Len() == 0 {
		return nil, ErrNoData
	}

	if !series.aligned() {
		return nil, ErrMalformedInput
	}

	xr := render.RangeOf(series.PeriodNM)
	yr := render.RangeOf(series.EMFreqGHz, series.OMFreqGHz).Pad(impl.cfg.FrequencyPadGHz)

	p, err := render.NewPlot(impl.cfg.Render)
	if err != nil {
		return nil, err
	}

	p.Grid()
	p.Ticks(xr, yr, "%.0f", "%.4f")
	p.Title("Avoided crossing: mode frequencies vs period")
	p.XLabel("Transducer period (nm)")
	p.YLabel("Frequency (GHz)")

	p.Series(series.PeriodNM, series.EMFreqGHz, xr, yr, impl.cfg.EMColor)
	p.Series(series.PeriodNM, series.OMFreqGHz, xr, yr, impl.cfg.OMColor)

	period := series.PeriodNM[result.MinIndex]
	p.DashedVLine(period, series.EMFreqGHz[result.MinIndex], series.OMFreqGHz[result.MinIndex],
		xr, yr, impl.cfg.ConnectorColor)

	legendBox := p.Legend([]render.LegendEntry{
		{Label: impl.cfg.EMLabel, Color: impl.cfg.EMColor},
		{Label: impl.cfg.OMLabel, Color: impl.cfg.OMColor},
	})

	p.AnnotateBelow(legendBox, []string{
		fmt.Sprintf("min Δf ≈ %.3f MHz", result.MinSplittingGHz*1000),
		fmt.Sprintf("(g ≈ %.3f MHz)", result.CouplingRateMHz),
		fmt.Sprintf("at %.0f nm", period),
	})

	return p, nil
}

func (impl *ChartRenderer) splittingPlot(series Series, result Result) (*render.Plot, error) {
	if series.Len() == 0 {
		return nil, ErrNoData
	}

	if !series.aligned() {
		return nil, ErrMalformedInput
	}

	splitMHz := series.SplittingMHz()

	xr := render.RangeOf(series.PeriodNM)
	yr := render.RangeOf(splitMHz).Pad(impl.cfg.SplittingPadMHz)

	p, err := render.NewPlot(impl.cfg.Render)
	if err != nil {
		return nil, err
	}

	p.Grid()
	p.Ticks(xr, yr, "%.0f", "%.4f")
	p.Title("Splitting vs period")
	p.XLabel("Transducer period (nm)")
	p.YLabel("Δf (MHz)")

	p.Series(series.PeriodNM, splitMHz, xr, yr, impl.cfg.SplitColor)

	period := series.PeriodNM[result.MinIndex]
	p.DashedVLine(period, yr.Min, yr.Max, xr, yr, impl.cfg.ConnectorColor)

	area := p.Area()
	anchorX := render.MapX(period, xr.Min, xr.Max, area.Left, area.Right)
	anchorY := render.MapY(splitMHz[result.MinIndex], yr.Min, yr.Max, area.Top, area.Bottom)

	p.AnnotateBelow(chart.Box{Left: anchorX, Right: anchorX, Top: anchorY, Bottom: anchorY}, []string{
		fmt.Sprintf("min at %.0f nm", period),
		fmt.Sprintf("Δf ≈ %.3f MHz", result.MinSplittingGHz*1000),
	})

	return p, nil
}

func (impl *ChartRenderer) RenderModeChart(series Series, result Result, w io.Writer) error {
	p, err := impl.modePlot(series, result)
	if err != nil {
		return err
	}

	return p.Write(w)
}

func (impl *ChartRenderer) SaveModeChartFile(series Series, result Result, fileName string) error {
	p, err := impl.modePlot(series, result)
	if err != nil {
		return err
	}

	err = p.SaveFile(fileName)
	if err != nil {
		return err
	}

	impl.logger.WithFields(l.StringField("fileName", fileName)).Info("mode chart saved")

	return nil
}

func (impl *ChartRenderer) RenderSplittingChart(series Series, result Result, w io.Writer) error {
	p, err := impl.splittingPlot(series, result)
	if err != nil {
		return err
	}

	return p.Write(w)
}

func (impl *ChartRenderer) SaveSplittingChartFile(series Series, result Result, fileName string) error {
	p, err := impl.splittingPlot(series, result)
	if err != nil {
		return err
	}

	err = p.SaveFile(fileName)
	if err != nil {
		return err
	}

	impl.logger.WithFields(l.StringField("fileName", fileName)).Info("splitting chart saved")

	return nil
}
