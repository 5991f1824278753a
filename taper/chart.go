package taper

import (
	"io"

	"github.com/sgostarter/omckit/render"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const DefaultProfileChartFileName = "geometry_profile.png"

type ChartConfig struct {
	Render render.Config

	DColor drawing.Color
	HColor drawing.Color

	YPad float64

	Title  string
	XLabel string
	YLabel string
}

func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Render: render.DefaultConfig(),
		DColor: drawing.ColorFromHex("1f77b4"),
		HColor: drawing.ColorFromHex("ff7f0e"),
		YPad:   10,
		Title:  "Tapered geometry profile (d and h vs index)",
		XLabel: "Cell index n",
		YLabel: "Parameter value (model units)",
	}
}

func (profile GeometryProfile) renderPlot(cfg ChartConfig) (*render.Plot, error) {
	if len(profile) == 0 {
		return nil, ErrNoData
	}

	ns := make([]float64, 0, len(profile))
	ds := make([]float64, 0, len(profile))
	hs := make([]float64, 0, len(profile))

	for _, row := range profile {
		ns = append(ns, float64(row.Index))
		ds = append(ds, row.D)
		hs = append(hs, row.H)
	}

	xr := render.RangeOf(ns)
	yr := render.RangeOf(ds, hs).Pad(cfg.YPad)

	p, err := render.NewPlot(cfg.Render)
	if err != nil {
		return nil, err
	}

	p.Grid()
	p.Ticks(xr, yr, "%.0f", "%.4f")
	p.Title(cfg.Title)
	p.XLabel(cfg.XLabel)
	p.YLabel(cfg.YLabel)

	p.Series(ns, ds, xr, yr, cfg.DColor)
	p.Series(ns, hs, xr, yr, cfg.HColor)

	p.Legend([]render.LegendEntry{
		{Label: "d(n)", Color: cfg.DColor},
		{Label: "h(n)", Color: cfg.HColor},
	})

	return p, nil
}

func (profile GeometryProfile) RenderChart(cfg ChartConfig, w io.Writer) error {
	p, err := profile.renderPlot(cfg)
	if err != nil {
		return err
	}

	return p.Write(w)
}

func (profile GeometryProfile) SaveChartFile(cfg ChartConfig, fileName string) error {
	p, err := profile.renderPlot(cfg)
	if err != nil {
		return err
	}

	return p.SaveFile(fileName)
}
