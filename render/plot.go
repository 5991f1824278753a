package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sgostarter/libeasygo/pathutils"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type LegendEntry struct {
	Label string
	Color drawing.Color
}

// Plot is a raster chart surface with a rectangular plot area inset from the
// configured margins. All data-space drawing goes through MapX/MapY.
type Plot struct {
	cfg Config
	r   chart.Renderer
}

func NewPlot(cfg Config) (*Plot, error) {
	def := DefaultConfig()

	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}

	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}

	if cfg.GridRows <= 0 {
		cfg.GridRows = def.GridRows
	}

	if cfg.GridCols <= 0 {
		cfg.GridCols = def.GridCols
	}

	r, err := chart.PNG(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetDPI(chart.DefaultDPI)
	r.SetFont(font)

	p := &Plot{
		cfg: cfg,
		r:   r,
	}

	p.fill(chart.Box{Right: cfg.Width, Bottom: cfg.Height}, cfg.Background)

	return p, nil
}

func (p *Plot) Area() chart.Box {
	return chart.Box{
		Left:   p.cfg.MarginLeft,
		Top:    p.cfg.MarginTop,
		Right:  p.cfg.Width - p.cfg.MarginRight,
		Bottom: p.cfg.Height - p.cfg.MarginBottom,
	}
}

func (p *Plot) fill(b chart.Box, col drawing.Color) {
	p.r.SetFillColor(col)
	p.r.MoveTo(b.Left, b.Top)
	p.r.LineTo(b.Right, b.Top)
	p.r.LineTo(b.Right, b.Bottom)
	p.r.LineTo(b.Left, b.Bottom)
	p.r.Close()
	p.r.Fill()
}

func (p *Plot) frame(b chart.Box, col drawing.Color, width float64) {
	p.r.SetStrokeColor(col)
	p.r.SetStrokeWidth(width)
	p.r.SetStrokeDashArray(nil)
	p.r.MoveTo(b.Left, b.Top)
	p.r.LineTo(b.Right, b.Top)
	p.r.LineTo(b.Right, b.Bottom)
	p.r.LineTo(b.Left, b.Bottom)
	p.r.Close()
	p.r.Stroke()
}

func (p *Plot) Grid() {
	area := p.Area()

	p.r.SetStrokeColor(p.cfg.GridColor)
	p.r.SetStrokeWidth(1)
	p.r.SetStrokeDashArray(nil)

	for i := 1; i < p.cfg.GridCols; i++ {
		x := area.Left + i*area.Width()/p.cfg.GridCols

		p.r.MoveTo(x, area.Top)
		p.r.LineTo(x, area.Bottom)
		p.r.Stroke()
	}

	for i := 1; i < p.cfg.GridRows; i++ {
		y := area.Top + i*area.Height()/p.cfg.GridRows

		p.r.MoveTo(area.Left, y)
		p.r.LineTo(area.Right, y)
		p.r.Stroke()
	}

	p.frame(area, p.cfg.FrameColor, 1)
}

// Ticks labels the grid divisions on both axes. A degenerate range repeats
// the single observed value.
func (p *Plot) Ticks(xr, yr Range, xFormat, yFormat string) {
	area := p.Area()

	p.r.SetFontColor(p.cfg.TextColor)
	p.r.SetFontSize(p.cfg.FontSize)

	for i := 0; i <= p.cfg.GridCols; i++ {
		v := xr.Min + (xr.Max-xr.Min)*float64(i)/float64(p.cfg.GridCols)
		label := fmt.Sprintf(xFormat, v)
		tb := p.r.MeasureText(label)
		x := area.Left + i*area.Width()/p.cfg.GridCols

		p.r.Text(label, x-tb.Width()/2, area.Bottom+tb.Height()+8)
	}

	for i := 0; i <= p.cfg.GridRows; i++ {
		v := yr.Max - (yr.Max-yr.Min)*float64(i)/float64(p.cfg.GridRows)
		label := fmt.Sprintf(yFormat, v)
		tb := p.r.MeasureText(label)
		y := area.Top + i*area.Height()/p.cfg.GridRows

		p.r.Text(label, area.Left-tb.Width()-10, y+tb.Height()/2)
	}
}

func (p *Plot) Title(title string) {
	p.r.SetFontColor(p.cfg.TextColor)
	p.r.SetFontSize(p.cfg.TitleFontSize)

	tb := p.r.MeasureText(title)
	p.r.Text(title, (p.cfg.Width-tb.Width())/2, (p.cfg.MarginTop+tb.Height())/2)
}

func (p *Plot) XLabel(label string) {
	area := p.Area()

	p.r.SetFontColor(p.cfg.TextColor)
	p.r.SetFontSize(p.cfg.FontSize)

	tb := p.r.MeasureText(label)
	p.r.Text(label, (area.Left+area.Right-tb.Width())/2, p.cfg.Height-tb.Height())
}

func (p *Plot) YLabel(label string) {
	area := p.Area()

	p.r.SetFontColor(p.cfg.TextColor)
	p.r.SetFontSize(p.cfg.FontSize)

	tb := p.r.MeasureText(label)
	p.r.SetTextRotation(-math.Pi / 2)
	p.r.Text(label, tb.Height()+12, (area.Top+area.Bottom+tb.Width())/2)
	p.r.ClearTextRotation()
}

// Series draws a connected polyline with a filled marker at every sample.
func (p *Plot) Series(xs, ys []float64, xr, yr Range, col drawing.Color) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return
	}

	area := p.Area()

	p.r.SetStrokeColor(col)
	p.r.SetStrokeWidth(p.cfg.StrokeWidth)
	p.r.SetStrokeDashArray(nil)

	for i := range xs {
		x := MapX(xs[i], xr.Min, xr.Max, area.Left, area.Right)
		y := MapY(ys[i], yr.Min, yr.Max, area.Top, area.Bottom)

		if i == 0 {
			p.r.MoveTo(x, y)
		} else {
			p.r.LineTo(x, y)
		}
	}

	p.r.Stroke()

	p.r.SetFillColor(col)

	for i := range xs {
		x := MapX(xs[i], xr.Min, xr.Max, area.Left, area.Right)
		y := MapY(ys[i], yr.Min, yr.Max, area.Top, area.Bottom)

		p.r.Circle(p.cfg.DotRadius, x, y)
		p.r.Fill()
	}
}

func (p *Plot) Legend(entries []LegendEntry) chart.Box {
	area := p.Area()

	p.r.SetFontSize(p.cfg.FontSize)

	const swatch = 26

	const padding = 10

	maxW, rowH := 0, 0

	for _, e := range entries {
		tb := p.r.MeasureText(e.Label)

		if tb.Width() > maxW {
			maxW = tb.Width()
		}

		if tb.Height() > rowH {
			rowH = tb.Height()
		}
	}

	rowH += 8

	box := chart.Box{
		Top:   area.Top + 12,
		Right: area.Right - 12,
	}
	box.Left = box.Right - (maxW + swatch + 3*padding)
	box.Bottom = box.Top + len(entries)*rowH + padding

	p.fill(box, drawing.ColorWhite)
	p.frame(box, p.cfg.FrameColor, 1)

	for i, e := range entries {
		y := box.Top + padding/2 + i*rowH + rowH/2

		p.r.SetStrokeColor(e.Color)
		p.r.SetStrokeWidth(p.cfg.StrokeWidth)
		p.r.SetStrokeDashArray(nil)
		p.r.MoveTo(box.Left+padding, y)
		p.r.LineTo(box.Left+padding+swatch, y)
		p.r.Stroke()

		p.r.SetFillColor(e.Color)
		p.r.Circle(p.cfg.DotRadius, box.Left+padding+swatch/2, y)
		p.r.Fill()

		p.r.SetFontColor(p.cfg.TextColor)
		p.r.Text(e.Label, box.Left+2*padding+swatch, y+rowH/2-5)
	}

	return box
}

// DashedVLine draws a dashed vertical segment between two data-space points
// sharing the same abscissa.
func (p *Plot) DashedVLine(xv, y1v, y2v float64, xr, yr Range, col drawing.Color) {
	area := p.Area()

	x := MapX(xv, xr.Min, xr.Max, area.Left, area.Right)

	p.r.SetStrokeColor(col)
	p.r.SetStrokeWidth(1)
	p.r.SetStrokeDashArray([]float64{6, 4})
	p.r.MoveTo(x, MapY(y1v, yr.Min, yr.Max, area.Top, area.Bottom))
	p.r.LineTo(x, MapY(y2v, yr.Min, yr.Max, area.Top, area.Bottom))
	p.r.Stroke()
	p.r.SetStrokeDashArray(nil)
}

// AnnotateBelow places a framed multi-line textbox centered under avoid
// (normally the legend), clamped to the plot area.
func (p *Plot) AnnotateBelow(avoid chart.Box, lines []string) {
	area := p.Area()

	p.r.SetFontSize(p.cfg.FontSize)

	const padding = 8

	maxW, rowH := 0, 0

	for _, line := range lines {
		tb := p.r.MeasureText(line)

		if tb.Width() > maxW {
			maxW = tb.Width()
		}

		if tb.Height() > rowH {
			rowH = tb.Height()
		}
	}

	rowH += 6

	w := maxW + 2*padding
	h := len(lines)*rowH + 2*padding

	left := avoid.Left + (avoid.Width()-w)/2
	top := avoid.Bottom + 12

	if left < area.Left+4 {
		left = area.Left + 4
	}

	if left+w > area.Right-4 {
		left = area.Right - 4 - w
	}

	if top+h > area.Bottom-4 {
		top = area.Bottom - 4 - h
	}

	if top < area.Top+4 {
		top = area.Top + 4
	}

	box := chart.Box{Left: left, Top: top, Right: left + w, Bottom: top + h}

	p.fill(box, drawing.ColorWhite)
	p.frame(box, p.cfg.FrameColor, 1)

	p.r.SetFontColor(p.cfg.TextColor)

	for i, line := range lines {
		p.r.Text(line, left+padding, top+padding+(i+1)*rowH-4)
	}
}

func (p *Plot) Write(w io.Writer) error {
	return p.r.Save(w)
}

func (p *Plot) SaveFile(fileName string) (err error) {
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

	err = p.r.Save(f)

	return
}
