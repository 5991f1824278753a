package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Config struct {
	Width  int
	Height int

	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int

	GridRows int
	GridCols int

	Background drawing.Color
	FrameColor drawing.Color
	GridColor  drawing.Color
	TextColor  drawing.Color

	FontSize      float64
	TitleFontSize float64

	StrokeWidth float64
	DotRadius   float64
}

func DefaultConfig() Config {
	return Config{
		Width:         1350,
		Height:        750,
		MarginLeft:    90,
		MarginRight:   40,
		MarginTop:     60,
		MarginBottom:  80,
		GridRows:      5,
		GridCols:      5,
		Background:    drawing.ColorWhite,
		FrameColor:    drawing.ColorFromHex("666666"),
		GridColor:     drawing.ColorFromHex("d9d9d9"),
		TextColor:     drawing.ColorFromHex("333333"),
		FontSize:      12,
		TitleFontSize: 16,
		StrokeWidth:   2,
		DotRadius:     4,
	}
}
