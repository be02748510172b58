package colormap

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// LegendMin and LegendMax bound the legend's percent axis.
	LegendMin = -100.0
	LegendMax = 100.0

	legendLabel = "Deviation from Reference (%)"
)

// LegendPNG renders a horizontal colour bar for the named colormap over
// [LegendMin, LegendMax] and returns the PNG bytes.
func LegendPNG(name string) ([]byte, error) {
	cm, err := newColorMap(name, LegendMin, LegendMax)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.HideY()
	p.X.Padding = 0
	p.X.Label.Text = legendLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(10)
	p.X.Tick.Label.Font.Size = vg.Points(8)
	p.Add(&plotter.ColorBar{ColorMap: cm})

	w, err := p.WriterTo(6*vg.Inch, 0.9*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("unable to prepare legend canvas: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("unable to render legend: %w", err)
	}
	return buf.Bytes(), nil
}
