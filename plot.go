package minbeam

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const outlineSamples = 256

// outline returns the beam's boundary as a closed polyline.
func outline(b Beam) plotter.XYs {
	xys := make(plotter.XYs, outlineSamples+1)
	for i := 0; i < outlineSamples; i++ {
		pt := b.At(2.0 * math.Pi * float64(i) / outlineSamples)
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	xys[outlineSamples] = xys[0]
	return xys
}

// Plot renders the input beams as faint unfilled outlines and the enclosing
// beam as a red outline, on symmetric axes spanning 1.2 times the enclosing
// major axis. Save the plot on a square canvas to keep the aspect equal,
// e.g. p.Save(6*vg.Inch, 6*vg.Inch, "beam.png").
func Plot(beams []Beam, enclosing Beam) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, b := range beams {
		line, err := plotter.NewLine(outline(b))
		if err != nil {
			return nil, fmt.Errorf("minbeam: beam %d outline: %w", i, err)
		}
		line.LineStyle.Color = color.NRGBA{A: 51}
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	line, err := plotter.NewLine(outline(enclosing))
	if err != nil {
		return nil, fmt.Errorf("minbeam: enclosing outline: %w", err)
	}
	line.LineStyle.Color = color.NRGBA{R: 255, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	lim := 1.2 * enclosing.Major
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	return p, nil
}
