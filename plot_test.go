package minbeam

import (
	"math"
	"testing"
)

func TestOutlineClosed(t *testing.T) {
	xys := outline(Beam{Major: 6, Minor: 3, PA: 0.5})
	if len(xys) != outlineSamples+1 {
		t.Fatalf("got %d vertices, expected %d", len(xys), outlineSamples+1)
	}
	if xys[0] != xys[len(xys)-1] {
		t.Error("outline is not closed")
	}
}

func TestPlotLimits(t *testing.T) {
	beams := []Beam{{Major: 4, Minor: 2, PA: 0.3}}
	enclosing := Beam{Major: 5, Minor: 3, PA: 0.3}
	p, err := Plot(beams, enclosing)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}
	lim := 1.2 * enclosing.Major
	if !approxEqual(p.X.Min, -lim) || !approxEqual(p.X.Max, lim) {
		t.Errorf("x limits (%v, %v), expected ±%v", p.X.Min, p.X.Max, lim)
	}
	if !approxEqual(p.Y.Min, -lim) || !approxEqual(p.Y.Max, lim) {
		t.Errorf("y limits (%v, %v), expected ±%v", p.Y.Min, p.Y.Max, lim)
	}
}
