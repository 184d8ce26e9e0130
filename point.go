package minbeam

import (
	"fmt"
	"math"
)

// Point is a 2D Cartesian point.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Neg returns the reflection of pt through the origin.
func (pt Point) Neg() Point {
	return Point{X: -pt.X, Y: -pt.Y}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
