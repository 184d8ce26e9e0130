package minbeam

import "math"

// Foci returns the two focal points of an ellipse whose foci are sep apart
// and whose focal axis makes the angle orientation (radians) with the x
// axis. The foci are placed symmetrically about the origin.
func Foci(sep, orientation float64) (Point, Point) {
	sin, cos := math.Sincos(orientation)
	f1 := Point{X: sep / 2.0 * cos, Y: sep / 2.0 * sin}
	return f1, f1.Neg()
}

// stringLength returns the sum of the distances from pt to each focus. For
// a point on an ellipse with these foci this is the ellipse's full major
// axis; the name comes from the string-and-pins construction.
func stringLength(pt, f1, f2 Point) float64 {
	return pt.Distance(f1) + pt.Distance(f2)
}

// maxStringLength returns the largest string length over the point set.
// This is the major axis of the smallest ellipse with foci f1, f2 that
// contains every point.
func maxStringLength(pts []Point, f1, f2 Point) float64 {
	var max float64
	for _, pt := range pts {
		if s := stringLength(pt, f1, f2); s > max {
			max = s
		}
	}
	return max
}
