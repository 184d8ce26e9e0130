package minbeam

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSamples is the number of boundary points sampled per beam when
// [Options.Samples] is zero. Higher densities tighten the enclosure at
// proportional cost.
const DefaultSamples = 1000

// ErrNoBeams is returned when the input collection is empty.
var ErrNoBeams = errors.New("minbeam: no beams")

// Beam is an ellipse centered at the origin, described by its full major and
// minor axis lengths and its position angle in radians, measured
// counterclockwise from the x axis.
type Beam struct {
	Major float64
	Minor float64
	PA    float64
}

func (b Beam) String() string {
	return fmt.Sprintf("Beam(major=%g, minor=%g, pa=%g)", b.Major, b.Minor, b.PA)
}

// validate reports whether the beam describes a usable input ellipse.
func (b Beam) validate() error {
	switch {
	case math.IsNaN(b.Major) || math.IsNaN(b.Minor) || math.IsNaN(b.PA):
		return errors.New("axis or angle is NaN")
	case b.Minor <= 0:
		return fmt.Errorf("minor axis %g is not positive", b.Minor)
	case b.Major < b.Minor:
		return fmt.Errorf("major axis %g is smaller than minor axis %g", b.Major, b.Minor)
	}
	return nil
}

// Area returns the area of the ellipse, π/4·major·minor.
func (b Beam) Area() float64 {
	return math.Pi / 4.0 * b.Major * b.Minor
}

// Contains reports whether pt lies inside or on the beam's boundary.
//
// The point is rotated into the beam's own frame and tested against the
// axis-aligned ellipse equation, the inverse-transform counterpart of the
// parametric form used by [Beam.Boundary].
func (b Beam) Contains(pt Point) bool {
	sin, cos := math.Sincos(b.PA)
	u := (pt.X*cos + pt.Y*sin) / (b.Major / 2.0)
	v := (-pt.X*sin + pt.Y*cos) / (b.Minor / 2.0)
	return u*u+v*v <= 1.0
}

// At returns the boundary point at parametric angle phi.
func (b Beam) At(phi float64) Point {
	sinT, cosT := math.Sincos(b.PA)
	sinP, cosP := math.Sincos(phi)
	a := b.Major / 2.0 * cosP
	c := b.Minor / 2.0 * sinP
	return Point{
		X: a*cosT - c*sinT,
		Y: a*sinT + c*cosT,
	}
}

// Boundary samples k points on the beam's boundary, evenly spaced in the
// parametric angle over [0, 2π).
func (b Beam) Boundary(k int) []Point {
	pts := make([]Point, k)
	for i := range pts {
		pts[i] = b.At(2.0 * math.Pi * float64(i) / float64(k))
	}
	return pts
}

// validateBeams checks the whole input collection, wrapping the offending
// beam's index into the error.
func validateBeams(beams []Beam) error {
	if len(beams) == 0 {
		return ErrNoBeams
	}
	for i, b := range beams {
		if err := b.validate(); err != nil {
			return fmt.Errorf("minbeam: beam %d: %w", i, err)
		}
	}
	return nil
}

// sampleBoundaries concatenates k boundary samples of every beam, in input
// order, into a single point cloud. The cloud's convex hull approximates the
// union boundary of the beams to within the sampling resolution; every
// sample lies exactly on an input boundary.
func sampleBoundaries(beams []Beam, k int) []Point {
	pts := make([]Point, 0, len(beams)*k)
	for _, b := range beams {
		pts = append(pts, b.Boundary(k)...)
	}
	return pts
}
