package minbeam

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// DefaultIterations is the basin-hopping budget used when
// [Options.Iterations] is zero.
const DefaultIterations = 100

// Options configures the enclosing-beam search. The zero value is a valid
// configuration with the documented defaults.
type Options struct {
	// Samples is the number of boundary points sampled per beam.
	// Defaults to DefaultSamples.
	Samples int

	// Iterations is the basin-hopping budget. Defaults to
	// DefaultIterations.
	Iterations int

	// StepFraction sizes each hop as a fraction of the corresponding
	// search-bound span. Defaults to 0.25.
	StepFraction float64

	// Temperature is the Metropolis acceptance temperature. Defaults to
	// 1.0.
	Temperature float64

	// Timeout bounds the wall-clock time of the global search. The hop
	// loop stops at the deadline and the best point found so far is
	// decoded. Zero means no bound beyond the iteration budget.
	Timeout time.Duration

	// Src supplies the randomness for the global search, making results
	// reproducible. A fixed default source is used when nil.
	Src rand.Source
}

// Result is the outcome of an [Enclose] call.
type Result struct {
	// Beam is the minimal enclosing ellipse found.
	Beam Beam

	// Separation is the distance between the foci of Beam.
	Separation float64

	// Improved reports whether the global search ever accepted a point
	// better than the refined initial guess. False does not invalidate
	// Beam, but suggests the search added no confidence beyond the local
	// refinement.
	Improved bool

	// Evaluations counts objective evaluations spent by the search.
	Evaluations int
}

// MinBeam returns the smallest-area ellipse, centered at the origin, that
// encloses every input beam. It is [Enclose] with default options.
func MinBeam(beams []Beam) (Beam, error) {
	res, err := Enclose(beams, Options{})
	return res.Beam, err
}

// Enclose computes the minimal enclosing ellipse of the input beams.
//
// Each beam's boundary is densely sampled, and the search minimizes the
// area of the smallest ellipse with a given focal pair that contains every
// sample, over the focal separation in [0, 2·maxMajor] and the focal-axis
// orientation in [0, π]. The search is a stochastic global heuristic; it
// does not guarantee a global optimum within the iteration budget.
//
// Errors are limited to input validation: an empty collection or a beam
// with non-positive or ill-ordered axes.
func Enclose(beams []Beam, opts Options) (Result, error) {
	if err := validateBeams(beams); err != nil {
		return Result{}, err
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	stepFraction := opts.StepFraction
	if stepFraction <= 0 {
		stepFraction = 0.25
	}
	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = 1.0
	}
	src := opts.Src
	if src == nil {
		src = rand.NewSource(1)
	}

	points := sampleBoundaries(beams, samples)

	// The major axis is itself the maximal string length, so no enclosing
	// ellipse can have foci further apart than twice the largest input
	// major axis.
	var maxMajor float64
	for _, b := range beams {
		if b.Major > maxMajor {
			maxMajor = b.Major
		}
	}
	maxSep := 2.0 * maxMajor

	bounds := searchBounds{
		min: [2]float64{0.0, 0.0},
		max: [2]float64{maxSep, math.Pi},
	}
	cfg := hopConfig{
		iterations:  iterations,
		step:        [2]float64{stepFraction * maxSep, stepFraction * math.Pi},
		temperature: temperature,
		rng:         rand.New(src),
	}
	if opts.Timeout > 0 {
		cfg.deadline = time.Now().Add(opts.Timeout)
	}

	fn := areaObjective(points, bounds)
	hop := basinHop(fn, []float64{maxSep / 2.0, math.Pi / 2.0}, bounds, cfg)

	// Decode the winning parameters from the same point cloud, so the
	// returned axes are self-consistent with the returned orientation.
	sep, orientation := hop.x[0], hop.x[1]
	f1, f2 := Foci(sep, orientation)
	major := maxStringLength(points, f1, f2)
	disc := major*major - sep*sep
	if disc < 0 {
		disc = 0 // float error when sep ≈ major
	}
	return Result{
		Beam:        Beam{Major: major, Minor: math.Sqrt(disc), PA: orientation},
		Separation:  sep,
		Improved:    hop.improved,
		Evaluations: hop.evaluations,
	}, nil
}
