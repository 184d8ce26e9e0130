package minbeam

import (
	"math"
	"slices"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/optimize"
)

// searchBounds is the box constraint for the two search parameters, focal
// separation and focal-axis orientation.
type searchBounds struct {
	min [2]float64
	max [2]float64
}

// contains reports whether the candidate lies inside the box. It is the
// accept test applied to every proposal before the objective is evaluated.
func (b searchBounds) contains(x []float64) bool {
	for i, v := range x {
		if v < b.min[i] || v > b.max[i] {
			return false
		}
	}
	return true
}

// areaObjective returns the scalar minimized by the global search: the area
// of the smallest ellipse with foci at separation x[0] and orientation x[1]
// that contains every point of the cloud.
//
// Out-of-bounds candidates return +Inf before any geometry is evaluated.
// The minor-axis discriminant s²−sep² is non-negative for any point set
// (string length ≥ focal separation by the triangle inequality), but a
// non-positive value from floating-point error is likewise treated as
// infeasible rather than fed to Sqrt.
func areaObjective(points []Point, b searchBounds) func(x []float64) float64 {
	return func(x []float64) float64 {
		if !b.contains(x) {
			return math.Inf(1)
		}
		sep, orientation := x[0], x[1]
		f1, f2 := Foci(sep, orientation)
		s := maxStringLength(points, f1, f2)
		disc := s*s - sep*sep
		if disc <= 0 {
			return math.Inf(1)
		}
		return math.Pi / 4.0 * s * math.Sqrt(disc)
	}
}

// localMin refines x0 with a gradient-free Nelder–Mead descent. The
// objective is a max of distance sums and only piecewise-smooth.
//
// Returns the refined point, its value, and the number of function
// evaluations spent.
func localMin(fn func(x []float64) float64, x0 []float64) ([]float64, float64, int) {
	problem := optimize.Problem{Func: fn}
	settings := &optimize.Settings{
		MajorIterations: 200,
		FuncEvaluations: 500,
	}
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil || res == nil {
		x := slices.Clone(x0)
		return x, fn(x), 1
	}
	return res.X, res.F, res.Stats.FuncEvaluations
}

type hopConfig struct {
	iterations  int
	step        [2]float64 // per-coordinate half-width of the uniform perturbation
	temperature float64    // Metropolis temperature
	rng         *rand.Rand
	deadline    time.Time // zero means no wall-clock bound
}

type hopResult struct {
	x           []float64
	f           float64
	improved    bool // whether any hop beat the refined initial guess
	evaluations int
}

// basinHop globally minimizes fn over the box b: local refinement of the
// initial guess, then repeated random perturbation of the current anchor,
// refinement, and a Metropolis accept/reject test. Proposals outside the
// box are rejected before evaluation. The best in-bounds point seen is
// returned regardless of which anchors were accepted.
func basinHop(fn func(x []float64) float64, guess []float64, b searchBounds, cfg hopConfig) hopResult {
	curX, curF, ev := localMin(fn, guess)
	if !b.contains(curX) {
		// Refinement drifted out of the box; fall back to the guess.
		curX = slices.Clone(guess)
		curF = fn(curX)
		ev++
	}
	res := hopResult{x: slices.Clone(curX), f: curF, evaluations: ev}
	initF := curF

	for i := 0; i < cfg.iterations; i++ {
		if !cfg.deadline.IsZero() && !time.Now().Before(cfg.deadline) {
			break
		}
		prop := []float64{
			curX[0] + cfg.step[0]*(2.0*cfg.rng.Float64()-1.0),
			curX[1] + cfg.step[1]*(2.0*cfg.rng.Float64()-1.0),
		}
		if !b.contains(prop) {
			continue
		}
		candX, candF, n := localMin(fn, prop)
		res.evaluations += n
		if !b.contains(candX) {
			continue
		}
		if candF < res.f {
			res.f = candF
			res.x = slices.Clone(candX)
		}
		if candF <= curF || cfg.rng.Float64() < math.Exp(-(candF-curF)/cfg.temperature) {
			curX, curF = candX, candF
		}
	}
	res.improved = res.f < initF
	return res
}
