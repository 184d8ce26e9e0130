// Package minbeam computes the smallest-area ellipse that encloses a set of
// ellipses ("beams"), such as the restoring beams of a collection of radio
// images that are to be summarized by a single conservative resolution
// element.
//
// Each beam is described by its full major axis, full minor axis, and
// position angle in radians, and is centered at the origin. [MinBeam]
// returns the enclosing ellipse in the same form; [Enclose] additionally
// exposes search options and diagnostics.
//
// # Method
//
// The solver works on the string construction of the ellipse: for a pair of
// foci, the smallest ellipse containing a point set has a major axis equal
// to the largest sum of distances from any point to the two foci. Every
// input boundary is densely sampled, and the area implied by that maximal
// "string length" is minimized over the two free parameters, focal
// separation and focal-axis orientation, with basin hopping: Nelder–Mead
// local refinement, random perturbation, and a Metropolis accept/reject
// test, all inside the box [0, 2·maxMajor] × [0, π].
//
// The search is a stochastic heuristic with a fixed iteration budget and
// does not guarantee a global optimum. Reproducibility requires passing an
// explicitly seeded source in [Options.Src].
//
// [Plot] renders the inputs and the result with gonum/plot.
package minbeam
