// Package rbf implements radial-basis-function projectors
package rbf

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/golfa-rl/golfa/projection"
)

// RBF projects a state into a dense feature space of Gaussian radial
// basis functions. Each feature is the response of one basis
// function, exp(-‖s − c‖² / (2σ²)), for a centre c sampled uniformly
// over the bounded state space at construction. When normalized, the
// responses are scaled to sum to one.
//
// RBF satisfies the projection.Projector interface. It is stateless
// after construction and may be shared across learners.
type RBF struct {
	centers    [][]float64
	bandwidth  float64
	stateDims  int
	normalized bool
}

// New creates and returns a new RBF projector with numCenters basis
// functions of width bandwidth. The minDims and maxDims arguments
// bound the box the centres are sampled from and should have the same
// shape as vectors which will be projected.
func New(minDims, maxDims mat.Vector, numCenters int, bandwidth float64,
	seed uint64, normalized bool) *RBF {
	if minDims.Len() != maxDims.Len() {
		panic(fmt.Sprintf("cannot specify minimum with fewer dimensions "+
			"than maximum: %d != %d", minDims.Len(), maxDims.Len()))
	}
	if numCenters <= 0 {
		panic("cannot have less than 1 basis function")
	}
	if bandwidth <= 0.0 {
		panic(fmt.Sprintf("bandwidth must be positive \n\thave(%v)",
			bandwidth))
	}

	bounds := make([]r1.Interval, minDims.Len())
	for i := range bounds {
		bounds[i] = r1.Interval{Min: minDims.AtVec(i), Max: maxDims.AtVec(i)}
	}

	// Sample basis centres uniformly over the state box
	source := rand.NewSource(seed)
	u := distmv.NewUniform(bounds, source)
	sampler := samplemv.IID{Dist: u}

	samples := mat.NewDense(numCenters, len(bounds), nil)
	sampler.Sample(samples)

	centers := make([][]float64, numCenters)
	for i := range centers {
		centers[i] = mat.Row(nil, i, samples)
	}

	return &RBF{centers, bandwidth, minDims.Len(), normalized}
}

// Project returns the dense feature representation of state. A state
// of the wrong dimension cannot be represented and returns an error.
func (r *RBF) Project(state mat.Vector) (projection.Projection, error) {
	if state.Len() != r.stateDims {
		return nil, fmt.Errorf("rbf: cannot project state of dimension "+
			"%d through %d-dimensional basis functions", state.Len(),
			r.stateDims)
	}

	s := make([]float64, state.Len())
	for i := range s {
		s[i] = state.AtVec(i)
	}

	activations := make([]float64, len(r.centers))
	for i, center := range r.centers {
		dist := floats.Distance(s, center, 2)
		activations[i] = math.Exp(-dist * dist /
			(2 * r.bandwidth * r.bandwidth))
	}

	if r.normalized {
		if total := floats.Sum(activations); total > 0 {
			floats.Scale(1/total, activations)
		}
	}

	return projection.NewDense(mat.NewVecDense(len(activations),
		activations)), nil
}

// Dim returns the number of basis functions in the projected space
func (r *RBF) Dim() int {
	return len(r.centers)
}

// String returns a string representation of an *RBF
func (r *RBF) String() string {
	return fmt.Sprintf("Centers %d  |  Bandwidth: %v", len(r.centers),
		r.bandwidth)
}
