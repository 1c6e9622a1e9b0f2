// Package lfa implements linear value-function approximation
package lfa

import (
	"fmt"

	"github.com/golfa-rl/golfa/buffer"
	"github.com/golfa-rl/golfa/projection"
	"github.com/golfa-rl/golfa/utils/matutils/initializers/weights"
	"gonum.org/v1/gonum/mat"
)

// LFA approximates a scalar value function as the dot product of a
// projected feature vector and a learned weight vector theta. The
// weight vector is sized to the projector's feature space at
// construction and is mutated only through UpdatePhi, so evaluations
// always see a consistent snapshot of theta.
type LFA struct {
	projector projection.Projector
	theta     *buffer.Dense
}

// New returns a new LFA over the feature space of p, with theta
// initialized by init. A nil init leaves theta zero-valued.
func New(p projection.Projector, init weights.Initializer) *LFA {
	theta := buffer.NewDense(p.Dim())
	if init != nil {
		init.Initialize(theta.RawVec())
	}
	return &LFA{p, theta}
}

// Dim returns the dimension of theta
func (l *LFA) Dim() int {
	return l.theta.Dim()
}

// Evaluate projects state and returns the current value estimate. If
// the projector cannot represent the state, an error is returned
// rather than a default value, since treating an unrepresentable
// state as value 0 would corrupt the learning signal.
func (l *LFA) Evaluate(state mat.Vector) (float64, error) {
	phi, err := l.projector.Project(state)
	if err != nil {
		return 0, fmt.Errorf("evaluate: cannot represent state: %v", err)
	}
	return l.EvaluatePhi(phi), nil
}

// EvaluatePhi returns the value estimate for a precomputed projection
func (l *LFA) EvaluatePhi(phi projection.Projection) float64 {
	return phi.Dot(l.theta.Vector())
}

// UpdatePhi folds phi, scaled by delta, into theta. This is the only
// mutation point for theta.
func (l *LFA) UpdatePhi(phi projection.Projection, delta float64) {
	phi.ScaledAddTo(delta, l.theta.RawVec())
}

// Projector returns the projector the LFA evaluates states through
func (l *LFA) Projector() projection.Projector {
	return l.projector
}

// Weights returns theta for inspection or serialization by the
// caller. The returned Buffer is the live weight vector, not a copy.
func (l *LFA) Weights() *buffer.Dense {
	return l.theta
}
