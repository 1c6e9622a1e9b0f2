// Package trace implements eligibility traces for backward-view
// temporal-difference learning
package trace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Trace is a decaying memory of recently active features. Each step,
// the stored vector is first decayed and then the freshly projected
// features are folded in; decaying the stale trace before adding the
// new activation prevents the current features from being
// double-counted within a step.
//
// A Trace is pre-sized at construction to the dimension of the weight
// vector it will be used to update, so no reallocation happens on the
// hot path. The trace persists for the duration of one episode and is
// reset with Decay(0) at the terminal transition.
type Trace struct {
	lambda    float64
	v         *mat.VecDense
	replacing bool
}

// NewAccumulating returns an accumulating Trace with decay rate
// lambda over a feature space of dimension dim. Accumulating traces
// add fresh activations onto the decayed trace, so features active on
// consecutive steps build up credit beyond 1.
func NewAccumulating(lambda float64, dim int) *Trace {
	return newTrace(lambda, dim, false)
}

// NewReplacing returns a replacing Trace with decay rate lambda over
// a feature space of dimension dim. Replacing traces overwrite the
// entries of freshly active features instead of adding to them,
// capping the credit a feature can carry.
func NewReplacing(lambda float64, dim int) *Trace {
	return newTrace(lambda, dim, true)
}

func newTrace(lambda float64, dim int, replacing bool) *Trace {
	if lambda < 0.0 || lambda > 1.0 {
		panic(fmt.Sprintf("newTrace: lambda must be in [0, 1] "+
			"\n\thave(%v)", lambda))
	}
	if dim <= 0 {
		panic("newTrace: trace dimension must be positive")
	}
	return &Trace{lambda, mat.NewVecDense(dim, nil), replacing}
}

// Lambda returns the trace decay rate λ
func (t *Trace) Lambda() float64 {
	return t.lambda
}

// Len returns the dimension of the trace
func (t *Trace) Len() int {
	return t.v.Len()
}

// Decay multiplies the entire stored vector by rate. Decay(0) is the
// episodic hard reset.
func (t *Trace) Decay(rate float64) {
	if rate < 0.0 || rate > 1.0 {
		panic(fmt.Sprintf("decay: rate must be in [0, 1] \n\thave(%v)",
			rate))
	}
	t.v.ScaleVec(rate, t.v)
}

// Update folds an expanded projection into the already decayed trace
func (t *Trace) Update(phi *mat.VecDense) {
	if phi.Len() != t.v.Len() {
		panic(fmt.Sprintf("update: incompatible dimensions \n\twant(%d) "+
			"\n\thave(%d)", t.v.Len(), phi.Len()))
	}

	if !t.replacing {
		t.v.AddVec(t.v, phi)
		return
	}
	for i := 0; i < phi.Len(); i++ {
		if value := phi.AtVec(i); value != 0.0 {
			t.v.SetVec(i, value)
		}
	}
}

// Get returns a read-only view of the current trace content
func (t *Trace) Get() mat.Vector {
	return t.v
}
