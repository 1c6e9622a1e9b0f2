// Package projection implements feature-space representations of
// environment states and the projectors that produce them
package projection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Projection is the feature-space representation of a raw state,
// produced fresh by a Projector for each evaluation. A Projection is
// either dense (a full feature vector) or sparse (an index set with
// activations), and linear learning code treats both uniformly
// through this interface.
type Projection interface {
	// Dim returns the dimension of the feature space the Projection
	// lives in
	Dim() int

	// Expanded returns the Projection as a dense vector of dimension
	// dim, which must be at least the Projection's own dimension
	Expanded(dim int) *mat.VecDense

	// Dot returns the dot product of the Projection with a weight
	// vector of matching dimension
	Dot(theta mat.Vector) float64

	// ScaledAddTo adds the Projection, scaled by alpha, into dst
	ScaledAddTo(alpha float64, dst *mat.VecDense)
}

// Projector maps raw environment states into a feature space. A
// Projector is stateless after construction and may be shared
// immutably across learners.
type Projector interface {
	// Project returns the feature representation of state, or an
	// error if the Projector cannot represent the state
	Project(state mat.Vector) (Projection, error)

	// Dim returns the dimension of the feature space states are
	// projected into
	Dim() int
}

// checkExpandDim panics if a Projection of dimension have cannot be
// expanded into a dense vector of dimension want
func checkExpandDim(want, have int) {
	if want < have {
		panic(fmt.Sprintf("expanded: cannot expand projection into a "+
			"smaller space \n\twant(>= %d) \n\thave(%d)", have, want))
	}
}
