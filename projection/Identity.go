package projection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Identity is a Projector that uses a state's own components as its
// features, the representation of a plain linear model over the raw
// state
type Identity struct {
	dims int
}

// NewIdentity returns an Identity projector over states of dimension
// dims
func NewIdentity(dims int) *Identity {
	if dims <= 0 {
		panic("newIdentity: state dimension must be positive")
	}
	return &Identity{dims}
}

// Project returns state as a dense projection of itself. A state of
// the wrong dimension cannot be represented and returns an error.
func (id *Identity) Project(state mat.Vector) (Projection, error) {
	if state.Len() != id.dims {
		return nil, fmt.Errorf("identity: cannot project state of "+
			"dimension %d as a %d-dimensional feature vector", state.Len(),
			id.dims)
	}
	return NewDense(state), nil
}

// Dim returns the dimension of the feature space
func (id *Identity) Dim() int {
	return id.dims
}
