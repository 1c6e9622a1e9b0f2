// Package buffer implements additive accumulators over fixed-dimension
// feature spaces
package buffer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Buffer is a fixed-dimension additive accumulator. A Buffer either
// stores a full vector of values (Dense) or at most a single active
// cell (Tile), but both expose the same algebra so that learning code
// can fold a sparse tile activation and a dense weight vector through
// one interface without ever materializing the sparse side.
//
// All binary operations require operands of identical dimension and
// identical backing. A mismatch is a programming error in how feature
// spaces were paired and results in a panic, never a silent coercion.
type Buffer interface {
	// Dim returns the dimension of the space the Buffer accumulates
	// over
	Dim() int

	// AddTo adds the Buffer's content into dst, which must have the
	// same dimension as the Buffer
	AddTo(dst *mat.VecDense)

	// ScaledAddTo adds the Buffer's content, scaled by alpha, into
	// dst, which must have the same dimension as the Buffer
	ScaledAddTo(alpha float64, dst *mat.VecDense)

	// Map returns a new Buffer with f applied to each stored value
	Map(f func(float64) float64) Buffer

	// MapInPlace applies f to each stored value in place
	MapInPlace(f func(float64) float64)

	// Merge returns a new Buffer combining the receiver and other
	// elementwise through f
	Merge(other Buffer, f func(x, y float64) float64) Buffer

	// MergeInPlace combines other into the receiver elementwise
	// through f
	MergeInPlace(other Buffer, f func(x, y float64) float64)

	// Copy returns an independent copy of the Buffer
	Copy() Buffer
}

// checkDim panics if two buffer dimensions are incompatible
func checkDim(op string, want, have int) {
	if want != have {
		panic(fmt.Sprintf("%v: incompatible buffer dimensions "+
			"\n\twant(%d) \n\thave(%d)", op, want, have))
	}
}
