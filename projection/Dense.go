package projection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DenseProjection is a Projection holding a full feature vector, the
// representation produced by dense projectors such as radial basis
// functions or the identity
type DenseProjection struct {
	features *mat.VecDense
}

// NewDense returns a DenseProjection over a copy of features
func NewDense(features mat.Vector) *DenseProjection {
	out := mat.NewVecDense(features.Len(), nil)
	out.CopyVec(features)
	return &DenseProjection{out}
}

// Dim returns the dimension of the feature space
func (d *DenseProjection) Dim() int {
	return d.features.Len()
}

// Expanded returns the Projection as a dense vector of dimension dim,
// zero-padded past the Projection's own dimension
func (d *DenseProjection) Expanded(dim int) *mat.VecDense {
	checkExpandDim(dim, d.features.Len())

	out := mat.NewVecDense(dim, nil)
	for i := 0; i < d.features.Len(); i++ {
		out.SetVec(i, d.features.AtVec(i))
	}
	return out
}

// Dot returns the dot product of the Projection with theta
func (d *DenseProjection) Dot(theta mat.Vector) float64 {
	if theta.Len() != d.features.Len() {
		panic(fmt.Sprintf("dot: incompatible dimensions \n\twant(%d) "+
			"\n\thave(%d)", d.features.Len(), theta.Len()))
	}
	return mat.Dot(d.features, theta)
}

// ScaledAddTo adds the Projection, scaled by alpha, into dst
func (d *DenseProjection) ScaledAddTo(alpha float64, dst *mat.VecDense) {
	if dst.Len() != d.features.Len() {
		panic(fmt.Sprintf("scaledAddTo: incompatible dimensions "+
			"\n\twant(%d) \n\thave(%d)", d.features.Len(), dst.Len()))
	}
	dst.AddScaledVec(dst, alpha, d.features)
}
