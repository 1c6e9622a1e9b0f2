package buffer

import (
	"gonum.org/v1/gonum/mat"
)

// Dense is a Buffer backed by a full vector. It is the natural backing
// for weight vectors and eligibility traces, which stay dense even
// when the features folded into them are sparse.
type Dense struct {
	data *mat.VecDense
}

// NewDense returns a zero-valued Dense Buffer of dimension dim
func NewDense(dim int) *Dense {
	if dim <= 0 {
		panic("newDense: buffer dimension must be positive")
	}
	return &Dense{mat.NewVecDense(dim, nil)}
}

// DenseOf returns a Dense Buffer holding a copy of data
func DenseOf(data []float64) *Dense {
	if len(data) == 0 {
		panic("denseOf: buffer dimension must be positive")
	}
	backing := make([]float64, len(data))
	copy(backing, data)
	return &Dense{mat.NewVecDense(len(backing), backing)}
}

// Dim returns the dimension of the Buffer
func (d *Dense) Dim() int {
	return d.data.Len()
}

// Vector returns a read-only view of the Buffer's content
func (d *Dense) Vector() mat.Vector {
	return d.data
}

// RawVec returns the vector backing the Buffer. Changes made to the
// returned vector are reflected in the Buffer.
func (d *Dense) RawVec() *mat.VecDense {
	return d.data
}

// AtVec returns the value stored at index i
func (d *Dense) AtVec(i int) float64 {
	return d.data.AtVec(i)
}

// SetVec sets the value stored at index i
func (d *Dense) SetVec(i int, v float64) {
	d.data.SetVec(i, v)
}

// AddTo adds the Buffer's content elementwise into dst
func (d *Dense) AddTo(dst *mat.VecDense) {
	checkDim("addTo", d.Dim(), dst.Len())
	dst.AddVec(dst, d.data)
}

// ScaledAddTo adds the Buffer's content, scaled by alpha, elementwise
// into dst
func (d *Dense) ScaledAddTo(alpha float64, dst *mat.VecDense) {
	checkDim("scaledAddTo", d.Dim(), dst.Len())
	dst.AddScaledVec(dst, alpha, d.data)
}

// Map returns a new Dense Buffer with f applied to every element
func (d *Dense) Map(f func(float64) float64) Buffer {
	out := d.Copy()
	out.MapInPlace(f)
	return out
}

// MapInPlace applies f to every element of the Buffer in place
func (d *Dense) MapInPlace(f func(float64) float64) {
	for i := 0; i < d.data.Len(); i++ {
		d.data.SetVec(i, f(d.data.AtVec(i)))
	}
}

// Merge returns a new Dense Buffer combining the receiver and other
// elementwise through f. The other Buffer must be Dense and of the
// same dimension.
func (d *Dense) Merge(other Buffer, f func(x, y float64) float64) Buffer {
	out := d.Copy()
	out.MergeInPlace(other, f)
	return out
}

// MergeInPlace combines other into the receiver elementwise through f.
// The other Buffer must be Dense and of the same dimension.
func (d *Dense) MergeInPlace(other Buffer, f func(x, y float64) float64) {
	o, ok := other.(*Dense)
	if !ok {
		panic("mergeInPlace: cannot merge buffers of different backings")
	}
	checkDim("mergeInPlace", d.Dim(), o.Dim())

	for i := 0; i < d.data.Len(); i++ {
		d.data.SetVec(i, f(d.data.AtVec(i), o.data.AtVec(i)))
	}
}

// Copy returns an independent copy of the Buffer
func (d *Dense) Copy() Buffer {
	out := mat.NewVecDense(d.data.Len(), nil)
	out.CopyVec(d.data)
	return &Dense{out}
}
