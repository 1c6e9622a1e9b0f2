package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDenseAddTo(t *testing.T) {
	d := DenseOf([]float64{1.0, -2.0, 3.0})
	dst := mat.NewVecDense(3, []float64{0.5, 0.5, 0.5})

	d.AddTo(dst)

	assert.Equal(t, []float64{1.5, -1.5, 3.5}, dst.RawVector().Data)
}

func TestDenseScaledAddTo(t *testing.T) {
	d := DenseOf([]float64{1.0, -2.0, 3.0})
	dst := mat.NewVecDense(3, nil)

	d.ScaledAddTo(0.5, dst)

	assert.Equal(t, []float64{0.5, -1.0, 1.5}, dst.RawVector().Data)
}

func TestDenseAddToDimensionMismatchPanics(t *testing.T) {
	d := NewDense(3)
	dst := mat.NewVecDense(4, nil)

	assert.Panics(t, func() { d.AddTo(dst) })
	assert.Panics(t, func() { d.ScaledAddTo(1.0, dst) })
}

func TestDenseMapMatchesMapInPlace(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }
	d := DenseOf([]float64{1.0, -2.0, 3.0})

	mapped := d.Map(f)

	inPlace := d.Copy()
	inPlace.MapInPlace(f)

	assert.Equal(t, inPlace, mapped)

	// The copying path must not touch the receiver
	assert.Equal(t, 1.0, d.AtVec(0))
}

func TestDenseMerge(t *testing.T) {
	a := DenseOf([]float64{1.0, 2.0, 3.0})
	b := DenseOf([]float64{10.0, 20.0, 30.0})

	sum := a.Merge(b, func(x, y float64) float64 { return x + y })

	require.Equal(t, a.Dim(), sum.Dim())
	assert.Equal(t, 11.0, sum.(*Dense).AtVec(0))
	assert.Equal(t, 22.0, sum.(*Dense).AtVec(1))
	assert.Equal(t, 33.0, sum.(*Dense).AtVec(2))

	// Operands unchanged
	assert.Equal(t, 1.0, a.AtVec(0))
	assert.Equal(t, 10.0, b.AtVec(0))
}

func TestDenseMergeDimensionMismatchPanics(t *testing.T) {
	a := NewDense(3)
	b := NewDense(4)

	add := func(x, y float64) float64 { return x + y }
	assert.Panics(t, func() { a.Merge(b, add) })
	assert.Panics(t, func() { a.MergeInPlace(b, add) })
}

func TestDenseMergeDifferentBackingPanics(t *testing.T) {
	a := NewDense(3)
	b := NewTile(3)

	assert.Panics(t, func() {
		a.MergeInPlace(b, func(x, y float64) float64 { return x + y })
	})
}

func TestDenseCopyIsIndependent(t *testing.T) {
	a := DenseOf([]float64{1.0, 2.0})
	b := a.Copy().(*Dense)

	b.SetVec(0, -1.0)

	assert.Equal(t, 1.0, a.AtVec(0))
	assert.Equal(t, -1.0, b.AtVec(0))
}
