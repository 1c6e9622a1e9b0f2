package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestTileWithoutActiveCellIsAdditiveIdentity(t *testing.T) {
	tile := NewTile(5)
	dst := mat.NewVecDense(5, []float64{1, 2, 3, 4, 5})

	tile.AddTo(dst)
	tile.ScaledAddTo(10.0, dst)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, dst.RawVector().Data)
}

func TestTileAddsExactlyOneValue(t *testing.T) {
	tile := TileAt(5, 2, 3.0)
	dst := mat.NewVecDense(5, nil)

	tile.AddTo(dst)

	assert.Equal(t, []float64{0, 0, 3.0, 0, 0}, dst.RawVector().Data)

	tile.ScaledAddTo(0.5, dst)

	assert.Equal(t, []float64{0, 0, 4.5, 0, 0}, dst.RawVector().Data)
}

func TestTileAddToDimensionMismatchPanics(t *testing.T) {
	tile := TileAt(5, 2, 3.0)
	dst := mat.NewVecDense(4, nil)

	assert.Panics(t, func() { tile.AddTo(dst) })
}

func TestTileActiveIndexOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { TileAt(5, 5, 1.0) })
	assert.Panics(t, func() { TileAt(5, -1, 1.0) })
}

func TestTileMapMatchesMapInPlace(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	tile := TileAt(5, 2, 3.0)

	mapped := tile.Map(f)

	inPlace := tile.Copy()
	inPlace.MapInPlace(f)

	assert.Equal(t, inPlace, mapped)

	_, value, _ := tile.Active()
	assert.Equal(t, 3.0, value)
}

func TestTileMapWithoutActiveCellIsNoOp(t *testing.T) {
	tile := NewTile(5)
	tile.MapInPlace(func(x float64) float64 { return x + 1 })

	_, _, active := tile.Active()
	assert.False(t, active)
}

func TestTileMergeSameIndex(t *testing.T) {
	a := TileAt(5, 2, 3.0)
	b := TileAt(5, 2, 4.0)

	sum := a.Merge(b, func(x, y float64) float64 { return x + y })

	assert.Equal(t, a.Dim(), sum.Dim())

	index, value, active := sum.(*Tile).Active()
	assert.True(t, active)
	assert.Equal(t, 2, index)
	assert.Equal(t, 7.0, value)
}

func TestTileMergeDifferentIndicesPanics(t *testing.T) {
	a := TileAt(5, 2, 3.0)
	b := TileAt(5, 3, 4.0)

	assert.Panics(t, func() {
		a.Merge(b, func(x, y float64) float64 { return x + y })
	})
}

func TestTileMergeDimensionMismatchPanics(t *testing.T) {
	a := TileAt(5, 2, 3.0)
	b := TileAt(6, 2, 4.0)

	assert.Panics(t, func() {
		a.Merge(b, func(x, y float64) float64 { return x + y })
	})
}

func TestTileMergeWithoutActiveCellPanics(t *testing.T) {
	a := TileAt(5, 2, 3.0)
	b := NewTile(5)

	assert.Panics(t, func() {
		a.Merge(b, func(x, y float64) float64 { return x + y })
	})
}
