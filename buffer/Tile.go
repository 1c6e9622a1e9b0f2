package buffer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tile is a Buffer with at most one active cell. It models the
// activation of a single tile in a tile coding, where a state maps to
// exactly one cell per tiling no matter how large the tiled space is.
// Operations on a Tile never touch the inactive cells, so a Tile over
// a million-dimensional space costs the same as one over ten.
type Tile struct {
	dim    int
	index  int
	value  float64
	active bool
}

// NewTile returns a Tile Buffer of dimension dim with no active cell.
// A Tile with no active cell is an additive identity: it leaves any
// target unchanged under AddTo and ScaledAddTo.
func NewTile(dim int) *Tile {
	if dim <= 0 {
		panic("newTile: buffer dimension must be positive")
	}
	return &Tile{dim: dim}
}

// TileAt returns a Tile Buffer of dimension dim with value active at
// index
func TileAt(dim, index int, value float64) *Tile {
	if dim <= 0 {
		panic("tileAt: buffer dimension must be positive")
	}
	if index < 0 || index >= dim {
		panic(fmt.Sprintf("tileAt: active index out of range "+
			"\n\thave(%d) \n\twant([0, %d))", index, dim))
	}
	return &Tile{dim: dim, index: index, value: value, active: true}
}

// Dim returns the dimension of the Buffer
func (t *Tile) Dim() int {
	return t.dim
}

// Active returns the active cell of the Tile. If the Tile has no
// active cell, the last return value is false.
func (t *Tile) Active() (index int, value float64, ok bool) {
	return t.index, t.value, t.active
}

// AddTo adds the Tile's active value, if any, into dst at the active
// index
func (t *Tile) AddTo(dst *mat.VecDense) {
	checkDim("addTo", t.dim, dst.Len())
	if t.active {
		dst.SetVec(t.index, dst.AtVec(t.index)+t.value)
	}
}

// ScaledAddTo adds the Tile's active value scaled by alpha, if any,
// into dst at the active index
func (t *Tile) ScaledAddTo(alpha float64, dst *mat.VecDense) {
	checkDim("scaledAddTo", t.dim, dst.Len())
	if t.active {
		dst.SetVec(t.index, dst.AtVec(t.index)+alpha*t.value)
	}
}

// Map returns a new Tile with f applied to the active value, if any
func (t *Tile) Map(f func(float64) float64) Buffer {
	out := t.Copy()
	out.MapInPlace(f)
	return out
}

// MapInPlace applies f to the active value, if any, in place
func (t *Tile) MapInPlace(f func(float64) float64) {
	if t.active {
		t.value = f(t.value)
	}
}

// Merge returns a new Tile combining the receiver and other through f.
// The other Buffer must be a Tile of the same dimension, and both
// Tiles must be active at the same index.
func (t *Tile) Merge(other Buffer, f func(x, y float64) float64) Buffer {
	out := t.Copy()
	out.MergeInPlace(other, f)
	return out
}

// MergeInPlace combines other into the receiver through f. The other
// Buffer must be a Tile of the same dimension, and both Tiles must be
// active at the same index: merging tiles at different indices means
// two unrelated feature cells were paired, which is a programming
// error rather than something to densify around.
func (t *Tile) MergeInPlace(other Buffer, f func(x, y float64) float64) {
	o, ok := other.(*Tile)
	if !ok {
		panic("mergeInPlace: cannot merge buffers of different backings")
	}
	checkDim("mergeInPlace", t.dim, o.dim)

	if !t.active || !o.active {
		panic("mergeInPlace: cannot merge tiles without active cells")
	}
	if t.index != o.index {
		panic(fmt.Sprintf("mergeInPlace: incompatible active indices "+
			"\n\thave(%d) \n\thave(%d)", t.index, o.index))
	}
	t.value = f(t.value, o.value)
}

// Copy returns an independent copy of the Buffer
func (t *Tile) Copy() Buffer {
	out := *t
	return &out
}
