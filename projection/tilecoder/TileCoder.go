// Package tilecoder implements tile-coding projectors
package tilecoder

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/golfa-rl/golfa/buffer"
	"github.com/golfa-rl/golfa/projection"
	"github.com/golfa-rl/golfa/utils/floatutils"
)

// Controls tiling offsets. For each dimension, tilings are offset by
// randomly sampling from a uniform distribution with support
// [- tiling width/OffsetDiv, tiling width/OffsetDiv]
const OffsetDiv float64 = 1.5

// TileCoder projects a low-dimensional state into a large, sparse
// binary feature space. The state space is covered by a number of
// offset tilings; within each tiling, a state falls into exactly one
// tile, so a projection has exactly one unit activation per tiling
// (plus an optional bias unit). Tile coding requires that the space
// to be tiled be bounded.
//
// TileCoder satisfies the projection.Projector interface. It is
// stateless after construction and may be shared across learners.
type TileCoder struct {
	numTilings  int
	minDims     mat.Vector
	offsets     []*mat.Dense
	bins        [][]int
	binLengths  [][]float64
	includeBias bool
}

// New creates and returns a new TileCoder. The minDims and maxDims
// arguments are the bounds on each dimension between which tilings
// will be placed. These arguments should have the same shape as
// vectors which will be projected.
//
// The bins argument determines both the number of tilings to use and
// the number of tiles per each tiling. The number of elements in the
// outer slice determines the number of tilings. The sub-slices
// determine how many tiles are placed along each dimension for the
// respective tiling. For example, if bins := [][]int{{2, 2}, {4, 3}},
// then the TileCoder uses two tilings: a 2x2 tiling, and a tiling
// with 4 tiles along the first dimension and 3 along the second.
//
// The parameter includeBias determines whether or not a bias unit is
// kept as the first unit in the feature space.
func New(minDims, maxDims mat.Vector, bins [][]int, seed uint64,
	includeBias bool) *TileCoder {
	if minDims.Len() != maxDims.Len() {
		panic(fmt.Sprintf("cannot specify minimum with fewer dimensions "+
			"than maximum: %d != %d", minDims.Len(), maxDims.Len()))
	}
	if len(bins) == 0 {
		panic("cannot have less than 1 bin per dimension")
	}
	for i := range bins {
		if len(bins[i]) != minDims.Len() {
			panic(fmt.Sprintf("there should be a single number of bins "+
				"for each dimension: \n\thave(%d) \n\twant(%d)",
				len(bins[i]), minDims.Len()))
		}
	}

	// Calculate the length of bins and the tiling offset bounds
	var bounds []r1.Interval
	numTilings := len(bins)
	binLengths := make([][]float64, numTilings)

	for j := 0; j < numTilings; j++ {
		binLengths[j] = make([]float64, minDims.Len())

		for i := 0; i < minDims.Len(); i++ {
			binLength := (maxDims.AtVec(i) - minDims.AtVec(i))
			binLength /= float64(bins[j][i])
			bound := binLength / OffsetDiv // Bounds tiling offsets

			binLengths[j][i] = binLength
			bounds = append(bounds, r1.Interval{Min: -bound, Max: bound})
		}
	}

	// Create RNG for uniform sampling of tiling offsets
	source := rand.NewSource(seed)
	u := distmv.NewUniform(bounds, source)
	sampler := samplemv.IID{Dist: u}

	// Calculate offsets
	var offsets []*mat.Dense
	for i := 0; i < numTilings; i++ {
		samples := mat.NewDense(1, len(bounds), nil)
		sampler.Sample(samples)

		offsets = append(offsets, samples)
	}

	return &TileCoder{numTilings, minDims, offsets, bins, binLengths,
		includeBias}
}

// featuresBeforeTiling calculates how many features exist in the
// feature space before tiling number i
func (t *TileCoder) featuresBeforeTiling(i int) int {
	features := 0
	for j := 0; j < i; j++ {
		features += prod(t.bins[j])
	}
	return features
}

// indexFor returns the index of the single active feature when v is
// encoded with tiling number tiling
func (t *TileCoder) indexFor(v mat.Vector, tiling int) int {
	bias := 0
	if t.includeBias {
		bias = 1
	}

	// indexOffset is the index into the feature space at which the
	// current tiling starts
	indexOffset := t.featuresBeforeTiling(tiling)
	index := 0

	// We loop through each state dimension to calculate the tile
	// index along that dimension
	for i := len(t.bins[tiling]) - 1; i > -1; i-- {
		// Offset the tiling
		data := v.AtVec(i) + t.offsets[tiling].At(0, i)

		// Calculate the tile along the current dimension in which
		// the feature falls
		tile := math.Floor((data - t.minDims.AtVec(i)) /
			t.binLengths[tiling][i])

		// If out-of-bounds, use the edge tile
		tile = floatutils.Clip(tile, 0.0, float64(t.bins[tiling][i]-1))

		tileIndex := int(tile)
		if i == len(t.bins[tiling])-1 {
			index += tileIndex
		} else {
			index += tileIndex * t.bins[tiling][i+1]
		}
	}
	return indexOffset + index + bias
}

// Project returns the sparse feature representation of state: a unit
// activation for the active tile of each tiling, plus the bias unit
// if one is used. A state of the wrong dimension cannot be
// represented and returns an error.
func (t *TileCoder) Project(state mat.Vector) (projection.Projection, error) {
	if state.Len() != t.minDims.Len() {
		return nil, fmt.Errorf("tilecoder: cannot project state of "+
			"dimension %d into %d-dimensional tilings", state.Len(),
			t.minDims.Len())
	}

	indices := make([]int, 0, t.numTilings+1)
	if t.includeBias {
		indices = append(indices, 0)
	}
	for tiling := 0; tiling < t.numTilings; tiling++ {
		indices = append(indices, t.indexFor(state, tiling))
	}

	return projection.NewBinarySparse(t.Dim(), indices)
}

// ProjectTiles returns the activation of state as one single-cell
// Tile buffer per tiling. The tiles can be recombined into a sparse
// projection with projection.FromTiles.
func (t *TileCoder) ProjectTiles(state mat.Vector) ([]*buffer.Tile, error) {
	if state.Len() != t.minDims.Len() {
		return nil, fmt.Errorf("tilecoder: cannot project state of "+
			"dimension %d into %d-dimensional tilings", state.Len(),
			t.minDims.Len())
	}

	tiles := make([]*buffer.Tile, t.numTilings)
	for tiling := 0; tiling < t.numTilings; tiling++ {
		tiles[tiling] = buffer.TileAt(t.Dim(), t.indexFor(state, tiling), 1.0)
	}
	return tiles, nil
}

// Dim returns the number of features in the projected space
func (t *TileCoder) Dim() int {
	features := 0
	for i := 0; i < t.numTilings; i++ {
		features += prod(t.bins[i])
	}
	if t.includeBias {
		return features + 1
	}
	return features
}

// NumTilings returns the number of tilings the coder projects through
func (t *TileCoder) NumTilings() int {
	return t.numTilings
}

// String returns a string representation of a *TileCoder
func (t *TileCoder) String() string {
	return fmt.Sprintf("Tilings %d  |  Tiles: %v", t.numTilings, t.bins)
}

// prod calculates the product of all integers in a []int
func prod(i []int) int {
	prod := 1
	for _, v := range i {
		prod *= v
	}
	return prod
}
