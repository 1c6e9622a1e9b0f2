package projection

import (
	"fmt"

	"github.com/golfa-rl/golfa/buffer"
	"gonum.org/v1/gonum/mat"
)

// SparseProjection is a Projection holding an index set with
// activations, the representation produced by tile coders and other
// sparse projectors. Only the active entries are ever stored or
// iterated, so the feature space can be arbitrarily large.
type SparseProjection struct {
	dim         int
	indices     []int
	activations []float64
}

// NewSparse returns a SparseProjection over a feature space of
// dimension dim with the given activations at the given indices
func NewSparse(dim int, indices []int, activations []float64) (*SparseProjection,
	error) {
	if len(indices) != len(activations) {
		return nil, fmt.Errorf("newSparse: each index needs exactly one "+
			"activation \n\thave(%d indices) \n\thave(%d activations)",
			len(indices), len(activations))
	}
	for _, index := range indices {
		if index < 0 || index >= dim {
			return nil, fmt.Errorf("newSparse: index %d out of range [0, %d)",
				index, dim)
		}
	}

	ind := make([]int, len(indices))
	copy(ind, indices)
	act := make([]float64, len(activations))
	copy(act, activations)

	return &SparseProjection{dim, ind, act}, nil
}

// NewBinarySparse returns a SparseProjection with unit activations at
// the given indices, the form emitted by binary feature schemes such
// as tile coding
func NewBinarySparse(dim int, indices []int) (*SparseProjection, error) {
	activations := make([]float64, len(indices))
	for i := range activations {
		activations[i] = 1.0
	}
	return NewSparse(dim, indices, activations)
}

// FromTiles folds single-active-cell Tile buffers over a common
// feature space into one SparseProjection. Activations of tiles that
// share an index are summed. This is the sanctioned way to represent
// multi-tile coarse codings, where several cells are active at once;
// the Tile buffer itself never holds more than one.
func FromTiles(tiles []*buffer.Tile) (*SparseProjection, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("fromTiles: no tiles to combine")
	}

	dim := tiles[0].Dim()
	var indices []int
	var activations []float64

	for _, tile := range tiles {
		if tile.Dim() != dim {
			return nil, fmt.Errorf("fromTiles: tiles span different "+
				"feature spaces \n\twant(%d) \n\thave(%d)", dim, tile.Dim())
		}

		index, value, active := tile.Active()
		if !active {
			continue
		}

		merged := false
		for i := range indices {
			if indices[i] == index {
				activations[i] += value
				merged = true
				break
			}
		}
		if !merged {
			indices = append(indices, index)
			activations = append(activations, value)
		}
	}

	return NewSparse(dim, indices, activations)
}

// Dim returns the dimension of the feature space
func (s *SparseProjection) Dim() int {
	return s.dim
}

// ActiveCount returns the number of active entries in the Projection
func (s *SparseProjection) ActiveCount() int {
	return len(s.indices)
}

// Expanded returns the Projection as a dense vector of dimension dim
// with the activations placed at their indices
func (s *SparseProjection) Expanded(dim int) *mat.VecDense {
	checkExpandDim(dim, s.dim)

	out := mat.NewVecDense(dim, nil)
	for i, index := range s.indices {
		out.SetVec(index, out.AtVec(index)+s.activations[i])
	}
	return out
}

// Dot returns the dot product of the Projection with theta, touching
// only the active entries
func (s *SparseProjection) Dot(theta mat.Vector) float64 {
	if theta.Len() != s.dim {
		panic(fmt.Sprintf("dot: incompatible dimensions \n\twant(%d) "+
			"\n\thave(%d)", s.dim, theta.Len()))
	}

	total := 0.0
	for i, index := range s.indices {
		total += s.activations[i] * theta.AtVec(index)
	}
	return total
}

// ScaledAddTo adds the Projection, scaled by alpha, into dst,
// touching only the active entries
func (s *SparseProjection) ScaledAddTo(alpha float64, dst *mat.VecDense) {
	if dst.Len() != s.dim {
		panic(fmt.Sprintf("scaledAddTo: incompatible dimensions "+
			"\n\twant(%d) \n\thave(%d)", s.dim, dst.Len()))
	}

	for i, index := range s.indices {
		dst.SetVec(index, dst.AtVec(index)+alpha*s.activations[i])
	}
}
