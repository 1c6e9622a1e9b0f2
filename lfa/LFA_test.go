package lfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golfa-rl/golfa/projection"
	"github.com/golfa-rl/golfa/utils/matutils/initializers/weights"
	"gonum.org/v1/gonum/mat"
)

// constRander draws the same value on every call
type constRander float64

func (c constRander) Rand() float64 {
	return float64(c)
}

func TestNewSizesThetaToProjector(t *testing.T) {
	fa := New(projection.NewIdentity(4), weights.NewLinearUV(weights.NewZeroUV()))

	assert.Equal(t, 4, fa.Dim())
	assert.Equal(t, 4, fa.Weights().Dim())
}

func TestNewInitializesTheta(t *testing.T) {
	fa := New(projection.NewIdentity(3), weights.NewLinearUV(constRander(0.5)))

	for i := 0; i < fa.Dim(); i++ {
		assert.Equal(t, 0.5, fa.Weights().AtVec(i))
	}
}

func TestEvaluateIsDotProductWithTheta(t *testing.T) {
	fa := New(projection.NewIdentity(3), weights.NewLinearUV(constRander(1.0)))

	v, err := fa.Evaluate(mat.NewVecDense(3, []float64{1, 2, 3}))
	require.NoError(t, err)

	assert.InDelta(t, 6.0, v, 1e-12)
}

func TestEvaluateFailsOnUnrepresentableState(t *testing.T) {
	fa := New(projection.NewIdentity(3), nil)

	_, err := fa.Evaluate(mat.NewVecDense(2, []float64{1, 2}))
	assert.Error(t, err)
}

func TestEvaluateDoesNotMutateTheta(t *testing.T) {
	fa := New(projection.NewIdentity(2), weights.NewLinearUV(constRander(0.3)))
	state := mat.NewVecDense(2, []float64{1, 1})

	first, err := fa.Evaluate(state)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := fa.Evaluate(state)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestUpdatePhiFoldsScaledProjectionIntoTheta(t *testing.T) {
	fa := New(projection.NewIdentity(3), nil)

	phi, err := projection.NewIdentity(3).Project(
		mat.NewVecDense(3, []float64{1, 0, 2}))
	require.NoError(t, err)

	fa.UpdatePhi(phi, 0.5)

	assert.Equal(t, 0.5, fa.Weights().AtVec(0))
	assert.Equal(t, 0.0, fa.Weights().AtVec(1))
	assert.Equal(t, 1.0, fa.Weights().AtVec(2))
}

func TestEvaluatePhiMatchesEvaluate(t *testing.T) {
	fa := New(projection.NewIdentity(3), weights.NewLinearUV(constRander(0.25)))
	state := mat.NewVecDense(3, []float64{1, 2, 3})

	phi, err := fa.Projector().Project(state)
	require.NoError(t, err)

	fromState, err := fa.Evaluate(state)
	require.NoError(t, err)

	assert.Equal(t, fromState, fa.EvaluatePhi(phi))
}

func TestSparseProjectionEvaluation(t *testing.T) {
	fa := New(projection.NewIdentity(6), weights.NewLinearUV(constRander(2.0)))

	phi, err := projection.NewBinarySparse(6, []int{1, 4})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, fa.EvaluatePhi(phi), 1e-12)

	fa.UpdatePhi(phi, 0.1)

	assert.InDelta(t, 2.1, fa.Weights().AtVec(1), 1e-12)
	assert.InDelta(t, 2.1, fa.Weights().AtVec(4), 1e-12)
	assert.InDelta(t, 2.0, fa.Weights().AtVec(0), 1e-12)
}
