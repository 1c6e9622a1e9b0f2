package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantParameterNeverChanges(t *testing.T) {
	p := NewConstant(0.1)

	for i := 0; i < 100; i++ {
		p.Step()
	}

	assert.Equal(t, 0.1, p.Value())
	assert.Equal(t, 100, p.Steps())
}

func TestExponentialDecayClosedForm(t *testing.T) {
	const n = 25
	p := New(1.0, NewExponentialDecay(0.9, 0.0))

	for i := 0; i < n; i++ {
		p.Step()
	}

	assert.InDelta(t, math.Pow(0.9, n), p.Value(), 1e-12)
}

func TestExponentialDecayRespectsFloor(t *testing.T) {
	p := New(1.0, NewExponentialDecay(0.5, 0.25))

	for i := 0; i < 50; i++ {
		p.Step()
	}

	assert.Equal(t, 0.25, p.Value())
}

func TestPolynomialDecayClosedForm(t *testing.T) {
	const n = 10
	p := New(2.0, NewPolynomialDecay(1.0, 0.0))

	for i := 0; i < n; i++ {
		p.Step()
	}

	assert.InDelta(t, 2.0/float64(n+1), p.Value(), 1e-12)
}

func TestValueIsSideEffectFree(t *testing.T) {
	p := New(1.0, NewExponentialDecay(0.9, 0.0))
	p.Step()

	before := p.Value()
	for i := 0; i < 10; i++ {
		p.Value()
	}

	assert.Equal(t, before, p.Value())
	assert.Equal(t, 1, p.Steps())
}

func TestScheduleConstructionChecks(t *testing.T) {
	assert.Panics(t, func() { NewExponentialDecay(0.0, 0.0) })
	assert.Panics(t, func() { NewExponentialDecay(1.5, 0.0) })
	assert.Panics(t, func() { NewPolynomialDecay(-1.0, 0.0) })
}

func TestNilScheduleIsFixed(t *testing.T) {
	p := New(0.3, nil)
	p.Step()

	assert.Equal(t, 0.3, p.Value())
}
