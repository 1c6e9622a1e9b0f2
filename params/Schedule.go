// Package params implements scalar learning parameters with episodic
// decay schedules
package params

import (
	"fmt"
	"math"
)

// Schedule describes how a parameter anneals across episodes. A
// Schedule is a pure closed form over the episode count, so a
// Parameter's value at episode n never depends on the path taken to
// reach n.
type Schedule interface {
	// ValueAt returns the scheduled value after n completed episodes,
	// given the parameter's initial value
	ValueAt(initial float64, n int) float64
}

// Fixed is a Schedule that never changes the parameter value
type Fixed struct{}

// NewFixed returns a new Fixed schedule
func NewFixed() Fixed {
	return Fixed{}
}

func (Fixed) ValueAt(initial float64, n int) float64 {
	return initial
}

// ExponentialDecay anneals a parameter by a constant factor per
// episode, never dropping below Floor
type ExponentialDecay struct {
	Rate  float64
	Floor float64
}

// NewExponentialDecay returns a new ExponentialDecay schedule with
// decay factor rate per episode and minimum value floor
func NewExponentialDecay(rate, floor float64) ExponentialDecay {
	if rate <= 0.0 || rate > 1.0 {
		panic(fmt.Sprintf("exponentialDecay: rate must be in (0, 1] "+
			"\n\thave(%v)", rate))
	}
	return ExponentialDecay{Rate: rate, Floor: floor}
}

func (e ExponentialDecay) ValueAt(initial float64, n int) float64 {
	return math.Max(e.Floor, initial*math.Pow(e.Rate, float64(n)))
}

// PolynomialDecay anneals a parameter as initial / (n+1)^Power, never
// dropping below Floor
type PolynomialDecay struct {
	Power float64
	Floor float64
}

// NewPolynomialDecay returns a new PolynomialDecay schedule with
// exponent power and minimum value floor
func NewPolynomialDecay(power, floor float64) PolynomialDecay {
	if power <= 0.0 {
		panic(fmt.Sprintf("polynomialDecay: power must be positive "+
			"\n\thave(%v)", power))
	}
	return PolynomialDecay{Power: power, Floor: floor}
}

func (p PolynomialDecay) ValueAt(initial float64, n int) float64 {
	return math.Max(p.Floor, initial/math.Pow(float64(n+1), p.Power))
}
