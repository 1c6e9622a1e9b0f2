package domain

import (
	"gonum.org/v1/gonum/mat"
)

// Transition packages a single step of agent-environment interaction:
// the observation the action was taken from, the action, the reward
// received, and the observation the environment moved to
type Transition struct {
	From   Observation
	Action mat.Vector
	Reward float64
	To     Observation
}

// NewTransition returns a new Transition
func NewTransition(from Observation, action mat.Vector, reward float64,
	to Observation) Transition {
	return Transition{from, action, reward, to}
}

// Done returns whether the Transition ends an episode
func (t Transition) Done() bool {
	return t.To.Terminal()
}

// Domain implements a simulated environment that can be stepped with
// actions to produce Transitions. Concrete dynamics live outside this
// module; the learning core only consumes what a Domain emits.
type Domain interface {
	// Emit returns an Observation of the Domain's current state
	Emit() Observation

	// Step advances the Domain with an action, returning the
	// resulting Transition
	Step(action mat.Vector) (Transition, error)

	// StateDims returns the dimensionality of emitted states
	StateDims() int

	// ActionDims returns the dimensionality of legal actions
	ActionDims() int
}
