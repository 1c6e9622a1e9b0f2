// Package domain defines the observations and transitions that
// simulated environments emit and learning algorithms consume
package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ObsType denotes the kind of observation an environment emitted:
// a fully observable state, a partially observable state, or the
// terminal state of an episode
type ObsType int

const (
	Full ObsType = iota
	Partial
	Terminal
)

func (o ObsType) String() string {
	switch o {
	case Full:
		return "Full"
	case Partial:
		return "Partial"
	default:
		return "Terminal"
	}
}

// Observation packages an environment state with its observability.
// Learning code dispatches on Terminal() to decide whether a
// next-state value exists to bootstrap from.
type Observation struct {
	Type  ObsType
	state mat.Vector
}

// NewFull returns a fully observable Observation of state
func NewFull(state mat.Vector) Observation {
	return Observation{Full, state}
}

// NewPartial returns a partially observable Observation of state
func NewPartial(state mat.Vector) Observation {
	return Observation{Partial, state}
}

// NewTerminal returns a terminal Observation of state
func NewTerminal(state mat.Vector) Observation {
	return Observation{Terminal, state}
}

// State returns the state the Observation carries, regardless of its
// observability
func (o Observation) State() mat.Vector {
	return o.state
}

// Terminal returns whether the Observation ends an episode
func (o Observation) Terminal() bool {
	return o.Type == Terminal
}

func (o Observation) String() string {
	return fmt.Sprintf("Observation | Type: %v  |  State: %v", o.Type,
		mat.Formatted(o.state.T(), mat.Squeeze()))
}
