// Package td implements temporal-difference prediction algorithms
// using linear function approximation
package td

import (
	"fmt"
	"os"

	"github.com/golfa-rl/golfa/buffer"
	"github.com/golfa-rl/golfa/domain"
	"github.com/golfa-rl/golfa/lfa"
	"github.com/golfa-rl/golfa/params"
	"github.com/golfa-rl/golfa/projection"
	"github.com/golfa-rl/golfa/trace"
	"github.com/golfa-rl/golfa/utils/matutils/initializers/weights"
	"gonum.org/v1/gonum/mat"
)

// TDLambda is an online backward-view TD(λ) predictor. It learns a
// state-value function from observed Transitions by combining a
// projector, an eligibility trace, and a linear function
// approximator, with learning rate α and discount γ annealed once per
// episode.
//
// A TDLambda exclusively owns its trace and weights. Concurrent
// rollouts need one independent predictor per worker; only the
// projector may be shared.
type TDLambda struct {
	trace *trace.Trace
	fa    *lfa.LFA

	alpha *params.Parameter
	gamma *params.Parameter
}

// New returns a new TDLambda predicting values over the feature space
// of p. The trace tr must span the same feature space as p. Weights
// are initialized by init; a nil init leaves them zero-valued.
func New(p projection.Projector, tr *trace.Trace, init weights.Initializer,
	alpha, gamma *params.Parameter) (*TDLambda, error) {
	fa := lfa.New(p, init)

	if tr.Len() != fa.Dim() {
		return nil, fmt.Errorf("td: trace dimension must match weight "+
			"dimension \n\twant(%d) \n\thave(%d)", fa.Dim(), tr.Len())
	}
	if g := gamma.Value(); g < 0.0 || g > 1.0 {
		return nil, fmt.Errorf("td: discount must be in [0, 1], got %v", g)
	}

	return &TDLambda{tr, fa, alpha, gamma}, nil
}

// updateV performs the per-step trace and weight update shared by the
// terminal and non-terminal paths: decay the trace by λγ, fold in the
// freshly projected features, then apply the αδ-scaled trace to the
// weights
func (t *TDLambda) updateV(phi projection.Projection, tdError float64) {
	decayRate := t.trace.Lambda() * t.gamma.Value()

	t.trace.Decay(decayRate)
	t.trace.Update(phi.Expanded(t.fa.Dim()))

	t.fa.UpdatePhi(projection.NewDense(t.trace.Get()),
		t.alpha.Value()*tdError)
}

// HandleSample updates the predictor from a non-terminal Transition,
// bootstrapping the target from the value of the next state. A
// Transition whose To observation is terminal is routed to
// HandleTerminal instead, since no next-state value exists to
// bootstrap from.
func (t *TDLambda) HandleSample(tr domain.Transition) error {
	if tr.Done() {
		return t.HandleTerminal(tr)
	}

	phi, err := t.fa.Projector().Project(tr.From.State())
	if err != nil {
		return fmt.Errorf("handleSample: cannot represent state: %v", err)
	}

	v := t.fa.EvaluatePhi(phi)
	nv, err := t.fa.Evaluate(tr.To.State())
	if err != nil {
		return fmt.Errorf("handleSample: %v", err)
	}

	tdError := tr.Reward + t.gamma.Value()*nv - v
	t.updateV(phi, tdError)

	return nil
}

// HandleTerminal updates the predictor from the final Transition of
// an episode. The target is the observed reward alone, the trace is
// hard reset, and the α and γ schedules advance exactly one episode.
func (t *TDLambda) HandleTerminal(tr domain.Transition) error {
	if !tr.Done() {
		fmt.Fprintf(os.Stderr, "Warning: HandleTerminal() should only be "+
			"called on transitions to a terminal observation (type = %v)",
			tr.To.Type)
	}

	phi, err := t.fa.Projector().Project(tr.From.State())
	if err != nil {
		return fmt.Errorf("handleTerminal: cannot represent state: %v", err)
	}

	tdError := tr.Reward - t.fa.EvaluatePhi(phi)
	t.updateV(phi, tdError)

	t.trace.Decay(0.0)

	t.alpha.Step()
	t.gamma.Step()

	return nil
}

// Handle updates the predictor from a Transition, dispatching on
// whether the Transition ends its episode
func (t *TDLambda) Handle(tr domain.Transition) error {
	if tr.Done() {
		return t.HandleTerminal(tr)
	}
	return t.HandleSample(tr)
}

// Predict returns the current value estimate for state. An error is
// returned when the projector cannot represent the state.
func (t *TDLambda) Predict(state mat.Vector) (float64, error) {
	return t.fa.Evaluate(state)
}

// TdError returns the TD error of a Transition under the current
// weights without updating the predictor
func (t *TDLambda) TdError(tr domain.Transition) (float64, error) {
	v, err := t.fa.Evaluate(tr.From.State())
	if err != nil {
		return 0, fmt.Errorf("tdError: %v", err)
	}

	if tr.Done() {
		return tr.Reward - v, nil
	}

	nv, err := t.fa.Evaluate(tr.To.State())
	if err != nil {
		return 0, fmt.Errorf("tdError: %v", err)
	}
	return tr.Reward + t.gamma.Value()*nv - v, nil
}

// Alpha returns the current learning rate
func (t *TDLambda) Alpha() float64 {
	return t.alpha.Value()
}

// Gamma returns the current discount factor
func (t *TDLambda) Gamma() float64 {
	return t.gamma.Value()
}

// Weights returns the learned weight vector for inspection or
// serialization by the caller
func (t *TDLambda) Weights() *buffer.Dense {
	return t.fa.Weights()
}
