package params

// Parameter is a scalar value with an optional decay schedule and an
// episode counter. Each learner owns its own Parameters so that
// concurrent learners anneal independently; nothing here is shared or
// global.
//
// Schedules step once per episode, at the terminal boundary, never
// mid-episode. The owning learner is responsible for calling Step at
// exactly that boundary.
type Parameter struct {
	initial float64
	value   float64
	sched   Schedule
	steps   int
}

// New returns a new Parameter with the given initial value and
// schedule
func New(value float64, sched Schedule) *Parameter {
	if sched == nil {
		sched = Fixed{}
	}
	return &Parameter{initial: value, value: value, sched: sched}
}

// NewConstant returns a Parameter that keeps its initial value forever
func NewConstant(value float64) *Parameter {
	return New(value, Fixed{})
}

// Value returns the current value of the Parameter
func (p *Parameter) Value() float64 {
	return p.value
}

// Steps returns the number of completed episodes the Parameter has
// been stepped through
func (p *Parameter) Steps() int {
	return p.steps
}

// Step advances the Parameter by one episode, moving its value along
// the schedule
func (p *Parameter) Step() {
	p.steps++
	p.value = p.sched.ValueAt(p.initial, p.steps)
}
