package machine

import "errors"

type State interface {
	~string
}

var ErrInvalidTransition = errors.New("invalid state transition")

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// StateMachine validates transitions out of a current state
type StateMachine[S State] struct {
	current S
	allowed map[S][]S
}

func New[S State](currentState S, transitions ...Allowable[S]) *StateMachine[S] {
	allowed := make(map[S][]S, len(transitions))
	for _, t := range transitions {
		allowed[t.from] = append(allowed[t.from], t.to...)
	}

	return &StateMachine[S]{current: currentState, allowed: allowed}
}

// ToState determines if the machine's current state can transition to the given state
func (m *StateMachine[S]) ToState(s S) error {
	for _, to := range m.allowed[m.current] {
		if to == s {
			return nil
		}
	}

	return ErrInvalidTransition
}
