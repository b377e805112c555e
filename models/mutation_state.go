package models

import "fmt"

// MutationState là trạng thái của một target trong guard
type MutationState string

const (
	MutationIdle      MutationState = "idle"
	MutationPending   MutationState = "pending"
	MutationSucceeded MutationState = "succeeded"
	MutationFailed    MutationState = "failed"
)

// transitions lists the allowed moves of the per-target state machine.
var transitions = map[MutationState][]MutationState{
	MutationIdle:      {MutationPending},
	MutationPending:   {MutationSucceeded, MutationFailed},
	MutationSucceeded: {MutationIdle},
	MutationFailed:    {MutationIdle},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to MutationState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns to, or an error when the move is illegal.
func Transition(from, to MutationState) (MutationState, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("cannot move mutation from %s to %s", from, to)
	}
	return to, nil
}

// Resolved reports whether s is a terminal outcome.
func (s MutationState) Resolved() bool {
	return s == MutationSucceeded || s == MutationFailed
}
