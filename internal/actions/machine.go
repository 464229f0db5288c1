// Package actions implements the branch-synchronization workflow: branch
// selection, workspace lifecycle, squash composition with conflict
// resumption, personal-layer reconciliation, and publishing.
package actions

// Phase is the composition phase for a branch index
type Phase int

const (
	// PhasePending means the branch at Index has not been composed yet
	PhasePending Phase = iota
	// PhaseConflict means the branch at Index halted on a merge conflict
	PhaseConflict
	// PhaseDone means every branch has been composed
	PhaseDone
)

// StepResult is the outcome of attempting to compose one branch
type StepResult int

const (
	// StepClean means the branch merged and committed without conflict
	StepClean StepResult = iota
	// StepConflict means the merge stopped on unresolved paths
	StepConflict
)

// State is the composer position within the branch selection list
type State struct {
	Phase Phase
	Index int
}

// Start returns the initial state for a list of total branches
func Start(total int) State {
	if total == 0 {
		return State{Phase: PhaseDone}
	}
	return State{Phase: PhasePending, Index: 0}
}

// Resume returns the state for re-entering composition at index, as a
// --continue invocation does after the conflicted branch has been committed.
func Resume(index, total int) State {
	if index >= total {
		return State{Phase: PhaseDone, Index: total}
	}
	return State{Phase: PhasePending, Index: index}
}

// Next is the pure transition function of the composer state machine.
// Conflict and Done states only advance through Resume and Start; feeding
// them here returns the state unchanged.
func Next(s State, total int, result StepResult) State {
	if s.Phase != PhasePending {
		return s
	}
	if result == StepConflict {
		return State{Phase: PhaseConflict, Index: s.Index}
	}
	if s.Index+1 >= total {
		return State{Phase: PhaseDone, Index: total}
	}
	return State{Phase: PhasePending, Index: s.Index + 1}
}
