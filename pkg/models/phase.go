// Package models contains shared domain types used across services,
// the queue executor, agents, and the API layer.
package models

// Phase is the session lifecycle phase of a task.
//
// Phases are monotone within one attempt:
//
//	new → planning → coding → validating → foreman → pr_creating → pr_opened → completed
//
// A failed validation enters reflecting, which exits to coding (fix),
// planning (replan, attempt counter bumps) or failed (abort). Terminal
// phases are absorbing.
type Phase string

// Session phases.
const (
	PhaseNew          Phase = "new"
	PhasePlanning     Phase = "planning"
	PhaseCoding       Phase = "coding"
	PhaseValidating   Phase = "validating"
	PhaseReflecting   Phase = "reflecting"
	PhaseForeman      Phase = "foreman"
	PhasePRCreating   Phase = "pr_creating"
	PhasePROpened     Phase = "pr_opened"
	PhaseCompleted    Phase = "completed"
	PhaseFailed       Phase = "failed"
	PhaseWaitingHuman Phase = "waiting_human"
)

// Terminal reports whether the phase is absorbing.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseCompleted, PhaseFailed:
		return true
	}
	return false
}

// phaseOrder is the forward ordering used for monotonicity checks.
// Reflecting sits between validating and its exits; waiting_human and the
// terminal phases are reachable from anywhere.
var phaseOrder = map[Phase]int{
	PhaseNew:        0,
	PhasePlanning:   1,
	PhaseCoding:     2,
	PhaseValidating: 3,
	PhaseReflecting: 4,
	PhaseForeman:    5,
	PhasePRCreating: 6,
	PhasePROpened:   7,
}

// CanAdvanceTo reports whether moving from p to next respects forward
// ordering within a single attempt. Transitions into terminal phases,
// waiting_human, or a replan back to planning are handled by the caller.
func (p Phase) CanAdvanceTo(next Phase) bool {
	if next == PhaseFailed || next == PhaseCompleted || next == PhaseWaitingHuman {
		return true
	}
	from, okFrom := phaseOrder[p]
	to, okTo := phaseOrder[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}

// Complexity is the planner's estimated task complexity.
type Complexity string

// Complexity buckets.
const (
	ComplexityXS Complexity = "XS"
	ComplexityS  Complexity = "S"
	ComplexityM  Complexity = "M"
	ComplexityL  Complexity = "L"
	ComplexityXL Complexity = "XL"
)

// AtLeast reports whether c is at or above the given bucket.
func (c Complexity) AtLeast(min Complexity) bool {
	rank := map[Complexity]int{
		ComplexityXS: 0, ComplexityS: 1, ComplexityM: 2, ComplexityL: 3, ComplexityXL: 4,
	}
	cr, ok := rank[c]
	if !ok {
		// Unknown complexity is treated as M so multi-file plans stay
		// eligible for decomposition.
		cr = rank[ComplexityM]
	}
	return cr >= rank[min]
}
