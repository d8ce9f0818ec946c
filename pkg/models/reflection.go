package models

// RootCause is the reflector's attribution for a failed attempt.
type RootCause string

// Root cause categories.
const (
	CausePlan        RootCause = "plan"        // the plan itself is wrong
	CauseCode        RootCause = "code"        // implementation bug, plan is sound
	CauseTest        RootCause = "test"        // expectations or fixtures are stale
	CauseEnvironment RootCause = "environment" // tooling or sandbox problem
)

// Recommendation is the reflector's proposed next move.
type Recommendation string

// Reflector recommendations.
const (
	RecommendFix    Recommendation = "fix"    // targeted repair of the current diff
	RecommendReplan Recommendation = "replan" // discard the plan, start a new attempt
	RecommendAbort  Recommendation = "abort"  // not solvable within budgets
)

// Reflection is the structured output of the reflector agent after a failed
// validation.
type Reflection struct {
	Diagnosis      string         `json:"diagnosis"`
	RootCause      RootCause      `json:"root_cause"`
	Recommendation Recommendation `json:"recommendation"`
	Feedback       string         `json:"feedback"` // handed to the next agent invocation
	Confidence     float64        `json:"confidence"`
}

// LoopResult summarizes one agentic-loop run over a single plan.
type LoopResult struct {
	Success    bool               `json:"success"`
	Iterations int                `json:"iterations"` // validator runs, counting the failed one that entered the loop
	Replans    int                `json:"replans"`
	Replanned  bool               `json:"replanned"` // caller restarts coding from Plan
	Plan       *Plan              `json:"plan,omitempty"`
	Diff       string             `json:"diff,omitempty"`
	Verdict    *ValidationVerdict `json:"verdict,omitempty"`
	Reflection *Reflection        `json:"reflection,omitempty"` // last reflection of the run
	Reason     string             `json:"reason,omitempty"`     // set when Success is false
}
