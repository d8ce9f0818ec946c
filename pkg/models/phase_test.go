package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		to   Phase
		want bool
	}{
		{"new to planning", PhaseNew, PhasePlanning, true},
		{"planning to coding", PhasePlanning, PhaseCoding, true},
		{"coding to validating", PhaseCoding, PhaseValidating, true},
		{"validating to foreman skips reflecting", PhaseValidating, PhaseForeman, true},
		{"validating to reflecting", PhaseValidating, PhaseReflecting, true},
		{"foreman to pr_creating", PhaseForeman, PhasePRCreating, true},
		{"no backward move", PhaseCoding, PhasePlanning, false},
		{"no self loop", PhaseCoding, PhaseCoding, false},
		{"failed reachable from anywhere", PhaseNew, PhaseFailed, true},
		{"waiting_human reachable from anywhere", PhaseForeman, PhaseWaitingHuman, true},
		{"completed reachable from anywhere", PhasePROpened, PhaseCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestPhaseTerminal(t *testing.T) {
	assert.True(t, PhaseCompleted.Terminal())
	assert.True(t, PhaseFailed.Terminal())
	assert.False(t, PhaseWaitingHuman.Terminal())
	assert.False(t, PhaseCoding.Terminal())
}

func TestComplexityAtLeast(t *testing.T) {
	assert.True(t, ComplexityL.AtLeast(ComplexityM))
	assert.True(t, ComplexityM.AtLeast(ComplexityM))
	assert.False(t, ComplexityS.AtLeast(ComplexityM))
	// Unknown values rank as M.
	assert.True(t, Complexity("").AtLeast(ComplexityM))
	assert.False(t, Complexity("huge").AtLeast(ComplexityL))
}

func TestClassify(t *testing.T) {
	kindErr := NewKindError(KindPolicyViolation, ReasonDeniedCommand, errors.New("rm -rf"))
	assert.Equal(t, KindPolicyViolation, Classify(kindErr))
	assert.Equal(t, ReasonDeniedCommand, Reason(kindErr))

	wrapped := errors.Join(errors.New("outer"), kindErr)
	assert.Equal(t, KindPolicyViolation, Classify(wrapped))

	assert.Equal(t, KindTransient, Classify(context.DeadlineExceeded))
	assert.Equal(t, KindInternal, Classify(errors.New("nil map write")))
	assert.Empty(t, Reason(errors.New("plain")))
}

func TestComputeConfidence(t *testing.T) {
	checks := []CheckResult{
		{Type: CheckSyntax, Status: CheckPassed},
		{Type: CheckTypes, Status: CheckFailed},
		{Type: CheckLint, Status: CheckPassed},
		{Type: CheckUnitTest, Status: CheckSkipped},
	}
	assert.InDelta(t, 2.0/3.0, ComputeConfidence(checks), 1e-9)
	assert.Zero(t, ComputeConfidence(nil))
	assert.Zero(t, ComputeConfidence([]CheckResult{{Status: CheckSkipped}}))
}

func TestPlanFiles(t *testing.T) {
	p := &Plan{
		TargetFiles: []string{"a.ts", "b.ts"},
		Steps: []PlanStep{
			{Files: []string{"b.ts", "c.ts"}},
			{Files: []string{"", "a.ts"}},
		},
	}
	assert.Equal(t, []string{"a.ts", "b.ts", "c.ts"}, p.Files())
}
