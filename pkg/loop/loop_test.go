package loop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/pkg/agent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
	"github.com/forgeflow/forgeflow/pkg/models"
)

type scriptedReflector struct {
	reflections []*models.Reflection
	i           int
}

func (s *scriptedReflector) Reflect(context.Context, agent.ReflectInput) (*models.Reflection, error) {
	r := s.reflections[s.i]
	if s.i < len(s.reflections)-1 {
		s.i++
	}
	return r, nil
}

type stubFixer struct {
	diff  string
	calls int
}

func (s *stubFixer) Fix(context.Context, agent.FixInput) (*models.CodeOutput, error) {
	s.calls++
	return &models.CodeOutput{Diff: s.diff, CommitMessage: "fix"}, nil
}

type stubPlanner struct {
	plan  *models.Plan
	calls int
}

func (s *stubPlanner) Plan(context.Context, agent.PlanInput) (*models.Plan, error) {
	s.calls++
	return s.plan, nil
}

type recordedAttempt struct {
	action attemptrecord.Action
	result attemptrecord.Result
}

type fakeAttempts struct {
	records []recordedAttempt
}

func (f *fakeAttempts) RecordAttempt(_ context.Context, _ string, _ int, action attemptrecord.Action, result attemptrecord.Result, _ string) (*ent.AttemptRecord, error) {
	f.records = append(f.records, recordedAttempt{action, result})
	return &ent.AttemptRecord{}, nil
}

func failedVerdict() *models.ValidationVerdict {
	return &models.ValidationVerdict{
		Passed: false,
		Checks: []models.CheckResult{{Type: models.CheckTypes, Status: models.CheckFailed, ErrorCount: 1}},
		Issues: []models.CategorizedIssue{{
			ID: "typecheck-1", Category: models.CheckTypes,
			Severity: models.SeverityCritical, Code: "TS2304",
			Description: "TS2304: Cannot find name 'X'.",
		}},
	}
}

func passedVerdict() *models.ValidationVerdict {
	return &models.ValidationVerdict{
		Passed: true,
		Checks: []models.CheckResult{{Type: models.CheckTypes, Status: models.CheckPassed}},
	}
}

func loopConfig() *config.LoopConfig {
	return &config.LoopConfig{MaxIterations: 5, MaxReplans: 2, ConfidenceThreshold: 0.6}
}

func TestFixLoopSucceeds(t *testing.T) {
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Diagnosis:      "missing import for X",
		RootCause:      models.CauseCode,
		Recommendation: models.RecommendFix,
		Feedback:       "add the import for X",
		Confidence:     0.9,
	}}}
	fixer := &stubFixer{diff: "--- a.ts\n+++ a.ts\n@@ -1,1 +1,2 @@\n+import X\n x\n"}
	attempts := &fakeAttempts{}

	verdicts := []*models.ValidationVerdict{passedVerdict()}
	validate := func(context.Context, string, []string) (*models.ValidationVerdict, error) {
		v := verdicts[0]
		if len(verdicts) > 1 {
			verdicts = verdicts[1:]
		}
		return v, nil
	}

	l := New(reflector, fixer, &stubPlanner{}, validate, attempts, hooks.NewBus(), loopConfig())
	result, err := l.Run(context.Background(), RunInput{
		TaskID:  "t1",
		Verdict: failedVerdict(),
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Iterations, "failed validation plus the passing revalidation")
	assert.Zero(t, result.Replans)
	assert.False(t, result.Replanned)
	assert.Equal(t, fixer.diff, result.Diff)
	require.Len(t, attempts.records, 1)
	assert.Equal(t, attemptrecord.ActionFix, attempts.records[0].action)
	assert.Equal(t, attemptrecord.ResultSuccess, attempts.records[0].result)
	assert.Equal(t, models.CauseCode, result.Reflection.RootCause)
}

func TestAbortReturnsDiagnosis(t *testing.T) {
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Diagnosis:      "requires schema changes outside the allowed paths",
		Recommendation: models.RecommendAbort,
		RootCause:      models.CausePlan,
		Confidence:     0.8,
	}}}
	fixer := &stubFixer{}

	l := New(reflector, fixer, &stubPlanner{}, nil, &fakeAttempts{}, nil, loopConfig())
	result, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict()})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "requires schema changes outside the allowed paths", result.Reason)
	assert.Zero(t, fixer.calls)
}

func TestReplanReturnsEarlyWithNewPlan(t *testing.T) {
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Diagnosis:      "the plan misses the config file",
		Recommendation: models.RecommendReplan,
		RootCause:      models.CausePlan,
		Feedback:       "include config.ts in the plan",
		Confidence:     0.85,
	}}}
	planner := &stubPlanner{plan: &models.Plan{Steps: []models.PlanStep{{Description: "new plan"}}}}
	attempts := &fakeAttempts{}

	l := New(reflector, &stubFixer{}, planner, nil, attempts, hooks.NewBus(), loopConfig())
	result, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict()})
	require.NoError(t, err)

	assert.True(t, result.Replanned)
	assert.Equal(t, 1, result.Replans)
	assert.NotNil(t, result.Plan)
	assert.False(t, result.Success)
	assert.Equal(t, 1, planner.calls)
	require.Len(t, attempts.records, 1)
	assert.Equal(t, attemptrecord.ActionPlan, attempts.records[0].action)
	assert.Equal(t, attemptrecord.ResultSuccess, attempts.records[0].result)
}

func TestReplanBudgetFallsThroughToFix(t *testing.T) {
	// Three consecutive replan recommendations with maxReplans=2: the loop
	// honors the first two (across separate entries) and the third becomes
	// a fix.
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Recommendation: models.RecommendReplan,
		RootCause:      models.CausePlan,
		Feedback:       "replan again",
		Confidence:     0.8,
	}}}
	fixer := &stubFixer{diff: "--- a.ts\n+++ a.ts\n@@ -1,1 +1,1 @@\n-x\n+y\n"}
	planner := &stubPlanner{plan: &models.Plan{Steps: []models.PlanStep{{Description: "p"}}}}
	validate := func(context.Context, string, []string) (*models.ValidationVerdict, error) {
		return passedVerdict(), nil
	}
	l := New(reflector, fixer, planner, validate, &fakeAttempts{}, nil, loopConfig())

	// First two entries replan.
	res1, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict()})
	require.NoError(t, err)
	require.True(t, res1.Replanned)

	res2, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict(), ReplansUsed: res1.Replans})
	require.NoError(t, err)
	require.True(t, res2.Replanned)
	assert.Equal(t, 2, res2.Replans)

	// Third entry: budget exhausted, falls through to fix.
	res3, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict(), ReplansUsed: res2.Replans})
	require.NoError(t, err)
	assert.False(t, res3.Replanned)
	assert.Equal(t, 2, res3.Replans, "replan counter stays at the budget")
	assert.True(t, res3.Success)
	assert.Equal(t, 1, fixer.calls)
	assert.Equal(t, 2, planner.calls)
}

func TestMaxIterationsExhausted(t *testing.T) {
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Recommendation: models.RecommendFix,
		RootCause:      models.CauseCode,
		Confidence:     0.9,
	}}}
	fixer := &stubFixer{diff: "--- a.ts\n+++ a.ts\n@@ -1,1 +1,1 @@\n-x\n+y\n"}
	validate := func(context.Context, string, []string) (*models.ValidationVerdict, error) {
		return failedVerdict(), nil
	}

	cfg := &config.LoopConfig{MaxIterations: 3, MaxReplans: 2, ConfidenceThreshold: 0.6}
	l := New(reflector, fixer, &stubPlanner{}, validate, &fakeAttempts{}, nil, cfg)
	result, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict()})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, models.ReasonMaxIterations, result.Reason)
	assert.Equal(t, 4, result.Iterations, "initial validation plus one revalidation per fix cycle")
	assert.Equal(t, 3, fixer.calls)
}

func TestLowConfidenceProceeds(t *testing.T) {
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Recommendation: models.RecommendFix,
		RootCause:      models.CauseCode,
		Confidence:     0.1,
	}}}
	fixer := &stubFixer{diff: "--- a.ts\n+++ a.ts\n@@ -1,1 +1,1 @@\n-x\n+y\n"}
	validate := func(context.Context, string, []string) (*models.ValidationVerdict, error) {
		return passedVerdict(), nil
	}

	l := New(reflector, fixer, &stubPlanner{}, validate, &fakeAttempts{}, nil, loopConfig())
	result, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict()})
	require.NoError(t, err)
	assert.True(t, result.Success, "low confidence warns but does not stop the loop")
	assert.InDelta(t, 0.1, result.Reflection.Confidence, 1e-9)
}

func TestTerminalVerdictStopsLoop(t *testing.T) {
	reflector := &scriptedReflector{reflections: []*models.Reflection{{
		Recommendation: models.RecommendFix,
		RootCause:      models.CauseCode,
		Confidence:     0.9,
	}}}
	fixer := &stubFixer{diff: "--- a.ts\n+++ a.ts\n@@ -1,1 +1,1 @@\n-x\n+y\n"}
	terminal := &models.ValidationVerdict{
		Passed:         false,
		TerminalReason: models.ReasonTooManyTypeErrors,
	}
	validate := func(context.Context, string, []string) (*models.ValidationVerdict, error) {
		return terminal, nil
	}

	l := New(reflector, fixer, &stubPlanner{}, validate, &fakeAttempts{}, nil, loopConfig())
	result, err := l.Run(context.Background(), RunInput{TaskID: "t1", Verdict: failedVerdict()})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.ReasonTooManyTypeErrors, result.Reason)
	assert.Equal(t, 2, result.Iterations)
}
