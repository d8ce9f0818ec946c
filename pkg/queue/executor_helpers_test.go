package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/pkg/models"
)

func TestShouldDecompose(t *testing.T) {
	e := &PipelineExecutor{}
	parentID := "parent"

	plan := func(complexity models.Complexity, files ...string) *models.Plan {
		return &models.Plan{TargetFiles: files, EstimatedComplexity: complexity}
	}

	cases := []struct {
		name string
		task *ent.Task
		plan *models.Plan
		want bool
	}{
		{
			name: "eligible parent",
			task: &ent.Task{},
			plan: plan(models.ComplexityM, "a.ts", "b.ts"),
			want: true,
		},
		{
			name: "subtask never decomposes",
			task: &ent.Task{ParentTaskID: &parentID},
			plan: plan(models.ComplexityL, "a.ts", "b.ts"),
			want: false,
		},
		{
			name: "dry run never decomposes",
			task: &ent.Task{DryRun: true},
			plan: plan(models.ComplexityL, "a.ts", "b.ts"),
			want: false,
		},
		{
			name: "already orchestrated",
			task: &ent.Task{IsOrchestrated: true},
			plan: plan(models.ComplexityL, "a.ts", "b.ts"),
			want: false,
		},
		{
			name: "below complexity threshold",
			task: &ent.Task{},
			plan: plan(models.ComplexityS, "a.ts", "b.ts"),
			want: false,
		},
		{
			name: "single file stays single-track",
			task: &ent.Task{},
			plan: plan(models.ComplexityXL, "a.ts"),
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &run{task: tc.task, plan: tc.plan}
			assert.Equal(t, tc.want, e.shouldDecompose(r))
		})
	}
}

func TestSummarizeAttempts(t *testing.T) {
	errMsg := "tsc exited 2"
	attempts := []*ent.AttemptRecord{
		{Iteration: 0, Action: attemptrecord.ActionPlan, Result: attemptrecord.ResultSuccess},
		{Iteration: 1, Action: attemptrecord.ActionFix, Result: attemptrecord.ResultFailure, Error: &errMsg},
	}

	summaries := summarizeAttempts(attempts)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "plan", summaries[0].Action)
	assert.Equal(t, "success", summaries[0].Result)
	assert.Empty(t, summaries[0].Error)
	assert.Equal(t, 1, summaries[1].Iteration)
	assert.Equal(t, "tsc exited 2", summaries[1].Error)
}

func TestCheckOutputConcatenates(t *testing.T) {
	v := &models.ValidationVerdict{
		Checks: []models.CheckResult{
			{Type: models.CheckTypes, Status: models.CheckFailed, Output: "TS2304: cannot find name"},
			{Type: models.CheckLint, Status: models.CheckPassed},
			{Type: models.CheckUnitTest, Status: models.CheckFailed, Output: "1 test failed"},
		},
	}
	out := checkOutput(v)
	assert.Contains(t, out, "TS2304")
	assert.Contains(t, out, "1 test failed")
}

func TestFirstIssueDescription(t *testing.T) {
	assert.Empty(t, firstIssueDescription(nil))
	assert.Empty(t, firstIssueDescription(&models.ValidationVerdict{}))

	v := &models.ValidationVerdict{Issues: []models.CategorizedIssue{
		{Description: "undefined symbol"},
		{Description: "unused import"},
	}}
	assert.Equal(t, "undefined symbol", firstIssueDescription(v))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("123456789abc"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestSplitRepo(t *testing.T) {
	owner, name := splitRepo("acme/widgets")
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", name)

	owner, name = splitRepo("bare")
	assert.Equal(t, "bare", owner)
	assert.Empty(t, name)
}
