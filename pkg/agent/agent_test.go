package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/llm/llmtest"
	"github.com/forgeflow/forgeflow/pkg/models"
)

func TestParseJSONVariants(t *testing.T) {
	type out struct {
		A string `json:"a"`
	}

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a":"x"}`, "x", false},
		{"fenced", "```json\n{\"a\":\"x\"}\n```", "x", false},
		{"prose around", "Sure, here you go:\n{\"a\":\"x\"}\nHope that helps!", "x", false},
		{"no json", "I cannot do that.", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o out
			err := parseJSON(tt.content, &o)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.A)
		})
	}
}

func TestPlannerParsesPlan(t *testing.T) {
	scripted := (&llmtest.ScriptedCompleter{}).Respond(`{
		"steps": [{"description": "add the helper", "files": ["src/util.ts"]}],
		"target_files": ["src/util.ts"],
		"definition_of_done": ["helper exported", "tests pass"],
		"estimated_complexity": "S"
	}`)
	p := NewPlanner(scripted)

	plan, err := p.Plan(context.Background(), PlanInput{
		Task: models.TaskContext{Repo: "org/r", IssueNumber: 42, Title: "Add helper"},
	})
	require.NoError(t, err)
	assert.Len(t, plan.Steps, 1)
	assert.Equal(t, models.ComplexityS, plan.EstimatedComplexity)
	assert.Equal(t, []string{"src/util.ts"}, plan.TargetFiles)

	require.Len(t, scripted.Requests, 1)
	assert.Equal(t, llm.PurposePlan, scripted.Requests[0].Purpose)
}

func TestPlannerRejectsEmptyPlan(t *testing.T) {
	scripted := (&llmtest.ScriptedCompleter{}).Respond(`{"steps": []}`)
	_, err := NewPlanner(scripted).Plan(context.Background(), PlanInput{})
	assert.ErrorContains(t, err, "empty plan")
}

func TestCoderNormalizesFencedDiff(t *testing.T) {
	scripted := (&llmtest.ScriptedCompleter{}).Respond(`{
		"diff": "diff --git a/src/util.ts b/src/util.ts\n--- a/src/util.ts\n+++ b/src/util.ts\n@@ -1,1 +1,2 @@\n+import { x } from './x';\n export const y = x;\n",
		"commit_message": "add missing import"
	}`)
	c := NewCoder(scripted)

	out, err := c.Code(context.Background(), CodeInput{
		Plan: &models.Plan{Steps: []models.PlanStep{{Description: "add import"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.Diff, "--- src/util.ts")
	assert.NotContains(t, out.Diff, "diff --git")
	assert.Equal(t, []string{"src/util.ts"}, out.FilesModified)
}

func TestCoderInvalidDiffIsTerminal(t *testing.T) {
	scripted := (&llmtest.ScriptedCompleter{}).Respond(`{"diff": "", "commit_message": "hm"}`)
	_, err := NewCoder(scripted).Code(context.Background(), CodeInput{
		Plan: &models.Plan{Steps: []models.PlanStep{{Description: "x"}}},
	})
	require.Error(t, err)
	assert.Equal(t, models.KindTerminal, models.Classify(err))
	assert.Equal(t, models.ReasonInvalidDiffFormat, models.Reason(err))
}

func TestReflectorNormalizesVocabulary(t *testing.T) {
	scripted := (&llmtest.ScriptedCompleter{}).Respond(`{
		"diagnosis": "the import is missing",
		"root_cause": "implementation",
		"recommendation": "patch it",
		"feedback": "add the import for x",
		"confidence": 1.7
	}`)
	r := NewReflector(scripted)

	ref, err := r.Reflect(context.Background(), ReflectInput{})
	require.NoError(t, err)
	assert.Equal(t, models.CauseCode, ref.RootCause)
	assert.Equal(t, models.RecommendFix, ref.Recommendation)
	assert.InDelta(t, 1.0, ref.Confidence, 1e-9)
}

func TestDecomposeAssignsIndexes(t *testing.T) {
	scripted := (&llmtest.ScriptedCompleter{}).Respond(`{
		"subtasks": [
			{"index": 7, "title": "first", "target_files": ["a.ts"]},
			{"index": 7, "title": "second", "target_files": ["b.ts"]}
		]
	}`)
	subtasks, err := NewPlanner(scripted).Decompose(context.Background(), DecomposeInput{
		Plan: &models.Plan{Steps: []models.PlanStep{{Description: "x"}}},
	})
	require.NoError(t, err)
	require.Len(t, subtasks, 2)
	assert.Equal(t, 0, subtasks[0].Index)
	assert.Equal(t, 1, subtasks[1].Index)
}
