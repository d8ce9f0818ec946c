package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
)

const reflectorSystemPrompt = `You are the reflection agent of an automated development pipeline.
A candidate diff failed validation. Diagnose why and recommend the next move. You change nothing yourself.
Respond with a single JSON object:
{"diagnosis": "...", "root_cause": "plan|code|test|environment", "recommendation": "fix|replan|abort", "feedback": "...", "confidence": 0.0}
Recommend "replan" only when the plan itself is wrong. Recommend "abort" only when the task cannot succeed within this pipeline.
"feedback" is handed verbatim to the next agent; make it specific and actionable.`

// ReflectInput carries everything the reflector may consider.
type ReflectInput struct {
	Task        models.TaskContext
	Plan        *models.Plan
	CurrentDiff string
	Verdict     *models.ValidationVerdict
	TestOutput  string
	Attempts    []AttemptSummary
}

// AttemptSummary is a compact view of one prior attempt record.
type AttemptSummary struct {
	Iteration int
	Action    string
	Result    string
	Error     string
}

// Reflector diagnoses failed validations. It is side-effect-free.
type Reflector struct {
	llm llm.Completer
}

// NewReflector creates a reflector over the completion façade.
func NewReflector(c llm.Completer) *Reflector {
	return &Reflector{llm: c}
}

// Reflect produces a diagnosis and recommendation for a failed validation.
func (r *Reflector) Reflect(ctx context.Context, in ReflectInput) (*models.Reflection, error) {
	planJSON := ""
	if in.Plan != nil {
		var err error
		planJSON, err = planAsJSON(in.Plan)
		if err != nil {
			return nil, err
		}
	}

	var b strings.Builder
	b.WriteString(section("Issue", fmt.Sprintf("%s\n\n%s", in.Task.Title, in.Task.Body)))
	b.WriteString(section("Plan", planJSON))
	b.WriteString(section("Current diff", in.CurrentDiff))
	if in.Verdict != nil {
		b.WriteString(section("Validation issues", in.Verdict.FixPlan))
	}
	b.WriteString(section("Test output", in.TestOutput))
	b.WriteString(section("Prior attempts", formatAttempts(in.Attempts)))

	resp, err := r.llm.Complete(ctx, llm.Request{
		Purpose: llm.PurposeReflect,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: reflectorSystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("reflector completion: %w", err)
	}

	var out models.Reflection
	if err := parseJSON(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("reflector output: %w", err)
	}
	normalizeReflection(&out)
	return &out, nil
}

// normalizeReflection coerces out-of-vocabulary model answers to safe
// values: unknown causes become code, unknown recommendations become fix.
func normalizeReflection(r *models.Reflection) {
	switch r.RootCause {
	case models.CausePlan, models.CauseCode, models.CauseTest, models.CauseEnvironment:
	default:
		r.RootCause = models.CauseCode
	}
	switch r.Recommendation {
	case models.RecommendFix, models.RecommendReplan, models.RecommendAbort:
	default:
		r.Recommendation = models.RecommendFix
	}
	r.Confidence = clamp01(r.Confidence)
}

func formatAttempts(attempts []AttemptSummary) string {
	var b strings.Builder
	for _, a := range attempts {
		fmt.Fprintf(&b, "- iteration %d: %s %s", a.Iteration, a.Action, a.Result)
		if a.Error != "" {
			fmt.Fprintf(&b, " (%s)", a.Error)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
