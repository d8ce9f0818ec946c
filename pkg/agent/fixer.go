package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
)

const fixerSystemPrompt = `You are the fixing agent of an automated development pipeline.
A candidate diff failed validation. Produce a corrected complete unified diff that replaces it.
Respond with a single JSON object:
{"diff": "<unified diff>", "commit_message": "...", "files_modified": ["..."], "notes": "..."}
Address the issues in priority order. Return the full corrected diff, not an increment on top of the failed one.`

// FixInput carries the failed state and the guidance for repairing it.
type FixInput struct {
	Task        models.TaskContext
	CurrentDiff string
	Verdict     *models.ValidationVerdict
	Feedback    string // reflection feedback
	TestOutput  string
}

// Fixer repairs a diff that failed validation.
type Fixer struct {
	llm llm.Completer
}

// NewFixer creates a fixer over the completion façade.
func NewFixer(c llm.Completer) *Fixer {
	return &Fixer{llm: c}
}

// Fix produces a corrected diff.
func (f *Fixer) Fix(ctx context.Context, in FixInput) (*models.CodeOutput, error) {
	var b strings.Builder
	b.WriteString(section("Issue", in.Task.Title))
	b.WriteString(section("Current diff", in.CurrentDiff))
	if in.Verdict != nil {
		b.WriteString(section("Fix plan", in.Verdict.FixPlan))
	}
	b.WriteString(section("Reflection feedback", in.Feedback))
	b.WriteString(section("Test output", in.TestOutput))

	resp, err := f.llm.Complete(ctx, llm.Request{
		Purpose: llm.PurposeFix,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fixerSystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fixer completion: %w", err)
	}
	return parseCodeOutput(resp.Content)
}
