package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/patch"
)

const coderSystemPrompt = `You are the coding agent of an automated development pipeline.
Implement the given plan as a unified diff against the provided file contents.
Respond with a single JSON object:
{"diff": "<unified diff>", "commit_message": "...", "files_modified": ["..."], "notes": "..."}
The diff must be a plain unified diff (---/+++/@@). Modify only the listed target files.`

// FileContent is one target file's current state at the task branch.
type FileContent struct {
	Path    string
	Content string
}

// CodeInput carries the coder's working set.
type CodeInput struct {
	Task  models.TaskContext
	Plan  *models.Plan
	Files []FileContent
}

// Coder turns a plan into a candidate diff.
type Coder struct {
	llm llm.Completer
}

// NewCoder creates a coder over the completion façade.
func NewCoder(c llm.Completer) *Coder {
	return &Coder{llm: c}
}

// Code produces the candidate diff for a plan. The returned diff is
// normalized to plain unified format.
func (c *Coder) Code(ctx context.Context, in CodeInput) (*models.CodeOutput, error) {
	planJSON, err := planAsJSON(in.Plan)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(section("Issue", fmt.Sprintf("%s\n\n%s", in.Task.Title, in.Task.Body)))
	b.WriteString(section("Plan", planJSON))
	for _, f := range in.Files {
		b.WriteString(section("File: "+f.Path, f.Content))
	}

	resp, err := c.llm.Complete(ctx, llm.Request{
		Purpose: llm.PurposeCode,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: coderSystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("coder completion: %w", err)
	}
	return parseCodeOutput(resp.Content)
}

// parseCodeOutput decodes a coder or fixer reply and normalizes its diff.
// A missing or malformed diff comes back as a terminal format error so the
// caller can fail the task without a fix loop.
func parseCodeOutput(content string) (*models.CodeOutput, error) {
	var out models.CodeOutput
	if err := parseJSON(content, &out); err != nil {
		return nil, models.NewKindError(models.KindTerminal, models.ReasonInvalidDiffFormat, err)
	}
	normalized, err := patch.Normalize(out.Diff)
	if err != nil {
		return nil, models.NewKindError(models.KindTerminal, models.ReasonInvalidDiffFormat, err)
	}
	out.Diff = normalized
	if len(out.FilesModified) == 0 {
		out.FilesModified = patch.Files(normalized)
	}
	return &out, nil
}

func planAsJSON(p *models.Plan) (string, error) {
	if p == nil {
		return "", fmt.Errorf("plan is required")
	}
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	return string(raw), nil
}
