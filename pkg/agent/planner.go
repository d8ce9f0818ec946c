package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
)

const plannerSystemPrompt = `You are the planning agent of an automated development pipeline.
Given an issue, repository constraints, and prior knowledge, produce a concrete implementation plan.
Respond with a single JSON object:
{
  "steps": [{"description": "...", "files": ["..."], "rationale": "..."}],
  "target_files": ["..."],
  "definition_of_done": ["..."],
  "estimated_complexity": "XS|S|M|L|XL",
  "risks": ["..."]
}
Target files must stay within the allowed paths. Keep plans minimal: the smallest change that resolves the issue.`

// PlanInput carries everything the planner sees.
type PlanInput struct {
	Task         models.TaskContext
	AllowedPaths []string
	BlockedPaths []string
	TechStack    []string
	Knowledge    string // rendered recall: prior decisions, patterns
	Feedback     string // reflection feedback on a replan
}

// Planner turns an issue into an ordered implementation plan.
type Planner struct {
	llm llm.Completer
}

// NewPlanner creates a planner over the completion façade.
func NewPlanner(c llm.Completer) *Planner {
	return &Planner{llm: c}
}

// Plan produces the implementation plan for a task.
func (p *Planner) Plan(ctx context.Context, in PlanInput) (*models.Plan, error) {
	resp, err := p.llm.Complete(ctx, llm.Request{
		Purpose: llm.PurposePlan,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: buildPlannerPrompt(in)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("planner completion: %w", err)
	}

	var plan models.Plan
	if err := parseJSON(resp.Content, &plan); err != nil {
		return nil, fmt.Errorf("planner output: %w", err)
	}
	if len(plan.Steps) == 0 {
		return nil, fmt.Errorf("planner returned an empty plan")
	}
	return &plan, nil
}

func buildPlannerPrompt(in PlanInput) string {
	var b strings.Builder
	b.WriteString(section("Issue", fmt.Sprintf("%s (#%d in %s)\n\n%s",
		in.Task.Title, in.Task.IssueNumber, in.Task.Repo, in.Task.Body)))
	b.WriteString(section("Allowed paths", bulletList(in.AllowedPaths)))
	b.WriteString(section("Blocked paths", bulletList(in.BlockedPaths)))
	b.WriteString(section("Tech stack", bulletList(in.TechStack)))
	b.WriteString(section("Prior knowledge", in.Knowledge))
	b.WriteString(section("Feedback from previous attempt", in.Feedback))
	return b.String()
}

// DecomposeInput asks for a sub-task split of an approved plan.
type DecomposeInput struct {
	Task models.TaskContext
	Plan *models.Plan
}

const decomposeSystemPrompt = `You split an implementation plan into independent sub-tasks of XS or S complexity.
Respond with a single JSON object:
{"subtasks": [{"index": 0, "title": "...", "description": "...", "target_files": ["..."], "definition_of_done": ["..."]}]}
Sub-tasks are executed independently; avoid assigning the same file to more than one unless unavoidable.`

// Decompose splits a multi-file plan into sub-tasks for orchestration.
func (p *Planner) Decompose(ctx context.Context, in DecomposeInput) ([]models.Subtask, error) {
	planJSON, err := planAsJSON(in.Plan)
	if err != nil {
		return nil, err
	}
	resp, err := p.llm.Complete(ctx, llm.Request{
		Purpose: llm.PurposePlan,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: decomposeSystemPrompt},
			{Role: llm.RoleUser, Content: section("Issue", in.Task.Title) + section("Plan", planJSON)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decompose completion: %w", err)
	}

	var out struct {
		Subtasks []models.Subtask `json:"subtasks"`
	}
	if err := parseJSON(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decompose output: %w", err)
	}
	if len(out.Subtasks) < 2 {
		return nil, fmt.Errorf("decomposition produced %d sub-tasks, need at least 2", len(out.Subtasks))
	}
	for i := range out.Subtasks {
		out.Subtasks[i].Index = i
	}
	return out.Subtasks, nil
}
