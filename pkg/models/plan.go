package models

// PlanStep is one ordered step of an implementation plan.
type PlanStep struct {
	Description string   `json:"description"`
	Files       []string `json:"files,omitempty"`
	Rationale   string   `json:"rationale,omitempty"`
}

// Plan is the planner agent's structured output.
type Plan struct {
	Steps               []PlanStep `json:"steps"`
	TargetFiles         []string   `json:"target_files"`
	DefinitionOfDone    []string   `json:"definition_of_done"`
	EstimatedComplexity Complexity `json:"estimated_complexity"`
	Risks               []string   `json:"risks,omitempty"`
}

// Files returns the union of plan-level and step-level target files,
// deduplicated, in first-seen order.
func (p *Plan) Files() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, f := range p.TargetFiles {
		add(f)
	}
	for _, s := range p.Steps {
		for _, f := range s.Files {
			add(f)
		}
	}
	return out
}

// Subtask is one unit of a decomposed plan, executed as a child task.
type Subtask struct {
	Index            int      `json:"index"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	TargetFiles      []string `json:"target_files"`
	DefinitionOfDone []string `json:"definition_of_done"`
}

// CodeOutput is the coder (or fixer) agent's structured output.
type CodeOutput struct {
	Diff          string   `json:"diff"`
	CommitMessage string   `json:"commit_message"`
	FilesModified []string `json:"files_modified"`
	Notes         string   `json:"notes,omitempty"`
}
