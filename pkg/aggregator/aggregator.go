// Package aggregator merges the diffs produced by decomposed subtasks into
// one combined change set and renders the pull request body for it.
package aggregator

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/patch"
)

// SubtaskResult is one completed subtask's contribution.
type SubtaskResult struct {
	Subtask       models.Subtask
	Diff          string // normalized unified diff
	CommitMessage string
}

// FileAttribution records which subtask's change won a file.
type FileAttribution struct {
	Path         string `json:"path"`
	SubtaskIndex int    `json:"subtask_index"`
	SubtaskTitle string `json:"subtask_title"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
}

// Conflict is a file touched by more than one subtask. The change from the
// highest-index subtask wins; the others are discarded.
type Conflict struct {
	Path           string `json:"path"`
	SubtaskIndexes []int  `json:"subtask_indexes"`
	WinnerIndex    int    `json:"winner_index"`
}

// Result is the combined change set for the parent task.
type Result struct {
	Diff      string            `json:"diff"`
	Files     []FileAttribution `json:"files"`
	Conflicts []Conflict        `json:"conflicts"`
	Body      string            `json:"body"` // pull request description
}

// Aggregate merges subtask diffs in ascending subtask index order. When two
// subtasks touch the same file the later one wins whole-file, which keeps
// the combined diff applicable without hunk-level merging. The PR body
// enumerates subtasks, conflicts, and the final file list.
func Aggregate(task models.TaskContext, results []SubtaskResult) (*Result, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("nothing to aggregate")
	}

	ordered := make([]SubtaskResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Subtask.Index < ordered[j].Subtask.Index
	})

	winners := make(map[string]FileAttribution)
	bodies := make(map[string]string)
	touchedBy := make(map[string][]int)
	var order []string

	for _, r := range ordered {
		for _, fc := range patch.SplitFiles(r.Diff) {
			if fc.Path == "" {
				continue
			}
			if _, seen := winners[fc.Path]; !seen {
				order = append(order, fc.Path)
			}
			touchedBy[fc.Path] = append(touchedBy[fc.Path], r.Subtask.Index)
			winners[fc.Path] = FileAttribution{
				Path:         fc.Path,
				SubtaskIndex: r.Subtask.Index,
				SubtaskTitle: r.Subtask.Title,
				LinesAdded:   fc.LinesAdded,
				LinesDeleted: fc.LinesDeleted,
			}
			bodies[fc.Path] = fc.Body
		}
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("no file changes in any subtask diff")
	}

	var conflicts []Conflict
	for _, path := range order {
		idxs := touchedBy[path]
		if len(idxs) > 1 {
			conflicts = append(conflicts, Conflict{
				Path:           path,
				SubtaskIndexes: idxs,
				WinnerIndex:    winners[path].SubtaskIndex,
			})
			slog.Warn("Subtask diff conflict, last writer wins",
				"file", path,
				"subtasks", idxs,
				"winner", winners[path].SubtaskIndex)
		}
	}

	var diff strings.Builder
	files := make([]FileAttribution, 0, len(order))
	for _, path := range order {
		diff.WriteString(bodies[path])
		files = append(files, winners[path])
	}

	return &Result{
		Diff:      diff.String(),
		Files:     files,
		Conflicts: conflicts,
		Body:      renderBody(task, ordered, files, conflicts),
	}, nil
}

// CommitMessage builds a single commit message for the combined change.
func CommitMessage(task models.TaskContext, results []SubtaskResult) string {
	if len(results) == 1 && results[0].CommitMessage != "" {
		return results[0].CommitMessage
	}
	return fmt.Sprintf("%s (#%d)", task.Title, task.IssueNumber)
}

func renderBody(task models.TaskContext, results []SubtaskResult, files []FileAttribution, conflicts []Conflict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resolves #%d: %s\n\n", task.IssueNumber, task.Title)

	if len(results) > 1 {
		b.WriteString("## Subtasks\n\n")
		for _, r := range results {
			fmt.Fprintf(&b, "%d. %s", r.Subtask.Index+1, r.Subtask.Title)
			if r.CommitMessage != "" {
				fmt.Fprintf(&b, " (%s)", r.CommitMessage)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if len(conflicts) > 0 {
		b.WriteString("## Conflicts\n\n")
		b.WriteString("These files were modified by multiple subtasks; the later subtask's version was kept:\n\n")
		for _, c := range conflicts {
			fmt.Fprintf(&b, "- `%s` (subtasks %s, kept %d)\n",
				c.Path, joinInts(c.SubtaskIndexes), c.WinnerIndex+1)
		}
		b.WriteByte('\n')
	}

	b.WriteString("## Files changed\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s` (+%d/-%d)\n", f.Path, f.LinesAdded, f.LinesDeleted)
	}

	if len(task.DefinitionOfDone) > 0 {
		b.WriteString("\n## Definition of done\n\n")
		for _, d := range task.DefinitionOfDone {
			fmt.Fprintf(&b, "- [ ] %s\n", d)
		}
	}
	return b.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x+1)
	}
	return strings.Join(parts, ", ")
}
