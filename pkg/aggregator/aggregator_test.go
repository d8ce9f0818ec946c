package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/models"
)

func fileDiff(path, removed, added string) string {
	return "--- " + path + "\n+++ " + path + "\n@@ -1,1 +1,1 @@\n-" + removed + "\n+" + added + "\n"
}

func TestAggregateSingleSubtaskIsIdentity(t *testing.T) {
	diff := fileDiff("src/a.ts", "old", "new")
	res, err := Aggregate(models.TaskContext{Title: "t", IssueNumber: 1}, []SubtaskResult{{
		Subtask:       models.Subtask{Index: 0, Title: "only"},
		Diff:          diff,
		CommitMessage: "do the thing",
	}})
	require.NoError(t, err)

	assert.Equal(t, diff, res.Diff)
	assert.Empty(t, res.Conflicts)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "src/a.ts", res.Files[0].Path)
	assert.Equal(t, 0, res.Files[0].SubtaskIndex)
}

func TestAggregateDisjointFiles(t *testing.T) {
	res, err := Aggregate(models.TaskContext{Title: "t", IssueNumber: 2}, []SubtaskResult{
		{Subtask: models.Subtask{Index: 0, Title: "first"}, Diff: fileDiff("a.ts", "x", "y")},
		{Subtask: models.Subtask{Index: 1, Title: "second"}, Diff: fileDiff("b.ts", "p", "q")},
	})
	require.NoError(t, err)

	assert.Empty(t, res.Conflicts)
	require.Len(t, res.Files, 2)
	assert.Contains(t, res.Diff, "--- a.ts")
	assert.Contains(t, res.Diff, "--- b.ts")
	assert.Contains(t, res.Body, "## Subtasks")
	assert.Contains(t, res.Body, "1. first")
	assert.Contains(t, res.Body, "2. second")
}

func TestAggregateConflictLastWriterWins(t *testing.T) {
	res, err := Aggregate(models.TaskContext{Title: "t", IssueNumber: 3}, []SubtaskResult{
		// Out of order on purpose: aggregation sorts by subtask index.
		{Subtask: models.Subtask{Index: 1, Title: "later"}, Diff: fileDiff("shared.ts", "x", "later")},
		{Subtask: models.Subtask{Index: 0, Title: "earlier"}, Diff: fileDiff("shared.ts", "x", "earlier")},
	})
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "shared.ts", res.Conflicts[0].Path)
	assert.Equal(t, []int{0, 1}, res.Conflicts[0].SubtaskIndexes)
	assert.Equal(t, 1, res.Conflicts[0].WinnerIndex)

	assert.Contains(t, res.Diff, "+later")
	assert.NotContains(t, res.Diff, "+earlier")
	require.Len(t, res.Files, 1)
	assert.Equal(t, 1, res.Files[0].SubtaskIndex)
	assert.Contains(t, res.Body, "## Conflicts")
	assert.Contains(t, res.Body, "`shared.ts`")
}

func TestAggregateEmptyInputs(t *testing.T) {
	_, err := Aggregate(models.TaskContext{}, nil)
	assert.Error(t, err)

	_, err = Aggregate(models.TaskContext{}, []SubtaskResult{{
		Subtask: models.Subtask{Index: 0},
		Diff:    "",
	}})
	assert.ErrorContains(t, err, "no file changes")
}

func TestCommitMessage(t *testing.T) {
	task := models.TaskContext{Title: "Add retries", IssueNumber: 9}
	single := []SubtaskResult{{CommitMessage: "add retry wrapper"}}
	assert.Equal(t, "add retry wrapper", CommitMessage(task, single))

	multi := []SubtaskResult{{CommitMessage: "a"}, {CommitMessage: "b"}}
	assert.Equal(t, "Add retries (#9)", CommitMessage(task, multi))
}

func TestBodyIncludesDefinitionOfDone(t *testing.T) {
	res, err := Aggregate(models.TaskContext{
		Title:            "t",
		IssueNumber:      4,
		DefinitionOfDone: []string{"tests pass", "docs updated"},
	}, []SubtaskResult{{
		Subtask: models.Subtask{Index: 0, Title: "only"},
		Diff:    fileDiff("a.ts", "x", "y"),
	}})
	require.NoError(t, err)
	assert.Contains(t, res.Body, "- [ ] tests pass")
	assert.Contains(t, res.Body, "- [ ] docs updated")
}
