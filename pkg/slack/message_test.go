package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessage(t *testing.T) {
	blocks := BuildStartedMessage(TaskStartedInput{
		TaskID:      "task-123",
		Repo:        "acme/widgets",
		IssueNumber: 42,
		Title:       "Fix widget rendering",
	}, "https://forgeflow.example.com")

	require.Len(t, blocks, 1)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":arrows_counterclockwise:")
	assert.Contains(t, section.Text.Text, "acme/widgets#42")
	assert.Contains(t, section.Text.Text, "task task-123")
	assert.Contains(t, section.Text.Text, "https://forgeflow.example.com/tasks/task-123")
}

func TestBuildTerminalMessage_Completed(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:      "task-1",
		Repo:        "acme/widgets",
		IssueNumber: 7,
		Title:       "Fix widget rendering",
		Status:      "completed",
		PRURL:       "https://github.com/acme/widgets/pull/99",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.GreaterOrEqual(t, len(blocks), 2)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Draft PR Opened")
	assert.Contains(t, header.Text.Text, "https://github.com/acme/widgets/pull/99")

	action := blocks[1].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Task", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/tasks/task-1")
}

func TestBuildTerminalMessage_Failed(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:        "task-2",
		Repo:          "acme/widgets",
		IssueNumber:   8,
		Status:        "failed",
		FailureReason: "budget_exhausted",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Task Failed")
	assert.Contains(t, header.Text.Text, "budget_exhausted")
}

func TestBuildTerminalMessage_WaitingHuman(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:        "task-3",
		Repo:          "acme/widgets",
		IssueNumber:   9,
		Status:        "waiting_human",
		FailureReason: "foreman_test",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":raised_hand:")
	assert.Contains(t, header.Text.Text, "Needs Human Review")
	assert.Contains(t, header.Text.Text, "foreman_test")
}

func TestBuildTerminalMessage_NoDashboard(t *testing.T) {
	input := TaskFinishedInput{
		TaskID: "task-4",
		Repo:   "acme/widgets",
		Status: "cancelled",
	}
	blocks := BuildTerminalMessage(input, "")

	require.Len(t, blocks, 1)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":no_entry_sign:")
	assert.Contains(t, header.Text.Text, "Task Cancelled")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})
}
