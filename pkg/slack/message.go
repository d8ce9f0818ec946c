package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed":     ":white_check_mark:",
	"failed":        ":x:",
	"waiting_human": ":raised_hand:",
	"cancelled":     ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed":     "Draft PR Opened",
	"failed":        "Task Failed",
	"waiting_human": "Needs Human Review",
	"cancelled":     "Task Cancelled",
}

func taskURL(taskID, dashboardURL string) string {
	return fmt.Sprintf("%s/tasks/%s", dashboardURL, taskID)
}

// taskFingerprint is the thread key embedded in every notification for a
// task, so terminal updates land in the same thread as the start message.
func taskFingerprint(taskID string) string {
	return fmt.Sprintf("task %s", taskID)
}

// BuildStartedMessage creates Block Kit blocks for a task start notification.
func BuildStartedMessage(input TaskStartedInput, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":arrows_counterclockwise: *Working on %s#%d* — %s\n%s",
		input.Repo, input.IssueNumber, input.Title, taskFingerprint(input.TaskID))
	if dashboardURL != "" {
		text += fmt.Sprintf("\n<%s|View task>", taskURL(input.TaskID, dashboardURL))
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildTerminalMessage creates Block Kit blocks for a terminal task
// notification.
func BuildTerminalMessage(input TaskFinishedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Task " + input.Status
	}

	header := fmt.Sprintf("%s *%s* — %s#%d %s\n%s",
		emoji, label, input.Repo, input.IssueNumber, input.Title, taskFingerprint(input.TaskID))

	switch {
	case input.Status == "completed" && input.PRURL != "":
		header += fmt.Sprintf("\n<%s|Review the draft PR>", input.PRURL)
	case input.FailureReason != "":
		header += fmt.Sprintf("\n*Reason:* `%s`", truncateForSlack(input.FailureReason))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	if dashboardURL != "" {
		btn := goslack.NewButtonBlockElement("", "",
			goslack.NewTextBlockObject(goslack.PlainTextType, "View Task", false, false))
		btn.URL = taskURL(input.TaskID, dashboardURL)
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
