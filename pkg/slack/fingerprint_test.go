package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "Task FAILED in validation",
			expected: "task failed in validation",
		},
		{
			name:     "collapse whitespace",
			input:    "task   failed\t\tin\n\nvalidation",
			expected: "task failed in validation",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case and whitespace",
			input:    "  Task   a3f8c2d1   acme/widgets#42  ",
			expected: "task a3f8c2d1 acme/widgets#42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "notice",
					Attachments: []goslack.Attachment{
						{Text: "build failed"},
					},
				},
			},
			expected: "notice build failed",
		},
		{
			name: "text with attachment fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "notice",
					Attachments: []goslack.Attachment{
						{Fallback: "build failed fallback"},
					},
				},
			},
			expected: "notice build failed fallback",
		},
		{
			name: "attachment with both text and fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Attachments: []goslack.Attachment{
						{Text: "att text", Fallback: "att fallback"},
					},
				},
			},
			expected: "att text att fallback",
		},
		{
			name: "section block text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Blocks: goslack.Blocks{BlockSet: []goslack.Block{
						goslack.NewSectionBlock(
							goslack.NewTextBlockObject(goslack.MarkdownType,
								"*Task Failed* task abc-123", false, false),
							nil, nil,
						),
					}},
				},
			},
			expected: "*Task Failed* task abc-123",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}
