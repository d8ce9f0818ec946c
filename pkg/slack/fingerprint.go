package slack

import (
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeText lowercases and collapses whitespace so fingerprint matching
// survives Slack's markdown rendering.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// collectMessageText gathers all searchable text from a channel message.
// Task notifications are posted as Block Kit section blocks, so the block
// set is scanned in addition to the plain text and attachment fields.
func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, block := range msg.Blocks.BlockSet {
		section, ok := block.(*goslack.SectionBlock)
		if !ok || section.Text == nil {
			continue
		}
		if section.Text.Text != "" {
			parts = append(parts, section.Text.Text)
		}
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
