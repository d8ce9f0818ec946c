// Package agent holds the LLM-backed pipeline roles: planner, coder,
// fixer, and reflector. Each builds a prompt, calls the completion façade,
// and parses a strictly-typed result out of the model's reply.
package agent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Agent names used in session memory, progress entries, and hook events.
const (
	NamePlanner   = "planner"
	NameCoder     = "coder"
	NameFixer     = "fixer"
	NameReflector = "reflector"
)

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n?```")

// parseJSON extracts the first JSON object from a model reply and decodes
// it into out. Handles fenced blocks and leading/trailing prose.
func parseJSON(content string, out any) error {
	candidate := strings.TrimSpace(content)
	if m := jsonFenceRe.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}
	if i := strings.IndexByte(candidate, '{'); i > 0 {
		candidate = candidate[i:]
	}
	if i := strings.LastIndexByte(candidate, '}'); i >= 0 {
		candidate = candidate[:i+1]
	}
	if err := json.Unmarshal([]byte(candidate), out); err != nil {
		return fmt.Errorf("parse agent output: %w", err)
	}
	return nil
}

// clamp01 bounds a model-reported confidence into [0,1].
func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// section renders one labeled prompt block; empty bodies are dropped.
func section(label, body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	return "## " + label + "\n" + body + "\n\n"
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}
