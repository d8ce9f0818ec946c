package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// MockLLM is a scripted llm.Completer. Responses are queued per purpose and
// consumed in order; an unscripted call fails loudly so a scenario that
// drifts from its script is caught immediately.
type MockLLM struct {
	mu     sync.Mutex
	queued map[llm.Purpose][]string

	// Requests records every completion call for prompt assertions.
	Requests []llm.Request
}

// NewMockLLM creates an empty mock.
func NewMockLLM() *MockLLM {
	return &MockLLM{queued: make(map[llm.Purpose][]string)}
}

// Queue appends a scripted response for a purpose.
func (m *MockLLM) Queue(p llm.Purpose, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queued[p] = append(m.queued[p], content)
}

// Complete pops the next scripted response for the request's purpose.
func (m *MockLLM) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)
	q := m.queued[req.Purpose]
	if len(q) == 0 {
		return llm.Response{}, fmt.Errorf("no scripted response for purpose %q", req.Purpose)
	}
	m.queued[req.Purpose] = q[1:]
	return llm.Response{Content: q[0], Model: "mock"}, nil
}

// PromptFor returns the user prompt of the first recorded request for a
// purpose, or "".
func (m *MockLLM) PromptFor(p llm.Purpose) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, req := range m.Requests {
		if req.Purpose != p {
			continue
		}
		for _, msg := range req.Messages {
			if msg.Role == llm.RoleUser {
				return msg.Content
			}
		}
	}
	return ""
}

// PlanJSON builds a minimal planner reply targeting the given files.
func PlanJSON(complexity models.Complexity, files ...string) string {
	plan := models.Plan{
		Steps: []models.PlanStep{{
			Description: "apply the smallest change that resolves the issue",
			Files:       files,
		}},
		TargetFiles:         files,
		DefinitionOfDone:    []string{"change applied"},
		EstimatedComplexity: complexity,
	}
	raw, _ := json.Marshal(plan)
	return string(raw)
}

// CodeJSON builds a coder reply around a diff.
func CodeJSON(diff, commitMessage string) string {
	raw, _ := json.Marshal(map[string]any{
		"diff":           diff,
		"commit_message": commitMessage,
	})
	return string(raw)
}

// SampleDiff returns a valid one-hunk unified diff against a file whose
// first line is "# widgets".
func SampleDiff(path string) string {
	return fmt.Sprintf("--- a/%s\n+++ b/%s\n@@ -1,1 +1,2 @@\n # widgets\n+Fixed.\n", path, path)
}
