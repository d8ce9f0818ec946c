// Package llm provides the completion and embedding façade over the model
// providers. Callers address models by purpose; provider and model selection
// live in configuration.
package llm

import "context"

// Purpose selects the model settings for one pipeline role.
type Purpose string

// Pipeline purposes. Each maps to a configured provider+model pair.
const (
	PurposePlan      Purpose = "plan"
	PurposeCode      Purpose = "code"
	PurposeFix       Purpose = "fix"
	PurposeReflect   Purpose = "reflect"
	PurposeSummarize Purpose = "summarize"
	PurposeEmbed     Purpose = "embed"
)

// Role is a chat message role.
type Role string

// Chat roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role
	Content string
}

// Request is a provider-independent completion request.
type Request struct {
	Purpose  Purpose
	Messages []Message

	// Overrides; zero values defer to the purpose's configured settings.
	Model       string
	MaxTokens   int
	Temperature float64
}

// Response is a provider-independent completion result.
type Response struct {
	Content   string
	Model     string
	TokensIn  int64
	TokensOut int64
}

// Completer issues chat completions.
type Completer interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// Embedder converts texts into fixed-dimension vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// EmbeddingDimension is the fixed archival vector width. All stored
// embeddings are padded or truncated to this length.
const EmbeddingDimension = 1536
