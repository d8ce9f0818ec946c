package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/forgeflow/forgeflow/pkg/config"
)

// Client routes completion requests to the provider configured for each
// purpose and exposes the optional embedder.
type Client struct {
	cfg       *config.LLMConfig
	anthropic Completer
	openai    *OpenAIClient
}

// NewClient builds the routing client. Provider credentials come from the
// environment variables named in the configuration; a provider with no key
// is left unconfigured and requests routed to it fail at call time.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	c := &Client{cfg: cfg}

	if key := os.Getenv(cfg.AnthropicKeyEnv); key != "" {
		ac, err := NewAnthropicClient(key)
		if err != nil {
			return nil, fmt.Errorf("configure anthropic provider: %w", err)
		}
		c.anthropic = ac
	}
	if key := os.Getenv(cfg.OpenAIKeyEnv); key != "" {
		oc, err := NewOpenAIClient(key, cfg.EmbeddingModel)
		if err != nil {
			return nil, fmt.Errorf("configure openai provider: %w", err)
		}
		c.openai = oc
	}
	if c.anthropic == nil && c.openai == nil {
		return nil, fmt.Errorf("no LLM provider configured (set %s or %s)",
			cfg.AnthropicKeyEnv, cfg.OpenAIKeyEnv)
	}

	slog.Info("LLM client configured",
		"anthropic", c.anthropic != nil,
		"openai", c.openai != nil,
		"embedding_model", cfg.EmbeddingModel)
	return c, nil
}

// Complete resolves the purpose's model settings and dispatches to its
// provider. Request overrides win over configured settings.
func (c *Client) Complete(ctx context.Context, req Request) (Response, error) {
	settings, ok := c.cfg.Models[string(req.Purpose)]
	if !ok {
		return Response{}, fmt.Errorf("no model configured for purpose %q", req.Purpose)
	}
	if req.Model == "" {
		req.Model = settings.Model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = settings.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = settings.Temperature
	}

	switch settings.Provider {
	case "anthropic":
		if c.anthropic == nil {
			return Response{}, fmt.Errorf("purpose %q routed to anthropic but no key is set", req.Purpose)
		}
		return c.anthropic.Complete(ctx, req)
	case "openai":
		if c.openai == nil {
			return Response{}, fmt.Errorf("purpose %q routed to openai but no key is set", req.Purpose)
		}
		return c.openai.Complete(ctx, req)
	default:
		return Response{}, fmt.Errorf("purpose %q has unknown provider %q", req.Purpose, settings.Provider)
	}
}

// Embedder returns the configured embedder, or nil when embeddings are
// disabled. Callers degrade to lexical retrieval on nil.
func (c *Client) Embedder() Embedder {
	if c.openai == nil || c.cfg.EmbeddingModel == "" {
		return nil
	}
	return c.openai
}
