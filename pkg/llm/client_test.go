package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/config"
)

type captureCompleter struct {
	last Request
	resp Response
}

func (c *captureCompleter) Complete(_ context.Context, req Request) (Response, error) {
	c.last = req
	return c.resp, nil
}

func TestCompleteAppliesPurposeSettings(t *testing.T) {
	fake := &captureCompleter{resp: Response{Content: "ok"}}
	c := &Client{
		cfg: &config.LLMConfig{
			Models: map[string]config.ModelSettings{
				"plan": {Provider: "anthropic", Model: "claude-sonnet-4-5", MaxTokens: 4096, Temperature: 0.2},
			},
		},
		anthropic: fake,
	}

	resp, err := c.Complete(context.Background(), Request{
		Purpose:  PurposePlan,
		Messages: []Message{{Role: RoleUser, Content: "plan it"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, "claude-sonnet-4-5", fake.last.Model)
	assert.Equal(t, 4096, fake.last.MaxTokens)
	assert.InDelta(t, 0.2, fake.last.Temperature, 1e-9)
}

func TestCompleteRequestOverridesWin(t *testing.T) {
	fake := &captureCompleter{}
	c := &Client{
		cfg: &config.LLMConfig{
			Models: map[string]config.ModelSettings{
				"fix": {Provider: "anthropic", Model: "claude-sonnet-4-5", MaxTokens: 4096},
			},
		},
		anthropic: fake,
	}

	_, err := c.Complete(context.Background(), Request{
		Purpose:   PurposeFix,
		Model:     "claude-haiku-4-5",
		MaxTokens: 1024,
		Messages:  []Message{{Role: RoleUser, Content: "fix it"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", fake.last.Model)
	assert.Equal(t, 1024, fake.last.MaxTokens)
}

func TestCompleteUnknownPurpose(t *testing.T) {
	c := &Client{cfg: &config.LLMConfig{Models: map[string]config.ModelSettings{}}}
	_, err := c.Complete(context.Background(), Request{Purpose: Purpose("review")})
	assert.ErrorContains(t, err, `no model configured for purpose "review"`)
}

func TestCompleteUnconfiguredProvider(t *testing.T) {
	c := &Client{
		cfg: &config.LLMConfig{
			Models: map[string]config.ModelSettings{
				"code": {Provider: "openai", Model: "gpt-4o"},
			},
		},
	}
	_, err := c.Complete(context.Background(), Request{Purpose: PurposeCode})
	assert.ErrorContains(t, err, "no key is set")
}

func TestEmbedderDisabledWithoutModel(t *testing.T) {
	c := &Client{cfg: &config.LLMConfig{}}
	assert.Nil(t, c.Embedder())
}
