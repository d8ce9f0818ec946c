package llm

import (
	"context"
	"errors"
	"fmt"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openaiChat and openaiEmbeddings capture the SDK surface used here,
// satisfied by the respective services on oa.Client.
type openaiChat interface {
	New(ctx context.Context, body oa.ChatCompletionNewParams, opts ...option.RequestOption) (*oa.ChatCompletion, error)
}

type openaiEmbeddings interface {
	New(ctx context.Context, body oa.EmbeddingNewParams, opts ...option.RequestOption) (*oa.CreateEmbeddingResponse, error)
}

// OpenAIClient issues completions and embeddings through the OpenAI API.
type OpenAIClient struct {
	chat       openaiChat
	embeddings openaiEmbeddings
	embedModel string
}

// NewOpenAIClient builds a client from an API key. embedModel may be empty
// when only completions are needed.
func NewOpenAIClient(apiKey, embedModel string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	cl := oa.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		chat:       &cl.Chat.Completions,
		embeddings: &cl.Embeddings,
		embedModel: embedModel,
	}, nil
}

// Complete implements Completer.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (Response, error) {
	if len(req.Messages) == 0 {
		return Response{}, errors.New("openai: messages are required")
	}
	if req.Model == "" {
		return Response{}, errors.New("openai: model identifier is required")
	}

	msgs := make([]oa.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, oa.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, oa.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, oa.UserMessage(m.Content))
		}
	}

	params := oa.ChatCompletionNewParams{
		Model:    oa.ChatModel(req.Model),
		Messages: msgs,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = oa.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = oa.Float(req.Temperature)
	}

	out, err := c.chat.New(ctx, params)
	if err != nil {
		return Response{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return Response{}, errors.New("openai: response contains no choices")
	}
	return Response{
		Content:   out.Choices[0].Message.Content,
		Model:     out.Model,
		TokensIn:  out.Usage.PromptTokens,
		TokensOut: out.Usage.CompletionTokens,
	}, nil
}

// Embed implements Embedder. Vectors are padded or truncated to
// EmbeddingDimension so storage stays fixed-width across models.
func (c *OpenAIClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if c.embedModel == "" {
		return nil, errors.New("openai: no embedding model configured")
	}
	if len(texts) == 0 {
		return nil, nil
	}

	out, err := c.embeddings.New(ctx, oa.EmbeddingNewParams{
		Model: oa.EmbeddingModel(c.embedModel),
		Input: oa.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(out.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(out.Data), len(texts))
	}

	vectors := make([][]float32, len(out.Data))
	for i, d := range out.Data {
		v := make([]float32, EmbeddingDimension)
		for j, x := range d.Embedding {
			if j >= EmbeddingDimension {
				break
			}
			v[j] = float32(x)
		}
		vectors[i] = v
	}
	return vectors, nil
}

// Dimension implements Embedder.
func (c *OpenAIClient) Dimension() int { return EmbeddingDimension }
