package config

import "time"

// DefaultConfig returns the built-in configuration. User YAML overrides
// these values field by field (mergo merge with override).
func DefaultConfig() *Config {
	return &Config{
		System: &SystemConfig{
			GitHost: &GitHostConfig{
				BaseURL:  "https://api.github.com",
				TokenEnv: "GITHOST_TOKEN",
			},
			Tracker: &TrackerConfig{
				TokenEnv:      "TRACKER_TOKEN",
				InReviewState: "In Review",
			},
			Webhook: &WebhookConfig{
				SecretEnv:   "WEBHOOK_SECRET",
				MaxAttempts: 5,
			},
			Retention: &RetentionConfig{
				CleanupInterval: Duration(1 * time.Hour),
				TaskTTL:         Duration(30 * 24 * time.Hour),
			},
		},
		Queue: DefaultQueueConfig(),
		LLM: &LLMConfig{
			AnthropicKeyEnv: "ANTHROPIC_API_KEY",
			OpenAIKeyEnv:    "OPENAI_API_KEY",
			EmbeddingModel:  "text-embedding-3-small",
			Models: map[string]ModelSettings{
				"plan":      {Provider: "anthropic", Model: "claude-sonnet-4-5", MaxTokens: 8192, Temperature: 0.2},
				"code":      {Provider: "anthropic", Model: "claude-sonnet-4-5", MaxTokens: 16384, Temperature: 0.1},
				"fix":       {Provider: "anthropic", Model: "claude-sonnet-4-5", MaxTokens: 16384, Temperature: 0.1},
				"reflect":   {Provider: "anthropic", Model: "claude-sonnet-4-5", MaxTokens: 4096, Temperature: 0.0},
				"summarize": {Provider: "openai", Model: "gpt-4o-mini", MaxTokens: 1024, Temperature: 0.2},
			},
		},
		Loop: &LoopConfig{
			MaxIterations:       5,
			MaxReplans:          2,
			ConfidenceThreshold: 0.6,
			MaxAttempts:         3,
		},
		Sandbox: &SandboxConfig{
			WorkDirRoot:      "", // os.TempDir when empty
			CloneTimeout:     Duration(120 * time.Second),
			InstallTimeout:   Duration(300 * time.Second),
			TypecheckTimeout: Duration(120 * time.Second),
			TestTimeout:      Duration(300 * time.Second),
		},
		Validator: &ValidatorConfig{
			MaxTypeErrors: 50,
			CheckTimeout:  Duration(60 * time.Second),
		},
		Archival: &ArchivalConfig{
			SimilarityThreshold: 0.7,
			MinConfidence:       0.7,
			MinImportance:       0.8,
			TopK:                5,
			DefaultTTL:          Duration(90 * 24 * time.Hour),
		},
	}
}
