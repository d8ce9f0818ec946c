// Package config loads and validates forgeflow configuration.
// Configuration comes from forgeflow.yaml in the config directory, with
// environment variables expanded and built-in defaults merged underneath.
package config

import "fmt"

// Config is the fully merged, validated runtime configuration.
type Config struct {
	System    *SystemConfig    `yaml:"system"`
	Queue     *QueueConfig     `yaml:"queue"`
	LLM       *LLMConfig       `yaml:"llm"`
	Loop      *LoopConfig      `yaml:"loop"`
	Sandbox   *SandboxConfig   `yaml:"sandbox"`
	Validator *ValidatorConfig `yaml:"validator"`
	Archival  *ArchivalConfig  `yaml:"archival"`
}

// SystemConfig groups system-wide integration settings.
type SystemConfig struct {
	GitHost   *GitHostConfig   `yaml:"git_host"`
	Tracker   *TrackerConfig   `yaml:"tracker"`
	Webhook   *WebhookConfig   `yaml:"webhook"`
	Retention *RetentionConfig `yaml:"retention"`
}

// GitHostConfig holds code-host integration settings.
type GitHostConfig struct {
	BaseURL  string `yaml:"base_url,omitempty"` // Defaults to the public API
	TokenEnv string `yaml:"token_env,omitempty"`
}

// TrackerConfig holds issue-tracker integration settings.
type TrackerConfig struct {
	BaseURL       string `yaml:"base_url,omitempty"`
	TokenEnv      string `yaml:"token_env,omitempty"`
	InReviewState string `yaml:"in_review_state,omitempty"` // Ticket state set after PR opens
}

// WebhookConfig holds inbound webhook settings.
type WebhookConfig struct {
	SecretEnv   string `yaml:"secret_env,omitempty"` // Env var carrying the HMAC secret
	MaxAttempts int    `yaml:"max_attempts,omitempty"`
}

// RetentionConfig holds cleanup settings.
type RetentionConfig struct {
	CleanupInterval Duration `yaml:"cleanup_interval,omitempty"`
	TaskTTL         Duration `yaml:"task_ttl,omitempty"` // Soft-deleted task purge age
}

// LLMConfig holds provider credentials lookup and per-purpose model settings.
type LLMConfig struct {
	AnthropicKeyEnv string `yaml:"anthropic_key_env,omitempty"`
	OpenAIKeyEnv    string `yaml:"openai_key_env,omitempty"`

	// Models maps a purpose (plan, code, fix, reflect, summarize, embed) to
	// its model settings. Rows in model_configs override these at runtime.
	Models map[string]ModelSettings `yaml:"models,omitempty"`

	// EmbeddingModel used by Embed; empty disables embeddings and archival
	// search degrades to full-text rank.
	EmbeddingModel string `yaml:"embedding_model,omitempty"`
}

// ModelSettings configures one LLM purpose.
type ModelSettings struct {
	Provider        string  `yaml:"provider"` // "anthropic" or "openai"
	Model           string  `yaml:"model"`
	MaxTokens       int     `yaml:"max_tokens,omitempty"`
	Temperature     float64 `yaml:"temperature,omitempty"`
	ReasoningEffort string  `yaml:"reasoning_effort,omitempty"`
}

// LoopConfig bounds the agentic fix loop and orchestrator retries.
type LoopConfig struct {
	MaxIterations       int     `yaml:"max_iterations,omitempty"`
	MaxReplans          int     `yaml:"max_replans,omitempty"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold,omitempty"`
	MaxAttempts         int     `yaml:"max_attempts,omitempty"` // Task-level attempt cap
}

// SandboxConfig controls the Foreman scratch workspace and command policy.
type SandboxConfig struct {
	WorkDirRoot         string   `yaml:"workdir_root,omitempty"`
	CloneTimeout        Duration `yaml:"clone_timeout,omitempty"`
	InstallTimeout      Duration `yaml:"install_timeout,omitempty"`
	TypecheckTimeout    Duration `yaml:"typecheck_timeout,omitempty"`
	TestTimeout         Duration `yaml:"test_timeout,omitempty"`
	CleanupOnSuccess    *bool    `yaml:"cleanup_on_success,omitempty"`
	AllowCustomCommands bool     `yaml:"allow_custom_commands,omitempty"`
}

// CleanupOnSuccessEnabled returns the effective cleanup flag (default true).
func (s *SandboxConfig) CleanupOnSuccessEnabled() bool {
	return s.CleanupOnSuccess == nil || *s.CleanupOnSuccess
}

// ValidatorConfig bounds the deterministic check pipeline.
type ValidatorConfig struct {
	MaxTypeErrors int      `yaml:"max_type_errors,omitempty"` // Terminal above this
	CheckTimeout  Duration `yaml:"check_timeout,omitempty"`
}

// ArchivalConfig controls semantic retrieval and pattern promotion.
type ArchivalConfig struct {
	SimilarityThreshold float64  `yaml:"similarity_threshold,omitempty"`
	MinConfidence       float64  `yaml:"min_confidence,omitempty"` // Pattern promotion gate
	MinImportance       float64  `yaml:"min_importance,omitempty"` // Archival promotion gate
	TopK                int      `yaml:"top_k,omitempty"`
	DefaultTTL          Duration `yaml:"default_ttl,omitempty"` // expires_at for task-scoped rows
}

// validate checks cross-field consistency after merge.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", cfg.Queue.WorkerCount)
	}
	if cfg.Queue.MaxConcurrentTasks < cfg.Queue.WorkerCount {
		return fmt.Errorf("queue.max_concurrent_tasks (%d) must be >= worker_count (%d)",
			cfg.Queue.MaxConcurrentTasks, cfg.Queue.WorkerCount)
	}
	if cfg.Loop.MaxIterations < 1 {
		return fmt.Errorf("loop.max_iterations must be >= 1, got %d", cfg.Loop.MaxIterations)
	}
	if cfg.Loop.MaxReplans < 0 {
		return fmt.Errorf("loop.max_replans must be >= 0, got %d", cfg.Loop.MaxReplans)
	}
	if t := cfg.Archival.SimilarityThreshold; t < 0 || t > 1 {
		return fmt.Errorf("archival.similarity_threshold must be in [0,1], got %v", t)
	}
	for purpose, m := range cfg.LLM.Models {
		if m.Provider != "anthropic" && m.Provider != "openai" {
			return fmt.Errorf("llm.models.%s.provider must be anthropic or openai, got %q", purpose, m.Provider)
		}
		if m.Model == "" {
			return fmt.Errorf("llm.models.%s.model is required", purpose)
		}
	}
	return nil
}
