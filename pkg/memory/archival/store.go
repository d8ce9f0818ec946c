// Package archival implements the long-term, embedding-indexed memory
// shared across tasks: insert-only content, semantic search with a lexical
// fallback, progressive recall, and the learned-pattern lifecycle.
package archival

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/llm"
)

// Store is the archival memory service. Content writes are insert-only;
// only access metadata and importance mutate after insert.
type Store struct {
	client   *ent.Client
	embedder llm.Embedder // nil disables semantic ranking
	cfg      *config.ArchivalConfig
}

// NewStore creates an archival store. A nil embedder degrades search to
// full-text rank.
func NewStore(client *ent.Client, embedder llm.Embedder, cfg *config.ArchivalConfig) *Store {
	if client == nil {
		panic("NewStore: client must not be nil")
	}
	if cfg == nil {
		panic("NewStore: cfg must not be nil")
	}
	return &Store{client: client, embedder: embedder, cfg: cfg}
}

// InsertInput describes one archival record.
type InsertInput struct {
	Content         string
	Summary         string
	SourceType      archivalmemory.SourceType
	SourceID        string
	Repo            string
	TaskID          string
	IsGlobal        bool
	Metadata        map[string]interface{}
	ImportanceScore float64 // zero keeps the schema default of 0.5
}

// Insert archives one record. Task-scoped non-global rows get an expiry of
// now + the configured TTL; global rows never expire.
func (s *Store) Insert(ctx context.Context, in InsertInput) (*ent.ArchivalMemory, error) {
	if in.Content == "" {
		return nil, fmt.Errorf("archival insert requires content")
	}

	embedding := s.embed(ctx, in.Content)

	builder := s.client.ArchivalMemory.Create().
		SetID(uuid.New().String()).
		SetContent(in.Content).
		SetEmbedding(embedding).
		SetSourceType(in.SourceType).
		SetIsGlobal(in.IsGlobal).
		SetTokenCount(estimateTokens(in.Content))
	if in.Summary != "" {
		builder.SetSummary(in.Summary)
	}
	if in.SourceID != "" {
		builder.SetSourceID(in.SourceID)
	}
	if in.Repo != "" {
		builder.SetRepo(in.Repo)
	}
	if in.TaskID != "" {
		builder.SetTaskID(in.TaskID)
	}
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}
	if in.ImportanceScore > 0 {
		builder.SetImportanceScore(in.ImportanceScore)
	}
	if in.TaskID != "" && !in.IsGlobal && s.cfg.DefaultTTL.Std() > 0 {
		builder.SetExpiresAt(time.Now().Add(s.cfg.DefaultTTL.Std()))
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert archival memory: %w", err)
	}
	return row, nil
}

// embed returns the content embedding, or the zero vector when embeddings
// are unavailable. The zero vector never clears a similarity threshold, so
// such rows are only reachable through the lexical path.
func (s *Store) embed(ctx context.Context, text string) []float32 {
	if s.embedder == nil {
		return make([]float32, llm.EmbeddingDimension)
	}
	vectors, err := s.embedder.Embed(ctx, []string{text})
	if err != nil || len(vectors) != 1 {
		return make([]float32, llm.EmbeddingDimension)
	}
	return vectors[0]
}

// CleanupExpired removes rows past their expiry. Idempotent.
func (s *Store) CleanupExpired(ctx context.Context) (int, error) {
	n, err := s.client.ArchivalMemory.Delete().
		Where(
			archivalmemory.ExpiresAtNotNil(),
			archivalmemory.ExpiresAtLT(time.Now()),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup expired archival memory: %w", err)
	}
	return n, nil
}

// PromoteImportant marks a completed task's archival rows with importance
// at or above the configured gate as global, stripping their expiry.
func (s *Store) PromoteImportant(ctx context.Context, taskID string) (int, error) {
	n, err := s.client.ArchivalMemory.Update().
		Where(
			archivalmemory.TaskID(taskID),
			archivalmemory.IsGlobal(false),
			archivalmemory.ImportanceScoreGTE(s.cfg.MinImportance),
		).
		SetIsGlobal(true).
		ClearExpiresAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("promote important memories for task %s: %w", taskID, err)
	}
	return n, nil
}

// Rough heuristic: ~4 characters per token for English-ish content.
func estimateTokens(s string) int {
	return (len(s) + 3) / 4
}
