package archival

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
)

// SearchQuery scopes and tunes a semantic search.
type SearchQuery struct {
	Query         string
	Repo          string
	TaskID        string
	IncludeGlobal bool
	SourceTypes   []archivalmemory.SourceType
	Threshold     float64 // zero uses the configured default
	TopK          int     // zero uses the configured default
}

// SearchResult pairs a row with its similarity score. Lexical marks results
// ranked by full-text match instead of embeddings.
type SearchResult struct {
	Entry   *ent.ArchivalMemory
	Score   float64
	Lexical bool
}

// Search ranks archival rows by cosine similarity to the query embedding,
// dropping results below the threshold. Without an embedder it degrades to
// a full-text rank over the same scope. Expired rows are invisible either
// way; access metadata updates on every returned row.
func (s *Store) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	if q.Query == "" {
		return nil, fmt.Errorf("search requires a query")
	}
	threshold := q.Threshold
	if threshold == 0 {
		threshold = s.cfg.SimilarityThreshold
	}
	topK := q.TopK
	if topK <= 0 {
		topK = s.cfg.TopK
	}

	var queryVec []float32
	if s.embedder != nil {
		if vectors, err := s.embedder.Embed(ctx, []string{q.Query}); err == nil && len(vectors) == 1 {
			queryVec = vectors[0]
		}
	}
	if queryVec == nil {
		return s.lexicalSearch(ctx, q, topK)
	}

	rows, err := s.scopedQuery(q).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load archival candidates: %w", err)
	}

	results := make([]SearchResult, 0, len(rows))
	for _, row := range rows {
		score := cosineSimilarity(queryVec, row.Embedding)
		if score >= threshold {
			results = append(results, SearchResult{Entry: row, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}

	if err := s.touch(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// lexicalSearch is the deterministic fallback: full-text match over content
// and summary, newest first.
func (s *Store) lexicalSearch(ctx context.Context, q SearchQuery, topK int) ([]SearchResult, error) {
	// Positional placeholders cannot be hardcoded here: the scope
	// predicates already hold bind args, and ent numbers args in order.
	rows, err := s.scopedQuery(q).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				tsMatchP("to_tsvector('english', content)", q.Query),
				tsMatchP("to_tsvector('english', COALESCE(summary, ''))", q.Query),
			))
		}).
		Order(ent.Desc(archivalmemory.FieldCreatedAt)).
		Limit(topK).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lexical archival search: %w", err)
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		results[i] = SearchResult{Entry: row, Lexical: true}
	}
	if err := s.touch(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// tsMatchP builds a full-text match predicate whose placeholder is numbered
// relative to the args already on the builder.
func tsMatchP(vector, query string) *sql.Predicate {
	return sql.P(func(b *sql.Builder) {
		b.WriteString(vector)
		b.WriteString(" @@ plainto_tsquery(")
		b.Arg(query)
		b.WriteString(")")
	})
}

// scopedQuery applies visibility rules: expiry, repo/task scoping, and the
// global flag. A task-scoped search optionally includes global rows; rows
// with neither task binding nor the global flag stay unreachable from
// task scope.
func (s *Store) scopedQuery(q SearchQuery) *ent.ArchivalMemoryQuery {
	query := s.client.ArchivalMemory.Query().
		Where(archivalmemory.Or(
			archivalmemory.ExpiresAtIsNil(),
			archivalmemory.ExpiresAtGT(time.Now()),
		))
	if q.Repo != "" {
		query.Where(archivalmemory.Or(
			archivalmemory.Repo(q.Repo),
			archivalmemory.IsGlobal(true),
		))
	}
	if q.TaskID != "" {
		if q.IncludeGlobal {
			query.Where(archivalmemory.Or(
				archivalmemory.TaskID(q.TaskID),
				archivalmemory.IsGlobal(true),
			))
		} else {
			query.Where(archivalmemory.TaskID(q.TaskID))
		}
	}
	if len(q.SourceTypes) > 0 {
		query.Where(archivalmemory.SourceTypeIn(q.SourceTypes...))
	}
	return query
}

func (s *Store) touch(ctx context.Context, results []SearchResult) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Entry.ID
	}
	err := s.client.ArchivalMemory.Update().
		Where(archivalmemory.IDIn(ids...)).
		AddAccessCount(1).
		SetLastAccessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update archival access metadata: %w", err)
	}
	return nil
}

// cosineSimilarity returns 1 - cosine distance. Mismatched lengths or zero
// vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
