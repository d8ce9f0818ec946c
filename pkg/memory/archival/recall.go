package archival

import (
	"context"
	"fmt"

	"github.com/forgeflow/forgeflow/ent"
)

// Progressive disclosure layer widths. The index is the widest, full
// content the narrowest, so token cost stays bounded.
const (
	fullContentLimit = 3
	summaryLimit     = 5

	// relatedPatternConfidence gates which learned patterns ride along
	// with a recall.
	relatedPatternConfidence = 0.6
)

// IndexItem is a layer-1 entry: enough to decide whether to drill down.
type IndexItem struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// SummaryItem is a layer-2 entry.
type SummaryItem struct {
	ID      string  `json:"id"`
	Summary string  `json:"summary"`
	Score   float64 `json:"score"`
}

// FullItem is a layer-3 entry, returned only for the top matches.
type FullItem struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// RecallResult is the three-layer retrieval plus related patterns.
type RecallResult struct {
	Index     []IndexItem           `json:"index"`
	Summaries []SummaryItem         `json:"summaries"`
	Full      []FullItem            `json:"full"`
	Patterns  []*ent.LearnedPattern `json:"patterns"`
}

// Recall performs progressive disclosure: a ranked index over everything in
// scope, summaries for the closest rows, and full content only for the top
// matches, plus learned patterns above the confidence floor.
func (s *Store) Recall(ctx context.Context, q SearchQuery) (*RecallResult, error) {
	results, err := s.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("recall search: %w", err)
	}

	out := &RecallResult{}
	for i, r := range results {
		out.Index = append(out.Index, IndexItem{
			ID:          r.Entry.ID,
			Category:    string(r.Entry.SourceType),
			Description: describeEntry(r.Entry),
			Score:       r.Score,
		})
		if i < summaryLimit {
			out.Summaries = append(out.Summaries, SummaryItem{
				ID:      r.Entry.ID,
				Summary: summaryOf(r.Entry),
				Score:   r.Score,
			})
		}
		if i < fullContentLimit {
			out.Full = append(out.Full, FullItem{
				ID:      r.Entry.ID,
				Content: r.Entry.Content,
				Score:   r.Score,
			})
		}
	}

	patterns, err := s.RelatedPatterns(ctx, q.Repo, relatedPatternConfidence, summaryLimit)
	if err != nil {
		return nil, err
	}
	out.Patterns = patterns
	return out, nil
}

func describeEntry(e *ent.ArchivalMemory) string {
	desc := summaryOf(e)
	const indexDescLimit = 200
	if len(desc) > indexDescLimit {
		desc = desc[:indexDescLimit]
	}
	return desc
}

func summaryOf(e *ent.ArchivalMemory) string {
	if e.Summary != "" {
		return e.Summary
	}
	return e.Content
}
