package archival

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/pkg/config"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func newLexicalStore(t *testing.T) *Store {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	return NewStore(client, nil, config.DefaultConfig().Archival)
}

func TestSearchWithoutEmbedderUsesLexicalRank(t *testing.T) {
	s := newLexicalStore(t)
	ctx := context.Background()

	match, err := s.Insert(ctx, InsertInput{
		Content:    "fix the missing import in the widget renderer",
		SourceType: archivalmemory.SourceTypeObservation,
		Repo:       "acme/widgets",
	})
	require.NoError(t, err)
	_, err = s.Insert(ctx, InsertInput{
		Content:    "rotate the deploy credentials quarterly",
		SourceType: archivalmemory.SourceTypeObservation,
		Repo:       "acme/widgets",
	})
	require.NoError(t, err)

	results, err := s.Search(ctx, SearchQuery{
		Query: "missing import",
		Repo:  "acme/widgets",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].Entry.ID)
	assert.True(t, results[0].Lexical)

	// Returned rows get their access metadata bumped.
	reloaded, err := s.client.ArchivalMemory.Get(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.AccessCount)
}

func TestLexicalSearchMatchesSummary(t *testing.T) {
	s := newLexicalStore(t)
	ctx := context.Background()

	row, err := s.Insert(ctx, InsertInput{
		Content:    "full validation transcript, eighty lines of checker output",
		Summary:    "type errors in the billing module",
		SourceType: archivalmemory.SourceTypeCheckpoint,
		Repo:       "acme/widgets",
	})
	require.NoError(t, err)

	results, err := s.Search(ctx, SearchQuery{
		Query: "billing type errors",
		Repo:  "acme/widgets",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, row.ID, results[0].Entry.ID)
}

func TestLexicalSearchRespectsTaskScope(t *testing.T) {
	s := newLexicalStore(t)
	ctx := context.Background()

	mine, err := s.Insert(ctx, InsertInput{
		Content:    "planner chose the renderer refactor",
		SourceType: archivalmemory.SourceTypeObservation,
		TaskID:     "task-1",
	})
	require.NoError(t, err)
	_, err = s.Insert(ctx, InsertInput{
		Content:    "planner chose the renderer rewrite",
		SourceType: archivalmemory.SourceTypeObservation,
		TaskID:     "task-2",
	})
	require.NoError(t, err)

	results, err := s.Search(ctx, SearchQuery{
		Query:  "planner renderer",
		TaskID: "task-1",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, mine.ID, results[0].Entry.ID)
}
