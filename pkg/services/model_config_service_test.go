package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/modelconfigaudit"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func TestModelConfigPutCreatesWithAudit(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewModelConfigService(client)
	ctx := context.Background()

	row, err := svc.Put(ctx, ModelConfigInput{
		Purpose:   "plan",
		Provider:  "anthropic",
		Model:     "claude-sonnet-4-5",
		MaxTokens: 8192,
		ChangedBy: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", row.Provider)

	audits, err := client.ModelConfigAudit.Query().
		Where(modelconfigaudit.Purpose("plan")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Nil(t, audits[0].Previous, "first write has no previous snapshot")
	assert.Equal(t, "claude-sonnet-4-5", audits[0].Current["model"])
	assert.Equal(t, "alice", audits[0].ChangedBy)
}

func TestModelConfigPutReplacesAndSnapshotsPrevious(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewModelConfigService(client)
	ctx := context.Background()

	_, err := svc.Put(ctx, ModelConfigInput{
		Purpose: "code", Provider: "anthropic", Model: "model-a",
	})
	require.NoError(t, err)
	_, err = svc.Put(ctx, ModelConfigInput{
		Purpose: "code", Provider: "openai", Model: "model-b",
	})
	require.NoError(t, err)

	// Still one row per purpose.
	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "model-b", rows[0].Model)

	audits, err := client.ModelConfigAudit.Query().
		Where(modelconfigaudit.Purpose("code")).
		Order(ent.Asc(modelconfigaudit.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, audits, 2)
	require.NotNil(t, audits[1].Previous)
	assert.Equal(t, "model-a", audits[1].Previous["model"])
	assert.Equal(t, "model-b", audits[1].Current["model"])
}

func TestModelConfigValidation(t *testing.T) {
	svc := NewModelConfigService(testdb.NewTestClient(t).Client)
	ctx := context.Background()

	_, err := svc.Put(ctx, ModelConfigInput{Purpose: "deploy", Provider: "anthropic", Model: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Put(ctx, ModelConfigInput{Purpose: "plan", Provider: "ollama", Model: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Put(ctx, ModelConfigInput{Purpose: "plan", Provider: "openai"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Get(ctx, "plan")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestModelConfigOverrides(t *testing.T) {
	svc := NewModelConfigService(testdb.NewTestClient(t).Client)
	ctx := context.Background()

	_, err := svc.Put(ctx, ModelConfigInput{
		Purpose: "reflect", Provider: "openai", Model: "model-r", Temperature: 0.5,
	})
	require.NoError(t, err)

	overrides, err := svc.Overrides(ctx)
	require.NoError(t, err)
	require.Contains(t, overrides, "reflect")
	assert.Equal(t, "model-r", overrides["reflect"].Model)
	assert.Equal(t, 0.5, overrides["reflect"].Temperature)
	assert.NotContains(t, overrides, "plan", "unset purposes stay on defaults")
}
