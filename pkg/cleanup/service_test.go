package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
	"github.com/forgeflow/forgeflow/pkg/config"
	testdb "github.com/forgeflow/forgeflow/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		CleanupInterval: config.Duration(1 * time.Hour),
		TaskTTL:         config.Duration(30 * 24 * time.Hour),
	}
}

func createTask(t *testing.T, client *ent.Client, issue int) *ent.Task {
	t.Helper()
	task, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(issue).
		SetTitle("Fix widget rendering").
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func TestService_PurgesExpiredSoftDeletedTasks(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	old := createTask(t, client, 1)
	err := client.Task.UpdateOneID(old.ID).
		SetDeletedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	recent := createTask(t, client, 2)
	err = client.Task.UpdateOneID(recent.ID).
		SetDeletedAt(time.Now().Add(-1 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), client, nil)
	svc.runAll(ctx)

	_, err = client.Task.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "task past TTL should be hard-deleted")

	_, err = client.Task.Get(ctx, recent.ID)
	assert.NoError(t, err, "recently soft-deleted task should survive")
}

func TestService_PreservesLiveTasks(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	live := createTask(t, client, 1)

	// Old but never soft-deleted.
	err := client.Task.UpdateOneID(live.ID).
		SetStatus("completed").
		SetCompletedAt(time.Now().Add(-90 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), client, nil)
	svc.runAll(ctx)

	_, err = client.Task.Get(ctx, live.ID)
	assert.NoError(t, err)
}

func TestService_PurgesCompletedWebhookEvents(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	create := func(status webhookevent.Status, age time.Duration) string {
		id := uuid.New().String()
		_, err := client.WebhookEvent.Create().
			SetID(id).
			SetDeliveryID(uuid.New().String()).
			SetSource("github").
			SetEventType("issues").
			SetPayload(`{"action":"labeled"}`).
			SetStatus(status).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
		return id
	}

	oldCompleted := create(webhookevent.StatusCompleted, 60*24*time.Hour)
	recentCompleted := create(webhookevent.StatusCompleted, 1*time.Hour)
	oldFailed := create(webhookevent.StatusFailed, 60*24*time.Hour)

	svc := NewService(retentionConfig(), client, nil)
	svc.runAll(ctx)

	_, err := client.WebhookEvent.Get(ctx, oldCompleted)
	assert.True(t, ent.IsNotFound(err), "old completed delivery should be purged")

	_, err = client.WebhookEvent.Get(ctx, recentCompleted)
	assert.NoError(t, err, "recent delivery should survive")

	_, err = client.WebhookEvent.Get(ctx, oldFailed)
	assert.NoError(t, err, "failed deliveries stay for inspection")
}
