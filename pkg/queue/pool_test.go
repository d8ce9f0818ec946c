package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/pkg/config"
)

func TestPollIntervalJitterBounds(t *testing.T) {
	cfg := &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}
	w := NewWorker("w-0", "pod-1", nil, cfg, nil, nil)

	for i := 0; i < 200; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	cfg := &config.QueueConfig{PollInterval: 2 * time.Second}
	w := NewWorker("w-0", "pod-1", nil, cfg, nil, nil)
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestWorkerHealthTracksStatus(t *testing.T) {
	w := NewWorker("w-7", "pod-1", nil, config.DefaultQueueConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, "w-7", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentTaskID)

	w.setStatus(WorkerStatusWorking, "task-42")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "task-42", h.CurrentTaskID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentTaskID)
}

func TestCancelRegistry(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil)

	cancelled := false
	p.RegisterTask("task-1", func() { cancelled = true })

	assert.True(t, p.CancelTask("task-1"))
	assert.True(t, cancelled)

	// Cancellation does not unregister; the worker does that when the
	// task context unwinds.
	assert.True(t, p.CancelTask("task-1"))

	p.UnregisterTask("task-1")
	assert.False(t, p.CancelTask("task-1"))
}

func TestCancelUnknownTask(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil)
	assert.False(t, p.CancelTask("nope"))
}

func TestActiveTaskIDs(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil)
	noop := func() {}

	p.RegisterTask("a", noop)
	p.RegisterTask("b", noop)
	ids := p.getActiveTaskIDs()
	assert.ElementsMatch(t, []string{"a", "b"}, ids)

	p.UnregisterTask("a")
	assert.Equal(t, []string{"b"}, p.getActiveTaskIDs())
}
