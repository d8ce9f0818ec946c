package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyTaskStarted is no-op", func(_ *testing.T) {
		s.NotifyTaskStarted(context.Background(), TaskStartedInput{TaskID: "task-1"})
	})

	t.Run("NotifyTaskFinished is no-op", func(_ *testing.T) {
		s.NotifyTaskFinished(context.Background(), TaskFinishedInput{
			TaskID: "task-1",
			Status: "completed",
		})
	})

	t.Run("RegisterHooks is no-op", func(t *testing.T) {
		bus := hooks.NewBus()
		s.RegisterHooks(bus)
		bus.Emit(context.Background(), hooks.Event{Type: hooks.EventTaskEnd, TaskID: "task-1"})
		assert.Equal(t, 0, bus.HandlerErrors())
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestEventDataCoercion(t *testing.T) {
	data := map[string]interface{}{
		"repo":  "acme/widgets",
		"issue": 42,
		"float": float64(7),
	}

	assert.Equal(t, "acme/widgets", dataString(data, "repo"))
	assert.Equal(t, "", dataString(data, "missing"))
	assert.Equal(t, 42, dataInt(data, "issue"))
	assert.Equal(t, 7, dataInt(data, "float"))
	assert.Equal(t, 0, dataInt(data, "missing"))
}
