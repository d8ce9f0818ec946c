package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/pkg/models"
)

func TestEmitRunsHandlersInPriorityOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Register(EventPhaseChange, "low", PriorityLow, Filter{}, func(context.Context, Event) error {
		order = append(order, "low")
		return nil
	})
	bus.Register(EventPhaseChange, "high", PriorityHigh, Filter{}, func(context.Context, Event) error {
		order = append(order, "high")
		return nil
	})
	bus.Register(EventPhaseChange, "normal", PriorityNormal, Filter{}, func(context.Context, Event) error {
		order = append(order, "normal")
		return nil
	})

	bus.Emit(context.Background(), Event{Type: EventPhaseChange, TaskID: "t1"})
	assert.Equal(t, []string{"high", "normal", "low"}, order)
}

func TestHandlerErrorDoesNotAbortSiblings(t *testing.T) {
	bus := NewBus()
	var ran bool

	bus.Register(EventError, "failing", PriorityHigh, Filter{}, func(context.Context, Event) error {
		return errors.New("handler exploded")
	})
	bus.Register(EventError, "sibling", PriorityNormal, Filter{}, func(context.Context, Event) error {
		ran = true
		return nil
	})

	bus.Emit(context.Background(), Event{Type: EventError, TaskID: "t1"})
	assert.True(t, ran)
	assert.Equal(t, 1, bus.HandlerErrors())
}

func TestHandlerPanicDoesNotAbortSiblings(t *testing.T) {
	bus := NewBus()
	var ran bool

	bus.Register(EventError, "panicking", PriorityHigh, Filter{}, func(context.Context, Event) error {
		panic("handler panicked")
	})
	bus.Register(EventError, "sibling", PriorityNormal, Filter{}, func(context.Context, Event) error {
		ran = true
		return nil
	})

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), Event{Type: EventError, TaskID: "t1"})
	})
	assert.True(t, ran, "a panicking handler must not stop the rest")
	assert.Equal(t, 1, bus.HandlerErrors())
}

func TestFiltersRestrictDelivery(t *testing.T) {
	bus := NewBus()
	var calls int

	bus.Register(EventAgentEnd, "coder-only", PriorityNormal,
		Filter{Agent: "coder"},
		func(context.Context, Event) error { calls++; return nil })
	bus.Register(EventAgentEnd, "planning-only", PriorityNormal,
		Filter{Phase: models.PhasePlanning},
		func(context.Context, Event) error { calls++; return nil })

	bus.Emit(context.Background(), Event{Type: EventAgentEnd, Agent: "planner", Phase: models.PhasePlanning})
	assert.Equal(t, 1, calls)

	bus.Emit(context.Background(), Event{Type: EventAgentEnd, Agent: "coder", Phase: models.PhaseCoding})
	assert.Equal(t, 2, calls)
}

func TestDisabledBusDropsEmits(t *testing.T) {
	bus := NewBus()
	var calls int
	bus.Register(EventTaskStart, "counter", PriorityNormal, Filter{}, func(context.Context, Event) error {
		calls++
		return nil
	})

	bus.SetEnabled(false)
	bus.Emit(context.Background(), Event{Type: EventTaskStart})
	assert.Zero(t, calls)
	assert.Empty(t, bus.Counts())

	bus.SetEnabled(true)
	bus.Emit(context.Background(), Event{Type: EventTaskStart})
	assert.Equal(t, 1, calls)
	assert.Equal(t, map[EventType]int{EventTaskStart: 1}, bus.Counts())
}

func TestCountsPerEventType(t *testing.T) {
	bus := NewBus()
	bus.Emit(context.Background(), Event{Type: EventToolCall})
	bus.Emit(context.Background(), Event{Type: EventToolCall})
	bus.Emit(context.Background(), Event{Type: EventCheckpoint})

	counts := bus.Counts()
	assert.Equal(t, 2, counts[EventToolCall])
	assert.Equal(t, 1, counts[EventCheckpoint])
}
