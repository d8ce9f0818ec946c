// Package hooks is the in-process event bus that turns pipeline activity
// into observations and metrics without coupling emitters to consumers.
package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/forgeflow/forgeflow/pkg/models"
)

// EventType identifies one bus event.
type EventType string

// The fixed event set.
const (
	EventTaskStart    EventType = "task_start"
	EventTaskEnd      EventType = "task_end"
	EventAgentStart   EventType = "agent_start"
	EventAgentEnd     EventType = "agent_end"
	EventToolCall     EventType = "tool_call"
	EventToolResult   EventType = "tool_result"
	EventError        EventType = "error"
	EventCheckpoint   EventType = "checkpoint"
	EventPhaseChange  EventType = "phase_change"
	EventMemoryUpdate EventType = "memory_update"
)

// Priority orders handler execution for one emit.
type Priority int

// Handler priorities, highest first.
const (
	PriorityHigh   Priority = 0
	PriorityNormal Priority = 1
	PriorityLow    Priority = 2
)

// Event is the payload delivered to handlers.
type Event struct {
	Type   EventType
	TaskID string
	Agent  string
	Tool   string
	Phase  models.Phase
	Data   map[string]interface{}
}

// Filter restricts which events reach a handler. Zero values match all.
type Filter struct {
	Agent string
	Tool  string
	Phase models.Phase
}

func (f Filter) matches(e Event) bool {
	if f.Agent != "" && f.Agent != e.Agent {
		return false
	}
	if f.Tool != "" && f.Tool != e.Tool {
		return false
	}
	if f.Phase != "" && f.Phase != e.Phase {
		return false
	}
	return true
}

// Handler consumes one event. Handler errors are captured and counted but
// never interrupt the emitter or sibling handlers.
type Handler func(ctx context.Context, e Event) error

type registration struct {
	name     string
	priority Priority
	filter   Filter
	order    int // registration order breaks priority ties
	fn       Handler
}

// Bus dispatches events to registered handlers in priority order. Emits for
// one task are ordered by the caller; the bus itself is safe for concurrent
// use across tasks.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]registration
	counts   map[EventType]int
	errors   int
	enabled  bool
	nextID   int
}

// NewBus creates an enabled bus with no handlers.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]registration),
		counts:   make(map[EventType]int),
		enabled:  true,
	}
}

// Register subscribes a named handler to one event type.
func (b *Bus) Register(t EventType, name string, p Priority, f Filter, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	regs := append(b.handlers[t], registration{
		name: name, priority: p, filter: f, order: b.nextID, fn: fn,
	})
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].priority != regs[j].priority {
			return regs[i].priority < regs[j].priority
		}
		return regs[i].order < regs[j].order
	})
	b.handlers[t] = regs
}

// SetEnabled toggles dispatch. A disabled bus drops emits silently.
func (b *Bus) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

// Emit dispatches an event to matching handlers in priority order.
func (b *Bus) Emit(ctx context.Context, e Event) {
	b.mu.Lock()
	if !b.enabled {
		b.mu.Unlock()
		return
	}
	b.counts[e.Type]++
	regs := b.handlers[e.Type]
	b.mu.Unlock()

	for _, reg := range regs {
		if !reg.filter.matches(e) {
			continue
		}
		if err := b.dispatch(ctx, reg, e); err != nil {
			b.mu.Lock()
			b.errors++
			b.mu.Unlock()
			slog.Warn("Hook handler failed",
				"handler", reg.name,
				"event", e.Type,
				"task_id", e.TaskID,
				"error", err)
		}
	}
}

// dispatch runs one handler, converting a panic into an error so a broken
// handler cannot take down the emitting pipeline or its siblings.
func (b *Bus) dispatch(ctx context.Context, reg registration, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return reg.fn(ctx, e)
}

// Counts returns a copy of the per-event emit counters.
func (b *Bus) Counts() map[EventType]int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[EventType]int, len(b.counts))
	for k, v := range b.counts {
		out[k] = v
	}
	return out
}

// HandlerErrors returns the number of handler failures captured so far.
func (b *Bus) HandlerErrors() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.errors
}
