package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

const (
	// subscriberBuffer is the per-subscriber channel capacity. Sized to hold
	// a full catchup batch plus live events arriving during delivery.
	subscriberBuffer = 256

	// catchupLimit caps how many missed events are replayed on subscribe.
	// Beyond this, a catchup.overflow marker tells the client to refetch
	// task state via the REST API instead.
	catchupLimit = 200

	// listenerOpTimeout bounds LISTEN/UNLISTEN round-trips through the
	// listener's command channel.
	listenerOpTimeout = 5 * time.Second
)

// CatchupEvent is a persisted event replayed to a subscriber on connect.
type CatchupEvent struct {
	EventID string
	Payload []byte
}

// CatchupQuerier fetches persisted events for catchup on subscribe.
// Implemented by services.EventService.
type CatchupQuerier interface {
	CatchupEvents(ctx context.Context, taskID string, since time.Time, limit int) ([]CatchupEvent, error)
}

// ChannelListener manages LISTEN/UNLISTEN on the NOTIFY connection.
// Implemented by NotifyListener.
type ChannelListener interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// Subscription is a live feed of events for one channel. Events arrive on C
// as raw JSON payloads. Close releases the subscription; the hub closes C.
type Subscription struct {
	Channel string
	C       <-chan []byte

	ch        chan []byte
	id        uint64
	hub       *SubscriberHub
	closeOnce sync.Once
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.remove(s)
	})
}

// SubscriberHub fans NOTIFY payloads out to local subscribers (SSE streams).
// It issues LISTEN when the first subscriber for a channel appears and
// UNLISTEN when the last one leaves, and replays persisted events on
// subscribe so reconnecting clients do not miss transitions.
//
// LISTEN is issued before catchup runs, so the window between the catchup
// query and live delivery is covered. Duplicates across that boundary are
// possible; clients dedupe by event_id.
//
// Locking: listenMu serializes LISTEN/UNLISTEN decisions against each other
// (a departing last subscriber vs an arriving first one). mu guards the
// subscriber map and is never held across listener calls — the listener's
// receive loop calls Broadcast, which takes mu, while it is also the
// goroutine that executes LISTEN commands.
type SubscriberHub struct {
	listenMu sync.Mutex

	mu      sync.Mutex
	subs    map[string]map[uint64]*Subscription
	nextID  uint64
	dropped int64

	listener ChannelListener // nil when running single-pod without NOTIFY
	catchup  CatchupQuerier  // nil disables catchup
}

// NewSubscriberHub creates a hub. listener and catchup may be nil.
func NewSubscriberHub(listener ChannelListener, catchup CatchupQuerier) *SubscriberHub {
	return &SubscriberHub{
		subs:     make(map[string]map[uint64]*Subscription),
		listener: listener,
		catchup:  catchup,
	}
}

// SetListener wires the NOTIFY listener after construction. The hub and
// listener reference each other, so one side has to be attached late.
func (h *SubscriberHub) SetListener(listener ChannelListener) {
	h.listenMu.Lock()
	defer h.listenMu.Unlock()
	h.listener = listener
}

// Subscribe registers a subscriber for a channel. For per-task channels,
// persisted events after `since` are replayed first (pass the zero time to
// skip catchup). The returned Subscription must be closed by the caller.
func (h *SubscriberHub) Subscribe(ctx context.Context, channel string, since time.Time) (*Subscription, error) {
	h.listenMu.Lock()

	h.mu.Lock()
	sub := &Subscription{
		Channel: channel,
		ch:      make(chan []byte, subscriberBuffer),
		id:      h.nextID,
		hub:     h,
	}
	sub.C = sub.ch
	h.nextID++

	first := len(h.subs[channel]) == 0
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[uint64]*Subscription)
	}
	h.subs[channel][sub.id] = sub
	listener := h.listener
	h.mu.Unlock()

	// LISTEN before catchup so no event falls between the two.
	if first && listener != nil {
		listenCtx, cancel := context.WithTimeout(ctx, listenerOpTimeout)
		err := listener.Subscribe(listenCtx, channel)
		cancel()
		if err != nil {
			h.mu.Lock()
			delete(h.subs[channel], sub.id)
			if len(h.subs[channel]) == 0 {
				delete(h.subs, channel)
			}
			h.mu.Unlock()
			h.listenMu.Unlock()
			close(sub.ch)
			return nil, err
		}
	}
	h.listenMu.Unlock()

	if h.catchup != nil && !since.IsZero() {
		if taskID := TaskIDFromChannel(channel); taskID != "" {
			h.replayCatchup(ctx, sub, taskID, since)
		}
	}

	return sub, nil
}

// Broadcast delivers a payload to every local subscriber of a channel.
// Slow subscribers are skipped, not waited on.
func (h *SubscriberHub) Broadcast(channel string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[channel] {
		select {
		case sub.ch <- payload:
		default:
			h.dropped++
			slog.Warn("Dropping event for slow subscriber",
				"channel", channel, "subscriber_id", sub.id)
		}
	}
}

// SubscriberCount returns the number of active subscribers for a channel.
func (h *SubscriberHub) SubscriberCount(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[channel])
}

// Dropped returns the total number of events dropped for slow subscribers.
func (h *SubscriberHub) Dropped() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// CloseAll closes every subscription. Called on shutdown; no UNLISTEN is
// issued since the listener connection is being torn down anyway.
func (h *SubscriberHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for channel, subs := range h.subs {
		for _, sub := range subs {
			close(sub.ch)
		}
		delete(h.subs, channel)
	}
}

// remove unregisters a subscription and issues UNLISTEN when it was the
// last subscriber on its channel.
func (h *SubscriberHub) remove(s *Subscription) {
	h.listenMu.Lock()
	defer h.listenMu.Unlock()

	h.mu.Lock()
	subs := h.subs[s.Channel]
	if subs == nil {
		h.mu.Unlock()
		return
	}
	if _, ok := subs[s.id]; !ok {
		h.mu.Unlock()
		return // already removed by CloseAll
	}
	delete(subs, s.id)
	close(s.ch)

	last := len(subs) == 0
	if last {
		delete(h.subs, s.Channel)
	}
	listener := h.listener
	h.mu.Unlock()

	if last && listener != nil {
		ctx, cancel := context.WithTimeout(context.Background(), listenerOpTimeout)
		defer cancel()
		if err := listener.Unsubscribe(ctx, s.Channel); err != nil {
			slog.Warn("UNLISTEN failed", "channel", s.Channel, "error", err)
		}
	}
}

// replayCatchup pushes persisted events into the subscription buffer.
// Errors degrade to live-only delivery.
func (h *SubscriberHub) replayCatchup(ctx context.Context, sub *Subscription, taskID string, since time.Time) {
	catchupEvents, err := h.catchup.CatchupEvents(ctx, taskID, since, catchupLimit+1)
	if err != nil {
		slog.Warn("Catchup query failed, continuing with live events only",
			"task_id", taskID, "error", err)
		return
	}

	overflow := len(catchupEvents) > catchupLimit
	if overflow {
		catchupEvents = catchupEvents[:catchupLimit]
	}

	for _, ev := range catchupEvents {
		select {
		case sub.ch <- ev.Payload:
		default:
			slog.Warn("Catchup overflowed subscriber buffer", "task_id", taskID)
			return
		}
	}

	if overflow {
		marker, _ := json.Marshal(map[string]any{
			"type":    "catchup.overflow",
			"task_id": taskID,
			"limit":   catchupLimit,
		})
		select {
		case sub.ch <- marker:
		default:
		}
	}
}
