package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListener struct {
	mu          sync.Mutex
	listens     []string
	unlistens   []string
	listenErr   error
	unlistenErr error
}

func (f *fakeListener) Subscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listenErr != nil {
		return f.listenErr
	}
	f.listens = append(f.listens, channel)
	return nil
}

func (f *fakeListener) Unsubscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unlistenErr != nil {
		return f.unlistenErr
	}
	f.unlistens = append(f.unlistens, channel)
	return nil
}

func (f *fakeListener) calls() (listens, unlistens []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.listens...), append([]string(nil), f.unlistens...)
}

type fakeCatchup struct {
	events []CatchupEvent
	err    error
	limit  int
}

func (f *fakeCatchup) CatchupEvents(_ context.Context, _ string, _ time.Time, limit int) ([]CatchupEvent, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func TestHubBroadcastFanout(t *testing.T) {
	hub := NewSubscriberHub(nil, nil)
	ctx := context.Background()

	sub1, err := hub.Subscribe(ctx, TaskChannel("t1"), time.Time{})
	require.NoError(t, err)
	defer sub1.Close()
	sub2, err := hub.Subscribe(ctx, TaskChannel("t1"), time.Time{})
	require.NoError(t, err)
	defer sub2.Close()
	other, err := hub.Subscribe(ctx, TaskChannel("t2"), time.Time{})
	require.NoError(t, err)
	defer other.Close()

	hub.Broadcast(TaskChannel("t1"), []byte(`{"type":"task.phase"}`))

	assert.Equal(t, `{"type":"task.phase"}`, string(<-sub1.C))
	assert.Equal(t, `{"type":"task.phase"}`, string(<-sub2.C))
	assert.Empty(t, other.C)
}

func TestHubSlowSubscriberDropped(t *testing.T) {
	hub := NewSubscriberHub(nil, nil)
	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Time{})
	require.NoError(t, err)
	defer sub.Close()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Broadcast(TaskChannel("t1"), []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	assert.Equal(t, int64(5), hub.Dropped())
	assert.Len(t, sub.C, subscriberBuffer)
}

func TestHubListenOnFirstUnlistenOnLast(t *testing.T) {
	listener := &fakeListener{}
	hub := NewSubscriberHub(listener, nil)
	ctx := context.Background()

	sub1, err := hub.Subscribe(ctx, TaskChannel("t1"), time.Time{})
	require.NoError(t, err)
	sub2, err := hub.Subscribe(ctx, TaskChannel("t1"), time.Time{})
	require.NoError(t, err)

	listens, unlistens := listener.calls()
	assert.Equal(t, []string{"task:t1"}, listens, "LISTEN only for the first subscriber")
	assert.Empty(t, unlistens)

	sub1.Close()
	_, unlistens = listener.calls()
	assert.Empty(t, unlistens, "no UNLISTEN while a subscriber remains")

	sub2.Close()
	_, unlistens = listener.calls()
	assert.Equal(t, []string{"task:t1"}, unlistens)
	assert.Equal(t, 0, hub.SubscriberCount(TaskChannel("t1")))
}

func TestHubListenFailureCleansUp(t *testing.T) {
	listener := &fakeListener{listenErr: fmt.Errorf("connection refused")}
	hub := NewSubscriberHub(listener, nil)

	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Time{})
	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, 0, hub.SubscriberCount(TaskChannel("t1")))
}

func TestHubCatchupReplay(t *testing.T) {
	catchup := &fakeCatchup{events: []CatchupEvent{
		{EventID: "e1", Payload: []byte(`{"event_id":"e1"}`)},
		{EventID: "e2", Payload: []byte(`{"event_id":"e2"}`)},
	}}
	hub := NewSubscriberHub(nil, catchup)

	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Unix(0, 0))
	require.NoError(t, err)
	defer sub.Close()

	assert.Equal(t, `{"event_id":"e1"}`, string(<-sub.C))
	assert.Equal(t, `{"event_id":"e2"}`, string(<-sub.C))
	assert.Equal(t, catchupLimit+1, catchup.limit, "queries one past the limit to detect overflow")
}

func TestHubCatchupSkippedForZeroSince(t *testing.T) {
	catchup := &fakeCatchup{events: []CatchupEvent{
		{EventID: "e1", Payload: []byte(`{"event_id":"e1"}`)},
	}}
	hub := NewSubscriberHub(nil, catchup)

	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Time{})
	require.NoError(t, err)
	defer sub.Close()

	assert.Empty(t, sub.C)
}

func TestHubCatchupOverflowMarker(t *testing.T) {
	evs := make([]CatchupEvent, catchupLimit+1)
	for i := range evs {
		evs[i] = CatchupEvent{
			EventID: fmt.Sprintf("e%d", i),
			Payload: []byte(fmt.Sprintf(`{"n":%d}`, i)),
		}
	}
	hub := NewSubscriberHub(nil, &fakeCatchup{events: evs})

	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Unix(0, 0))
	require.NoError(t, err)
	defer sub.Close()

	require.Len(t, sub.C, catchupLimit+1)
	for i := 0; i < catchupLimit; i++ {
		<-sub.C
	}

	var marker map[string]any
	require.NoError(t, json.Unmarshal(<-sub.C, &marker))
	assert.Equal(t, "catchup.overflow", marker["type"])
	assert.Equal(t, "t1", marker["task_id"])
}

func TestHubCatchupErrorDegradesToLive(t *testing.T) {
	catchup := &fakeCatchup{err: fmt.Errorf("db down")}
	hub := NewSubscriberHub(nil, catchup)

	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Unix(0, 0))
	require.NoError(t, err, "catchup failure must not fail the subscription")
	defer sub.Close()

	hub.Broadcast(TaskChannel("t1"), []byte(`{"live":true}`))
	assert.Equal(t, `{"live":true}`, string(<-sub.C))
}

func TestHubCloseAll(t *testing.T) {
	hub := NewSubscriberHub(nil, nil)
	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Time{})
	require.NoError(t, err)

	hub.CloseAll()

	_, ok := <-sub.C
	assert.False(t, ok, "channel closed")

	// Close after CloseAll is a no-op, not a double close.
	sub.Close()
}

func TestSubscriptionCloseIdempotent(t *testing.T) {
	hub := NewSubscriberHub(nil, nil)
	sub, err := hub.Subscribe(context.Background(), TaskChannel("t1"), time.Time{})
	require.NoError(t, err)

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, hub.SubscriberCount(TaskChannel("t1")))
}
