package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starryNight/domain"
)

type recordingSender struct {
	mu      sync.Mutex
	batches [][]domain.UserEvent
	err     error
	notify  chan struct{}
}

func newRecordingSender() *recordingSender {
	return &recordingSender{notify: make(chan struct{}, 10)}
}

func (s *recordingSender) Send(_ context.Context, events []domain.UserEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	batch := make([]domain.UserEvent, len(events))
	copy(batch, events)
	s.batches = append(s.batches, batch)

	select {
	case s.notify <- struct{}{}:
	default:
	}

	return nil
}

func (s *recordingSender) Batches() [][]domain.UserEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]domain.UserEvent, len(s.batches))
	copy(out, s.batches)

	return out
}

type sliceFailedStore struct {
	mu     sync.Mutex
	events []domain.UserEvent
}

func (s *sliceFailedStore) Append(_ context.Context, events []domain.UserEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

func (s *sliceFailedStore) Drain(_ context.Context) ([]domain.UserEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.events
	s.events = nil
	return out, nil
}

func (s *sliceFailedStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func pageView(n int64) domain.UserEvent {
	return domain.UserEvent{
		EventType: domain.EventPageView,
		Timestamp: n,
		SessionID: "session_1_abcdefghi",
		PageURL:   "/gallery",
	}
}

func waitForBatch(t *testing.T, notify chan struct{}) {
	t.Helper()
	select {
	case <-notify:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for batch delivery")
	}
}

func TestTimerFlushDeliversOneBatchInOrder(t *testing.T) {
	sender := newRecordingSender()
	queue := NewQueue(sender, &sliceFailedStore{}, 50, 30*time.Millisecond)

	queue.Add(pageView(1))
	queue.Add(pageView(2))
	queue.Add(pageView(3))

	assert.Equal(t, StateAccumulating, queue.CurrentState())

	waitForBatch(t, sender.notify)

	batches := sender.Batches()
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 3)
	assert.Equal(t, int64(1), batches[0][0].Timestamp)
	assert.Equal(t, int64(3), batches[0][2].Timestamp)
	assert.Equal(t, 0, queue.Len())
}

func TestSizeThresholdFlushesWithoutDoubleDelivery(t *testing.T) {
	sender := newRecordingSender()
	// Interval far in the future so only the threshold can trigger.
	queue := NewQueue(sender, &sliceFailedStore{}, 5, time.Hour)

	for i := int64(1); i <= 5; i++ {
		queue.Add(pageView(i))
	}

	waitForBatch(t, sender.notify)

	// The cancelled timer must not produce a second, empty flush.
	time.Sleep(50 * time.Millisecond)

	batches := sender.Batches()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 5)
	assert.Equal(t, 0, queue.Len())
	assert.Equal(t, StateIdle, queue.CurrentState())
}

func TestFlushOnEmptyQueueIsNoop(t *testing.T) {
	sender := newRecordingSender()
	queue := NewQueue(sender, &sliceFailedStore{}, 50, time.Hour)

	require.NoError(t, queue.Flush(context.Background()))
	assert.Empty(t, sender.Batches())
	assert.Equal(t, StateIdle, queue.CurrentState())
}

func TestFailedDeliveryGoesToFailedStore(t *testing.T) {
	sender := newRecordingSender()
	sender.err = errors.New("collector unreachable")
	failed := &sliceFailedStore{}
	queue := NewQueue(sender, failed, 50, time.Hour)

	queue.Add(pageView(1))
	queue.Add(pageView(2))

	err := queue.Flush(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2, failed.Len())
	assert.Equal(t, 0, queue.Len())
}

func TestClearDropsPendingEvents(t *testing.T) {
	sender := newRecordingSender()
	queue := NewQueue(sender, &sliceFailedStore{}, 50, time.Hour)

	queue.Add(pageView(1))
	queue.Add(pageView(2))
	queue.Clear()

	require.NoError(t, queue.Flush(context.Background()))
	assert.Empty(t, sender.Batches())
	assert.Equal(t, 0, queue.Len())
}
