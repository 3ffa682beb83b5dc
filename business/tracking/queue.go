package tracking

import (
	"context"
	"sync"
	"time"

	"starryNight/domain"
	"starryNight/pkg/logger"
)

// State is the queue lifecycle phase. Transitions:
// Idle -> Accumulating on the first Add, Accumulating -> Flushing when
// the timer fires or the size threshold is hit, Flushing -> Idle (or
// back to Accumulating when events arrived mid-flight).
type State int

const (
	StateIdle State = iota
	StateAccumulating
	StateFlushing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAccumulating:
		return "accumulating"
	case StateFlushing:
		return "flushing"
	default:
		return "unknown"
	}
}

// Sender delivers one batch. A non-nil error means the whole batch
// failed and should be preserved for retry.
type Sender interface {
	Send(ctx context.Context, events []domain.UserEvent) error
}

// FailedEventStore keeps batches that could not be delivered. Append
// caps the store to the most recent events; Drain empties it.
type FailedEventStore interface {
	Append(ctx context.Context, events []domain.UserEvent) error
	Drain(ctx context.Context) ([]domain.UserEvent, error)
}

// Queue accumulates events and flushes them as batches, either when a
// timer expires or when the queue reaches its size threshold. Add never
// blocks on delivery and never surfaces delivery errors to the caller.
type Queue struct {
	mu      sync.Mutex
	state   State
	pending []domain.UserEvent
	timer   *time.Timer

	sender   Sender
	failed   FailedEventStore
	maxSize  int
	interval time.Duration
}

func NewQueue(sender Sender, failed FailedEventStore, maxSize int, interval time.Duration) *Queue {
	return &Queue{
		sender:   sender,
		failed:   failed,
		maxSize:  maxSize,
		interval: interval,
	}
}

// Add enqueues one event. The first event arms the flush timer; hitting
// the size threshold flushes immediately and cancels the timer.
func (q *Queue) Add(event domain.UserEvent) {
	q.mu.Lock()

	q.pending = append(q.pending, event)
	if q.state == StateIdle {
		q.state = StateAccumulating
	}

	if len(q.pending) >= q.maxSize {
		q.stopTimerLocked()
		q.mu.Unlock()
		go func() {
			_ = q.Flush(context.Background())
		}()
		return
	}

	if q.timer == nil {
		q.timer = time.AfterFunc(q.interval, func() {
			_ = q.Flush(context.Background())
		})
	}

	q.mu.Unlock()
}

// Flush delivers everything currently pending as one batch. Events
// added during delivery stay queued for the next cycle. On delivery
// failure the batch goes to the failed-event store and the error is
// returned; queued events are never silently dropped.
func (q *Queue) Flush(ctx context.Context) error {
	q.mu.Lock()

	if len(q.pending) == 0 {
		q.stopTimerLocked()
		q.state = StateIdle
		q.mu.Unlock()
		return nil
	}

	batch := q.pending
	q.pending = nil
	q.stopTimerLocked()
	q.state = StateFlushing
	q.mu.Unlock()

	err := q.sender.Send(ctx, batch)

	q.mu.Lock()
	if len(q.pending) > 0 {
		q.state = StateAccumulating
	} else {
		q.state = StateIdle
	}
	q.mu.Unlock()

	if err != nil {
		logger.Warn("failed to deliver event batch", "count", len(batch), "error", err.Error())
		FlushesTotal.WithLabelValues("failure").Inc()
		if storeErr := q.failed.Append(ctx, batch); storeErr != nil {
			logger.Error("failed to preserve undelivered events", storeErr.Error())
		}
		return err
	}

	FlushesTotal.WithLabelValues("success").Inc()
	logger.Debug("event batch delivered", "count", len(batch))

	return nil
}

// Clear drops all pending events without sending them.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = nil
	q.stopTimerLocked()
	if q.state != StateFlushing {
		q.state = StateIdle
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) CurrentState() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

func (q *Queue) stopTimerLocked() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}
