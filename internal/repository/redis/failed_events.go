package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"starryNight/domain"
)

const failedEventsKey = "starry-night-failed-events"

// DefaultRetryCap bounds the retry backlog to the most recent events;
// older ones are dropped first.
const DefaultRetryCap = 100

// FailedEventRepository persists undelivered event batches as a single
// JSON array, mirroring the durable store the tracking queue expects.
type FailedEventRepository struct {
	client   *redis.Client
	retryCap int
}

func NewFailedEventRepository(client *redis.Client, retryCap int) *FailedEventRepository {
	if retryCap <= 0 {
		retryCap = DefaultRetryCap
	}

	return &FailedEventRepository{
		client:   client,
		retryCap: retryCap,
	}
}

func (r *FailedEventRepository) load(ctx context.Context) ([]domain.UserEvent, error) {
	val, err := r.client.Get(ctx, failedEventsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get failed events from Redis: %w", err)
	}

	var events []domain.UserEvent
	if err := json.Unmarshal([]byte(val), &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal failed events: %w", err)
	}

	return events, nil
}

func (r *FailedEventRepository) Append(ctx context.Context, events []domain.UserEvent) error {
	existing, err := r.load(ctx)
	if err != nil {
		return err
	}

	combined := append(existing, events...)
	if len(combined) > r.retryCap {
		combined = combined[len(combined)-r.retryCap:]
	}

	jsonData, err := json.Marshal(combined)
	if err != nil {
		return fmt.Errorf("failed to marshal failed events: %w", err)
	}

	if err := r.client.Set(ctx, failedEventsKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to store failed events in Redis: %w", err)
	}

	return nil
}

func (r *FailedEventRepository) Drain(ctx context.Context) ([]domain.UserEvent, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	if err := r.client.Del(ctx, failedEventsKey).Err(); err != nil {
		return nil, fmt.Errorf("failed to clear failed events in Redis: %w", err)
	}

	return events, nil
}
