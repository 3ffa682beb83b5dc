package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"starryNight/domain"
	"starryNight/pkg/logger"
	"starryNight/pkg/metrics"
	"starryNight/pkg/utils"
)

var (
	ErrInvalidEvents      = errors.New("events must be a non-empty array")
	ErrInvalidEventFormat = errors.New("each event must have eventType, timestamp, and sessionId")
)

// Service accepts event batches from tracking clients. Validation is
// shallow on purpose: the collector checks the common fields only and
// rejects the whole batch on the first violation.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Ingest validates a batch and acknowledges it with a receipt id.
func (s *Service) Ingest(ctx context.Context, events []domain.UserEvent) (string, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when ingesting events")
		return "", fmt.Errorf("context error: %w", err)
	}

	if len(events) == 0 {
		return "", ErrInvalidEvents
	}

	for _, event := range events {
		if !event.HasRequiredCommon() {
			return "", ErrInvalidEventFormat
		}
	}

	for _, event := range events {
		metrics.TrackingEventsAccepted.WithLabelValues(string(event.EventType)).Inc()
	}
	metrics.TrackingBatchesAccepted.Inc()

	eventID := fmt.Sprintf("evt_%d_%s", s.now().UnixMilli(), utils.RandBase36(9))

	logger.Debug("event batch accepted",
		"event_id", eventID,
		"count", len(events),
		"session_id", events[0].SessionID,
	)

	return eventID, nil
}
