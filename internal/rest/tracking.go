package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"starryNight/business/ingest"
	"starryNight/domain"
	"starryNight/pkg/response"
)

type (
	TrackingHandler struct {
		trackingService TrackingService
	}

	TrackingService interface {
		Ingest(ctx context.Context, events []domain.UserEvent) (string, error)
	}

	TrackingRequest struct {
		Events []domain.UserEvent `json:"events"`
	}

	TrackingReceipt struct {
		EventID string `json:"eventId"`
	}
)

func NewTrackingHandler(svc TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: svc,
	}
}

// Collect handles POST /api/tracking. A batch is rejected wholesale on
// the first invalid event.
func (h *TrackingHandler) Collect(c echo.Context) error {
	var req TrackingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Error("INVALID_EVENT_FORMAT", "Request body must be valid JSON"))
	}

	eventID, err := h.trackingService.Ingest(c.Request().Context(), req.Events)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrInvalidEvents):
			return c.JSON(http.StatusBadRequest,
				response.Error("INVALID_EVENTS", "Events must be a non-empty array"))
		case errors.Is(err, ingest.ErrInvalidEventFormat):
			return c.JSON(http.StatusBadRequest,
				response.Error("INVALID_EVENT_FORMAT", "Each event must have eventType, timestamp, and sessionId"))
		default:
			return c.JSON(http.StatusInternalServerError,
				response.Error("INTERNAL_ERROR", "Failed to process events"))
		}
	}

	return c.JSON(http.StatusOK, response.OK(TrackingReceipt{EventID: eventID}))
}
