package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"starryNight/business/recommend"
	"starryNight/domain"
	"starryNight/pkg/metrics"
	"starryNight/pkg/response"
)

type (
	RecommendationHandler struct {
		recommendService RecommendService
	}

	RecommendService interface {
		Recommend(ctx context.Context, req recommend.Request) (*domain.RecommendationResponse, error)
	}

	RecommendQuery struct {
		SessionID        string `query:"sessionId"`
		Context          string `query:"context"`
		CurrentArtworkID string `query:"currentArtworkId"`
		Limit            int    `query:"limit"`
	}
)

func NewRecommendationHandler(svc RecommendService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendService: svc,
	}
}

// Recommendations handles GET /api/recommendations.
func (h *RecommendationHandler) Recommendations(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Error("MISSING_SESSION_ID", "sessionId is required"))
	}

	// Identity is optional; a valid bearer token makes results
	// attributable to a user.
	userID, _ := c.Get("user_id").(string)

	result, err := h.recommendService.Recommend(c.Request().Context(), recommend.Request{
		SessionID:        q.SessionID,
		UserID:           userID,
		Context:          q.Context,
		CurrentArtworkID: q.CurrentArtworkID,
		Limit:            q.Limit,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrMissingSessionID) {
			return c.JSON(http.StatusBadRequest,
				response.Error("MISSING_SESSION_ID", "sessionId is required"))
		}
		return c.JSON(http.StatusInternalServerError,
			response.Error("INTERNAL_ERROR", "Failed to generate recommendations"))
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, response.OK(result))
}
