package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starryNight/business/recommend"
	"starryNight/internal/repository/memory"
	"starryNight/pkg/response"
)

func performRecommend(t *testing.T, query string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := recommend.NewService(memory.NewArtworkRepository(memory.SeedArtworks()))
	handler := NewRecommendationHandler(svc)
	require.NoError(t, handler.Recommendations(c))

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestRecommendationsRequireSessionID(t *testing.T) {
	rec, envelope := performRecommend(t, "?context=homepage")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "MISSING_SESSION_ID", envelope.Error.Code)
	assert.Equal(t, "sessionId is required", envelope.Error.Message)
}

func TestRecommendationsDefaultLimit(t *testing.T) {
	rec, envelope := performRecommend(t, "?sessionId=session_1_abcdefghi&context=homepage")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	recommendations, ok := data["recommendations"].([]any)
	require.True(t, ok)
	assert.Len(t, recommendations, 6)

	metadata, ok := data["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "trending", metadata["algorithm"])
	assert.InDelta(t, 0.75, metadata["confidence"], 1e-9)
}

func TestRecommendationsSimilarContext(t *testing.T) {
	rec, envelope := performRecommend(t,
		"?sessionId=session_1_abcdefghi&context=artwork_detail&currentArtworkId=1&limit=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]any)
	recommendations := data["recommendations"].([]any)
	require.Len(t, recommendations, 3)

	first := recommendations[0].(map[string]any)
	assert.Equal(t, "6", first["artworkId"])
	assert.Equal(t, "Because you're viewing Starry Night", first["reason"])
	assert.Equal(t, float64(1), first["rank"])

	metadata := data["metadata"].(map[string]any)
	assert.Equal(t, "content_based", metadata["algorithm"])
}
