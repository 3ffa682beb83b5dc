package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starryNight/pkg/response"
)

func TestPreferencesGetRequiresSessionID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/preferences", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPreferencesHandler().Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "MISSING_SESSION_ID", envelope.Error.Code)
}

func TestPreferencesGetReturnsDefaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/preferences?sessionId=session_1_abcdefghi", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPreferencesHandler().Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]any)
	assert.Equal(t, "session_1_abcdefghi", data["sessionId"])

	priceRange := data["priceRange"].(map[string]any)
	assert.Equal(t, float64(0), priceRange["min"])
	assert.Equal(t, float64(500000), priceRange["max"])
	assert.Equal(t, float64(150000), priceRange["average"])
}

func TestPreferencesUpdateStampsUpdatedAt(t *testing.T) {
	body := `{"sessionId":"session_1_abcdefghi","categoryAffinity":{"Modern":0.9},"updatedAt":1}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/user/preferences", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPreferencesHandler().Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]any)
	affinity := data["categoryAffinity"].(map[string]any)
	assert.Equal(t, 0.9, affinity["Modern"])
	assert.Greater(t, data["updatedAt"].(float64), float64(1))
}

func TestPreferencesUpdateRequiresSessionID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/user/preferences", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPreferencesHandler().Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
