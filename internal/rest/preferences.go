package rest

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"starryNight/business/session"
	"starryNight/domain"
	"starryNight/pkg/response"
)

type (
	PreferencesHandler struct {
		validate *validator.Validate
	}

	PreferencesQuery struct {
		SessionID string `query:"sessionId" validate:"required"`
		UserID    string `query:"userId"`
	}
)

func NewPreferencesHandler() *PreferencesHandler {
	return &PreferencesHandler{
		validate: validator.New(),
	}
}

// Get handles GET /api/user/preferences. Until server-side profiles
// exist, every session gets the cold-start defaults.
func (h *PreferencesHandler) Get(c echo.Context) error {
	var q PreferencesQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Error("MISSING_SESSION_ID", "sessionId is required"))
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Error("MISSING_SESSION_ID", "sessionId is required"))
	}

	preferences := session.DefaultPreferences(q.SessionID, time.Now())
	preferences.UserID = q.UserID

	return c.JSON(http.StatusOK, response.OK(preferences))
}

// Update handles POST /api/user/preferences. The submitted profile is
// acknowledged with a fresh updatedAt stamp.
func (h *PreferencesHandler) Update(c echo.Context) error {
	var preferences domain.UserPreferences
	if err := c.Bind(&preferences); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Error("MISSING_SESSION_ID", "sessionId is required"))
	}

	if preferences.SessionID == "" {
		return c.JSON(http.StatusBadRequest,
			response.Error("MISSING_SESSION_ID", "sessionId is required"))
	}

	preferences.UpdatedAt = time.Now().UnixMilli()

	return c.JSON(http.StatusOK, response.OK(preferences))
}
