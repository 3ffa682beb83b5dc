package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"starryNight/pkg/response"
	"starryNight/pkg/utils"
)

// OptionalAuth resolves the caller's identity from a bearer token when
// one is present. Anonymous requests pass through untouched; a token
// that fails to parse is rejected rather than silently downgraded.
func OptionalAuth(secretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return c.JSON(http.StatusUnauthorized,
					response.Error("UNAUTHORIZED", "invalid authorization header"))
			}

			claims, err := utils.ParseJWT(tokenString, secretKey)
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					response.Error("UNAUTHORIZED", "invalid or expired token"))
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
