package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"campus-chat/auth"
)

const contextUserIDKey = "userID"

// JWTMiddleware extracts and validates the bearer token, storing the caller's
// user ID in the request context.
func JWTMiddleware(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(contextUserIDKey, claims.UserID)
			return next(c)
		}
	}
}

// contextUserID returns the authenticated caller's ID, set by JWTMiddleware.
func contextUserID(c echo.Context) string {
	id, _ := c.Get(contextUserIDKey).(string)
	return id
}
