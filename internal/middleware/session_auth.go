package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/repositories"
)

// SessionAuth resolves the bearer token to a user id before the handler
// runs. Anonymous or bad-token requests are rejected here, so a gated
// handler never executes with partial side effects.
func SessionAuth(sessions repositories.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			token := parts[1]

			userID, err := sessions.ResolveToken(token)
			if err != nil {
				if errors.Is(err, apperror.ErrAuth) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			// Store the resolved identity in context
			c.Set("userID", userID)
			c.Set("sessionToken", token)

			return next(c)
		}
	}
}
