package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblerapp/warbler/internal/apperror"
)

// getUserIDFromContext returns the user id set by the session middleware,
// or 0 when the request is anonymous.
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get("userID").(uint); ok {
		return id
	}
	return 0
}

// toHTTPError translates repository errors into HTTP status codes:
// validation 400, conflict 409, ownership 403, not found 404, anything
// else 500.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrAuth):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperror.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
