package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/application/services"
)

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

// writeServiceError maps the closed service error set onto the response
// taxonomy. Unknown errors become a generic 500; internals stay in the logs.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrPasswordMismatch):
		return c.JSON(http.StatusBadRequest, errorBody("Error: "+err.Error()))
	case errors.Is(err, services.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, services.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, errorBody(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errorBody("An unexpected error occurred"))
	}
}
