package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// {"error": true, "message": "<string>"}.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes. Handlers usually
//     map these themselves to attach kind-specific messages; this is the
//     backstop for anything that slips through.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: true, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (guard rejections, 404 from the router, bind failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid Credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts. Please try again later."
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "Already exists."
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, "All fields are required."
	case errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusUnauthorized, "Cafe Owner Id does not exist."
	case errors.Is(err, domain.ErrCafeNotFound):
		return http.StatusUnauthorized, "Cafe does not exist."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server Error"
}
