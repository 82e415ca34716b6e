package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogukan2201/ChairUpBackend/internal/core/auth"
	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// ctxClaims extracts the claims the kind's guard stored in the echo context.
// Presence proves the guard ran; a handler wired without its guard fails
// closed here instead of serving an unauthenticated request.
func ctxClaims(c echo.Context, kind domain.Kind) (*auth.Claims, error) {
	claims, ok := c.Get(string(kind)).(*auth.Claims)
	if !ok || claims.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
