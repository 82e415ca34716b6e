package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dogukan2201/ChairUpBackend/internal/api/metrics"
	"github.com/dogukan2201/ChairUpBackend/internal/core/auth"
	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// Guard returns the middleware protecting one principal kind's routes. A
// missing bearer token fails with 401; a token that fails verification, or
// that was minted for a different kind, fails with 403. Expired and invalid
// tokens get the same response on purpose; only metrics tell them apart.
//
// On success the decoded claims are stored in the echo context under the
// kind's own key ("admin", "cafeOwner", "customer", "user").
func Guard(tokens *auth.TokenManager, kind domain.Kind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues(string(kind), "missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.TokenVerificationsTotal.WithLabelValues(string(kind), "missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied.")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(string(kind), verifyFailureReason(err)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token.")
			}

			if claims.Kind != kind {
				metrics.TokenVerificationsTotal.WithLabelValues(string(kind), "kind_mismatch").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token.")
			}

			metrics.TokenVerificationsTotal.WithLabelValues(string(kind), "ok").Inc()
			c.Set(string(kind), claims)
			return next(c)
		}
	}
}

func verifyFailureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpired):
		return "expired"
	case errors.Is(err, auth.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
