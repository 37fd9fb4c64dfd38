package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/application/interfaces"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/logging"
	"golang.org/x/time/rate"
)

// AuthGate extracts the bearer token, resolves it to a user and stores the
// identity in the request context. Every failure mode falls through as
// anonymous; the access policy decides whether that is acceptable.
func AuthGate(jwtService *infrastructure.JWTService, authService interfaces.AuthService, log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return next(c)
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			subject, err := jwtService.ExtractSubject(token)
			if err != nil {
				log.Warn(c.Request().Context(), "token rejected", "error", err)
				return next(c)
			}

			user, err := authService.FindUserByEmail(c.Request().Context(), subject)
			if err != nil || user == nil || !user.IsActive() {
				return next(c)
			}

			if jwtService.IsValid(token, user) {
				setCurrentUser(c, user)
			}
			return next(c)
		}
	}
}

// GlobalRateLimit sheds load before any handler runs.
func GlobalRateLimit(perSecond, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, errorBody("Too many requests"))
			}
			return next(c)
		}
	}
}
