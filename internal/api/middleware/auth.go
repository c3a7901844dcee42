package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/komfort-city/site-backend/internal/core/ports"
)

// Context keys set for downstream handlers on successful authentication.
const (
	ContextKeyUsername = "username"
	ContextKeyAccount  = "account"
)

// unauthorizedMessage is the single body returned on every rejection.
// The boundary must not reveal which step failed.
const unauthorizedMessage = "could not validate credentials"

// Auth gates admin routes: it extracts the bearer token, validates it,
// resolves the account, and requires the account to be active. Every
// failure path collapses into an identical 401.
func Auth(tokens ports.TokenService, accounts ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			account, err := accounts.FindByUsername(c.Request().Context(), subject)
			if err != nil || !account.Active {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			c.Set(ContextKeyUsername, account.Username)
			c.Set(ContextKeyAccount, account)

			return next(c)
		}
	}
}
