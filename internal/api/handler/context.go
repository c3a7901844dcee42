package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/komfort-city/site-backend/internal/api/middleware"
	"github.com/komfort-city/site-backend/internal/core/domain"
)

// ctxAccount extracts the authenticated account injected by the Auth
// middleware. Presence proves the middleware ran; its absence on a
// protected route is a wiring bug surfaced as 401 rather than a panic.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.ContextKeyAccount).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return account, nil
}
