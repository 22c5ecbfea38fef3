package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hitss/task-manager/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware
// and fast-fails before any service call: its presence proves the
// middleware ran and the token carried a subject.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, _ := c.Get("principal").(*domain.Principal)
	if p == nil || p.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
