package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hitss/task-manager/internal/api/metrics"
	"github.com/hitss/task-manager/internal/core/domain"
)

// RBAC is the role gate: the request passes when the principal holds at
// least one of the allowed roles. A missing principal is an
// authentication failure, not an authorization one.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get("principal").(*domain.Principal)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !domain.RoleAllowed(principal, allowed...) {
				metrics.AuthzDenialsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
