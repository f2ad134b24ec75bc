package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// RequireAdmin restricts a route to admin callers. It must run after
// Authenticate; a request without a resolved user is treated as
// unauthenticated rather than forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			switch user.Role {
			case domain.RoleAdmin:
				return next(c)
			case domain.RoleUser:
				return echo.NewHTTPError(http.StatusForbidden, "not authorized as admin")
			default:
				return echo.NewHTTPError(http.StatusForbidden, "not authorized as admin")
			}
		}
	}
}
