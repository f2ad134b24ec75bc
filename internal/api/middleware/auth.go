package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/api/metrics"
	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// currentUserKey is the request-scoped slot holding the resolved caller.
const currentUserKey = "auth.current_user"

// Authenticate validates the bearer token, resolves the acting user, and
// attaches it (hash stripped) to the request scope. A token whose subject
// no longer exists is rejected even if cryptographically valid.
func Authenticate(tokens ports.TokenService, repo ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ident, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := repo.FindByID(c.Request().Context(), ident.UserID)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("unknown_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(currentUserKey, user.WithoutHash())
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Authenticate for this request.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(currentUserKey).(*domain.User)
	return user, ok && user != nil
}

// SetCurrentUser attaches a resolved user to the request scope. Exported
// for handler tests; production code goes through Authenticate.
func SetCurrentUser(c echo.Context, user *domain.User) {
	c.Set(currentUserKey, user)
}
