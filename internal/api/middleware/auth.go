package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
)

// ContextUserKey is the echo context key under which Auth stores the resolved
// *domain.User of the authenticated caller.
const ContextUserKey = "auth_user"

// IdentityResolver turns a validated token subject into the full user record
// (id, roles) the authorization checks need. Implementations may cache.
type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (*domain.User, error)
}

// Auth extracts the bearer token, validates it, resolves the subject to a user
// and injects the user into the request context. Missing or invalid tokens,
// and subjects that no longer exist, all fail with 401.
func Auth(tokens ports.TokenService, identities IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			if !tokens.Validate(parts[1]) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, err := tokens.Subject(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := identities.Resolve(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown token subject")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user injected by Auth, or nil when the
// middleware did not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(ContextUserKey).(*domain.User)
	return user
}
