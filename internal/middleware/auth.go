package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokesh-18a/artiflex/internal/logging"
	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/service"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "artiflex_session"

	identityKey = "identity"
)

// Authenticate resolves the session cookie into a model.Identity and stores
// it in the echo context. Requests without a valid session pass through
// unauthenticated; route gates decide what to do about that.
func Authenticate(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := auth.ParseToken(cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(identityKey, identity)

			// request-scoped logger carrying the caller, for handlers
			// (logging.From) and services (logging.FromCtx)
			l := logging.New("http").With("user_id", identity.UserID, "role", string(identity.Role))
			logging.With(c, l)
			c.SetRequest(c.Request().WithContext(logging.WithCtx(c.Request().Context(), l)))

			return next(c)
		}
	}
}

// RequireRole rejects requests whose identity is absent or of the wrong role.
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			if identity.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated identity, if any.
func IdentityFrom(c echo.Context) (model.Identity, bool) {
	v := c.Get(identityKey)
	if v == nil {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}
