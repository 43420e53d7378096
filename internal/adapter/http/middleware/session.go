package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aaplitrip/trip-catalog/internal/adapter/http/response"
	"github.com/aaplitrip/trip-catalog/internal/domain"
)

const (
	// RoleHeader carries the role issued alongside the token.
	RoleHeader = "X-User-Role"

	bearerPrefix = "bearer "
	sessionKey   = "session"
)

// Session returns middleware that extracts the caller's session from the request headers.
// The token is opaque: it is never validated here, only its presence gates prices.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(sessionKey, SessionFromRequest(c.Request()))
			return next(c)
		}
	}
}

// RequireSession returns middleware that rejects anonymous callers with 401.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetSession(c).IsAuthenticated() {
				return response.Unauthorized(c)
			}
			return next(c)
		}
	}
}

// SessionFromRequest reads "Authorization: Bearer <token>" and the role header.
func SessionFromRequest(r *http.Request) domain.Session {
	auth := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	if len(auth) < len(bearerPrefix) || !strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return domain.Session{}
	}

	return domain.Session{
		Token: strings.TrimSpace(auth[len(bearerPrefix):]),
		Role:  strings.TrimSpace(r.Header.Get(RoleHeader)),
	}
}

// GetSession returns the session stored by the Session middleware.
// When the middleware did not run, the session is read from the request directly.
func GetSession(c echo.Context) domain.Session {
	if s, ok := c.Get(sessionKey).(domain.Session); ok {
		return s
	}
	return SessionFromRequest(c.Request())
}
