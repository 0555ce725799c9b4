package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionIDKey is the context key for the browser session ID
	SessionIDKey contextKey = "session_id"

	// SessionCookieName identifies a browser across advice submissions
	SessionCookieName = "mint_session"
)

// Session ensures every request carries a session ID cookie.
// The ID only scopes the one-pending-request guard; nothing is stored per session.
func Session(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID uuid.UUID
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				sessionID, _ = uuid.Parse(cookie.Value)
			}

			if sessionID == uuid.Nil {
				sessionID = uuid.New()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID.String(),
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(c.Request().Context(), SessionIDKey, sessionID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetSessionID extracts the session ID from the request context
func GetSessionID(c echo.Context) string {
	if sessionID, ok := c.Request().Context().Value(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}
