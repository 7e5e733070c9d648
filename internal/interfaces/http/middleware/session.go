package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionIDKey is the gin context key holding the session id
	SessionIDKey = "session_id"
	// SessionCookie is the browser cookie carrying the session id
	SessionCookie = "cf_session"
	// SessionHeader lets non-browser clients pin a session explicitly
	SessionHeader = "X-Session-ID"

	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware resolves the caller's session identity: header
// first, then cookie, else a fresh id set as a cookie. The wizard keys
// all of its per-session state on this id, so concurrent visitors
// never share an in-progress application.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" {
			id = uuid.New().String()
			c.SetCookie(SessionCookie, id, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// GetSessionID returns the session id resolved for this request
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
