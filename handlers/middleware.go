package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cemention-gateway/models"
	"cemention-gateway/session"
)

const (
	sessionCookie = "cmt_session"
	ctxSessionKey = "session"
)

// Sessions resolves the browser's session cookie, minting a session (and
// cookie) on first contact. Every route runs behind this.
func Sessions(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s *session.Session
		if id, err := c.Cookie(sessionCookie); err == nil {
			s, _ = store.Get(id)
		}
		if s == nil {
			s = store.Create()
			c.SetCookie(sessionCookie, s.ID, int(store.TTL().Seconds()), "/", "", false, true)
		}
		c.Set(ctxSessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	s, _ := c.MustGet(ctxSessionKey).(*session.Session)
	return s
}

// RequireAdmin guards the admin console. Other screens forward whatever token
// the session holds (possibly none) and let the backend decide.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s.User == nil || s.User.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "FORBIDDEN",
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}
