package middleware

import (
	"net/http"

	"chime/models"
	"chime/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque web-session ID issued
// by the identity service.
const SessionCookieName = "chime_session"

// SessionAuthMiddleware gates a route behind a verified web session. The
// decision is all-or-nothing: either the cookie resolves to a completed
// session and "userID" lands in the context, or the request is aborted with
// 401. No credential or OTP logic lives here; that already happened wherever
// the session was written.
func SessionAuthMiddleware(sessions utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		session, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if session == nil || session.Status != models.SessionStatusComplete || session.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("userID", session.UserID)
		c.Next()
	}
}
