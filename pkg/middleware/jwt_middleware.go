package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/domain"
	"whatsup/pkg/utils"
)

const sessionKey = "session"

func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := utils.ValidateSessionToken(tokenString)
		if err != nil || session.Mode == domain.ModeNone {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session.Mode != domain.ModeAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session placed on the context by
// SessionMiddleware, or a zero session outside the authenticated group.
func SessionFrom(c *gin.Context) domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{Mode: domain.ModeNone}
	}
	session, _ := v.(domain.Session)
	return session
}
