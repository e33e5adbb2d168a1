package middleware

import (
	"net/http"
	"strings"

	"rent2reuse/services/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by AdminAuthMiddleware for downstream handlers.
const (
	CtxAdminUID   = "adminUID"
	CtxAdminEmail = "adminEmail"
	CtxAdminRole  = "adminRole"
)

// AdminAuthMiddleware re-validates the session on every API request: the
// bearer token is resolved through the session service, which re-fetches the
// admin record and denies anything but an approved account. Every failure is
// the same 401 — no reason leaks to the client.
func AdminAuthMiddleware(sessions auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := sessions.ResolveSession(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set(CtxAdminUID, session.UID)
		c.Set(CtxAdminEmail, session.Email)
		c.Set(CtxAdminRole, string(session.Role))
		c.Next()
	}
}
