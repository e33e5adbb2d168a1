package middleware

import (
	"net/http"

	"rent2reuse/services/access"

	"github.com/gin-gonic/gin"
)

// RequirePage enforces the role-permission table for one dashboard page.
// Must run after AdminAuthMiddleware; a missing or unknown role denies.
func RequirePage(page access.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := access.Role(c.GetString(CtxAdminRole))
		if !access.CheckAccess(role, page) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Role is not permitted to access this page",
			})
			return
		}
		c.Next()
	}
}
