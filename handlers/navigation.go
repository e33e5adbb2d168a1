package handlers

import (
	"net/http"

	"rent2reuse/middleware"
	"rent2reuse/services/access"

	"github.com/gin-gonic/gin"
)

// NavigationHandler returns the sidebar entries visible to the caller's role.
func NavigationHandler(c *gin.Context) {
	role := access.Role(c.GetString(middleware.CtxAdminRole))
	c.JSON(http.StatusOK, gin.H{"navigation": access.NavigationFor(role)})
}
