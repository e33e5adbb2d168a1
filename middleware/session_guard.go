package middleware

import (
	"net/http"
	"strings"

	"rent2reuse/utils"

	"github.com/gin-gonic/gin"
)

const (
	protectedPrefix = "/admin"
	signinPath      = "/auth/signin"
	adminLanding    = "/admin"
)

// SessionGuardMiddleware intercepts dashboard page requests before they are
// served. It checks only that the session-marker cookie equals "true"; the
// admin record is re-validated downstream on every API call.
//
// Unauthenticated access to a protected path redirects to sign-in with the
// original path carried in the "from" query parameter; an authenticated
// session landing on the sign-in page redirects to the admin landing page.
func SessionGuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		cookie, err := c.Cookie(utils.AdminCookieName)
		authed := err == nil && cookie == "true"

		if strings.HasPrefix(path, protectedPrefix) && !authed {
			c.Redirect(http.StatusFound, signinPath+"?from="+path)
			c.Abort()
			return
		}
		if strings.HasPrefix(path, signinPath) && authed {
			c.Redirect(http.StatusFound, adminLanding)
			c.Abort()
			return
		}
		c.Next()
	}
}
