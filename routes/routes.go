package routes

import (
	"net/http"
	"time"

	"rent2reuse/handlers"
	"rent2reuse/middleware"
	"rent2reuse/services/access"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in, sign-out and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signin", hb.SignInHandler)
		// The beacon carries no bearer token; it names the uid explicitly.
		api.POST("/logout-beacon", hb.LogoutBeaconHandler)

		// Protected routes (require an authenticated session)
		api.Use(middleware.AdminAuthMiddleware(hb.Sessions))
		api.POST("/signout", hb.SignOutHandler)
		api.GET("/session", hb.SessionHandler)
		api.GET("/session/state", hb.SessionStateHandler)
	}
}

// RegisterAdminRoutes registers admin-account management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware(hb.Sessions))
	{
		api.GET("/navigation", hb.NavigationHandler)

		admins := api.Group("/admins")
		admins.Use(middleware.RequirePage(access.PageAdmins))
		admins.GET("", hb.ListAdminsHandler)
		admins.PATCH("/:uid/status", hb.UpdateAdminStatusHandler)

		settings := api.Group("/settings")
		settings.Use(middleware.RequirePage(access.PageSettings))
		settings.GET("", hb.GetSettingsHandler)
		settings.PUT("/:section", hb.UpdateSettingsSectionHandler)

		transactions := api.Group("/transactions")
		transactions.Use(middleware.RequirePage(access.PageTransactions))
		transactions.POST("", hb.CreateTransactionHandler)
		transactions.GET("", hb.ListTransactionsHandler)
		transactions.GET("/:id", hb.GetTransactionHandler)
		transactions.PATCH("/:id/review", hb.ReviewTransactionHandler)
		transactions.POST("/payment-intent", hb.PaymentIntentHandler)

		storage := api.Group("/storage")
		storage.POST("/upload/:bucket", hb.UploadPhotoHandler)
		storage.GET("/download/:bucket/:filename", hb.GetDownloadURLHandler)
	}
}

// RegisterSupportRoutes registers the support-email endpoint.
func RegisterSupportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/support")
	api.Use(middleware.AdminAuthMiddleware(hb.Sessions))
	api.Use(middleware.RequirePage(access.PageSupport))
	{
		api.POST("/email", hb.SendSupportEmailHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Rent2Reuse"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie guard for dashboard page navigation.
	r.Use(middleware.SessionGuardMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterSupportRoutes(r, hb)
	RegisterHealthRoute(r)
}
