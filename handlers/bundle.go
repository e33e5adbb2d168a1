package handlers

import (
	adminRepoPkg "rent2reuse/database/repository/admin"
	"rent2reuse/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	AdminRepo adminRepoPkg.AdminRepository
	Sessions  auth.SessionService

	// Auth endpoints
	SignInHandler       gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc
	SessionHandler      gin.HandlerFunc
	SessionStateHandler gin.HandlerFunc
	LogoutBeaconHandler gin.HandlerFunc

	// Admin management endpoints
	ListAdminsHandler        gin.HandlerFunc
	UpdateAdminStatusHandler gin.HandlerFunc
	NavigationHandler        gin.HandlerFunc

	// Settings endpoints
	GetSettingsHandler           gin.HandlerFunc
	UpdateSettingsSectionHandler gin.HandlerFunc

	// Billing endpoints
	CreateTransactionHandler gin.HandlerFunc
	ReviewTransactionHandler gin.HandlerFunc
	GetTransactionHandler    gin.HandlerFunc
	ListTransactionsHandler  gin.HandlerFunc
	PaymentIntentHandler     gin.HandlerFunc

	// Support endpoints
	SendSupportEmailHandler gin.HandlerFunc

	// Storage endpoints
	UploadPhotoHandler    gin.HandlerFunc
	GetDownloadURLHandler gin.HandlerFunc
}
