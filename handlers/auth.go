package handlers

import (
	"errors"
	"net/http"

	adminRepoPkg "rent2reuse/database/repository/admin"
	"rent2reuse/middleware"
	"rent2reuse/services/auth"
	"rent2reuse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the sign-in, sign-out and session endpoints.
type AuthHandler struct {
	Sessions  auth.SessionService
	AdminRepo adminRepoPkg.AdminRepository
	Watcher   *auth.SessionWatcher
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(sessions auth.SessionService, repo adminRepoPkg.AdminRepository, watcher *auth.SessionWatcher) *AuthHandler {
	return &AuthHandler{Sessions: sessions, AdminRepo: repo, Watcher: watcher}
}

// SignInHandler exchanges a Firebase ID token for a session token and sets
// the dashboard cookie. Every denial is the same 401.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
		return
	}

	session, token, err := h.Sessions.SignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Admin sign-in denied", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
		return
	}

	c.SetCookie(utils.AdminCookieName, "true", int(utils.SessionFlagTTL.Seconds()), "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"token": token, "session": session})
}

// SignOutHandler revokes the caller's session and clears the dashboard cookie.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	logger := getLogger(c)
	uid := c.GetString(middleware.CtxAdminUID)

	if err := h.Sessions.SignOut(c.Request.Context(), uid); err != nil {
		logger.Error("Admin sign-out failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-out failed"})
		return
	}

	c.SetCookie(utils.AdminCookieName, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SessionHandler returns the resolved session for the authenticated caller,
// including the admin record fields the dashboard header displays.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	logger := getLogger(c)
	uid := c.GetString(middleware.CtxAdminUID)

	record, err := h.AdminRepo.GetByUID(c.Request.Context(), uid)
	if err != nil {
		logger.Error("Failed to fetch admin record for session", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":       record.UID,
		"email":     record.Email,
		"fullName":  record.FullName,
		"adminRole": record.AdminRole,
		"photoUrl":  record.PhotoURL,
	})
}

// SessionStateHandler reports the watcher's current reactive state.
func (h *AuthHandler) SessionStateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Watcher.Current())
}

// LogoutBeaconHandler accepts the best-effort beacon fired when a dashboard
// tab closes. It revokes the session and stamps lastLogout for the given uid.
func (h *AuthHandler) LogoutBeaconHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		UID string `json:"uid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
		return
	}

	if _, err := h.AdminRepo.GetByUID(c.Request.Context(), req.UID); err != nil {
		if errors.Is(err, adminRepoPkg.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
			return
		}
		logger.Error("Logout beacon lookup failed", zap.String("uid", req.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record logout"})
		return
	}

	if err := h.Sessions.SignOut(c.Request.Context(), req.UID); err != nil {
		logger.Error("Logout beacon sign-out failed", zap.String("uid", req.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
