package handlers

import (
	"net/http"

	adminRepoPkg "rent2reuse/database/repository/admin"
	"rent2reuse/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves admin-account management endpoints.
type AdminHandler struct {
	Repo adminRepoPkg.AdminRepository
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(repo adminRepoPkg.AdminRepository) *AdminHandler {
	return &AdminHandler{Repo: repo}
}

// ListAdminsHandler returns all admin accounts.
func (h *AdminHandler) ListAdminsHandler(c *gin.Context) {
	logger := getLogger(c)

	admins, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list admin accounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list admins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

// UpdateAdminStatusHandler approves or rejects a pending admin account.
func (h *AdminHandler) UpdateAdminStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	uid := c.Param("uid")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	switch req.Status {
	case models.AccountStatusApproved, models.AccountStatusRejected, models.AccountStatusPending:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be pending, approved or rejected"})
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), uid, req.Status); err != nil {
		logger.Error("Failed to update admin status",
			zap.String("uid", uid), zap.String("status", req.Status), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update admin status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
