package handlers

import (
	"net/http"

	"rent2reuse/models"
	"rent2reuse/services/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler serves the platform settings endpoints.
type SettingsHandler struct {
	Store *settings.Store
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{Store: store}
}

// GetSettingsHandler returns the full settings aggregate, loading it on first
// access. A load failure still answers with the defaults so the dashboard can
// render, flagged with loaded=false.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Store.Load(c.Request.Context()); err != nil {
		logger.Error("Settings load failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{
		"loaded":   h.Store.Loaded(),
		"settings": h.Store.All(),
	})
}

// UpdateSettingsSectionHandler persists one settings section and refreshes
// the cached snapshot.
func (h *SettingsHandler) UpdateSettingsSectionHandler(c *gin.Context) {
	logger := getLogger(c)
	sectionID := c.Param("section")

	var apply func(*models.SettingsAggregate)
	switch sectionID {
	case models.SettingsSectionGeneral:
		var body models.GeneralSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apply = func(agg *models.SettingsAggregate) { agg.General = body }
	case models.SettingsSectionRental:
		var body models.RentalSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apply = func(agg *models.SettingsAggregate) { agg.Rental = body }
	case models.SettingsSectionSubscription:
		var body models.SubscriptionSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apply = func(agg *models.SettingsAggregate) { agg.Subscription = body }
	case models.SettingsSectionVoucher:
		var body models.VoucherSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apply = func(agg *models.SettingsAggregate) { agg.Voucher = body }
	case models.SettingsSectionNotifications:
		var body models.NotificationSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apply = func(agg *models.SettingsAggregate) { agg.Notifications = body }
	case models.SettingsSectionPermissions:
		var body models.PermissionSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apply = func(agg *models.SettingsAggregate) { agg.Permissions = body }
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown settings section: " + sectionID})
		return
	}

	if err := h.Store.UpdateSection(c.Request.Context(), sectionID, apply); err != nil {
		logger.Error("Settings update failed", zap.String("section", sectionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
