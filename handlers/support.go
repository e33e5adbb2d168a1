package handlers

import (
	"net/http"
	"strings"

	"rent2reuse/services/mailer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupportHandler serves the support-email endpoint.
type SupportHandler struct {
	Mail  mailer.Mailer
	Creds mailer.Credentials
}

// NewSupportHandler creates a new SupportHandler instance.
func NewSupportHandler(mail mailer.Mailer, creds mailer.Credentials) *SupportHandler {
	return &SupportHandler{Mail: mail, Creds: creds}
}

// SendSupportEmailHandler dispatches one support reply through the email API.
// A missing ticketId is generated server-side so the caller always gets one
// back, on success and on failure alike.
func (h *SupportHandler) SendSupportEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	var msg mailer.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var missing []string
	if msg.ToEmail == "" {
		missing = append(missing, "to_email")
	}
	if msg.Subject == "" {
		missing = append(missing, "subject")
	}
	if msg.Body == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	if err := h.Creds.Validate(); err != nil {
		logger.Error("Support email credentials incomplete", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if msg.TicketID == "" {
		msg.TicketID = uuid.NewString()
	}

	result, err := h.Mail.Send(c.Request.Context(), msg)
	if err != nil {
		logger.Error("Support email send failed",
			zap.String("ticketId", msg.TicketID), zap.String("toEmail", msg.ToEmail), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Failed to send support email",
			"details":  err.Error(),
			"ticketId": msg.TicketID,
		})
		return
	}

	logger.Info("Support email sent",
		zap.String("ticketId", msg.TicketID), zap.String("toEmail", msg.ToEmail))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"result":   result,
		"ticketId": msg.TicketID,
	})
}
