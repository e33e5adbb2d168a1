package handlers

import (
	"errors"
	"net/http"

	billingRepoPkg "rent2reuse/database/repository/billing"
	"rent2reuse/models"
	"rent2reuse/services/billing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler serves transaction and payment endpoints.
type BillingHandler struct {
	Svc billing.BillingService
}

// NewBillingHandler creates a new BillingHandler instance.
func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Svc: svc}
}

type createTransactionRequest struct {
	UserID        string      `json:"userId"`
	Plan          models.Plan `json:"plan"`
	PaymentMethod string      `json:"paymentMethod"`
	ProofURL      string      `json:"proofUrl"`
}

// CreateTransactionHandler records a subscription purchase as one atomic
// bundle: transaction, subscription and the user's active-plan fields.
func (h *BillingHandler) CreateTransactionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	transactionID, err := h.Svc.CreateTransaction(c.Request.Context(), req.UserID, req.Plan, req.PaymentMethod, req.ProofURL)
	if err != nil {
		logger.Error("Transaction creation failed",
			zap.String("userId", req.UserID), zap.String("planId", req.Plan.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transaction", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transactionId": transactionID})
}

// ReviewTransactionHandler moves a pending transaction to approved or rejected.
func (h *BillingHandler) ReviewTransactionHandler(c *gin.Context) {
	logger := getLogger(c)
	transactionID := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.ReviewTransaction(c.Request.Context(), transactionID, req.Status); err != nil {
		if errors.Is(err, billingRepoPkg.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		logger.Error("Transaction review failed",
			zap.String("transactionId", transactionID), zap.String("status", req.Status), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetTransactionHandler fetches one transaction.
func (h *BillingHandler) GetTransactionHandler(c *gin.Context) {
	logger := getLogger(c)
	transactionID := c.Param("id")

	tx, err := h.Svc.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, billingRepoPkg.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		logger.Error("Transaction fetch failed", zap.String("transactionId", transactionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transaction"})
		return
	}
	c.JSON(http.StatusOK, tx)
}

// ListTransactionsHandler lists transactions, optionally filtered by status.
func (h *BillingHandler) ListTransactionsHandler(c *gin.Context) {
	logger := getLogger(c)
	status := c.Query("status")

	txs, err := h.Svc.ListTransactions(c.Request.Context(), status)
	if err != nil {
		logger.Error("Transaction list failed", zap.String("status", status), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// PaymentIntentHandler creates a Stripe payment intent for a card purchase.
func (h *BillingHandler) PaymentIntentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		UserID string      `json:"userId"`
		Plan   models.Plan `json:"plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and plan are required"})
		return
	}

	clientSecret, err := billing.CreateCardPaymentIntent(req.UserID, req.Plan)
	if err != nil {
		logger.Error("Payment intent creation failed",
			zap.String("userId", req.UserID), zap.String("planId", req.Plan.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
