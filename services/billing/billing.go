package billing

import (
	"context"
	"fmt"
	"time"

	billingRepo "rent2reuse/database/repository/billing"
	"rent2reuse/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingService creates and reviews subscription transactions.
type BillingService interface {
	CreateTransaction(ctx context.Context, userID string, plan models.Plan, paymentMethod, proofURL string) (string, error)
	ReviewTransaction(ctx context.Context, transactionID, status string) error
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, status string) ([]models.Transaction, error)
}

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Repo billingRepo.BillingRepository
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBillingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateTransaction writes the pending transaction, the subscription record
// referencing it, and the user's active-plan fields as one atomic bundle.
// endDate is exactly startDate plus the plan duration in days. Any write
// failure surfaces the underlying error and commits nothing.
func (s *DefaultBillingService) CreateTransaction(ctx context.Context, userID string, plan models.Plan, paymentMethod, proofURL string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("userID is required")
	}
	if plan.ID == "" || plan.DurationDays <= 0 {
		return "", fmt.Errorf("invalid plan: id=%q durationDays=%d", plan.ID, plan.DurationDays)
	}
	if paymentMethod == "" {
		return "", fmt.Errorf("paymentMethod is required")
	}

	startDate := s.now()
	endDate := startDate.Add(time.Duration(plan.DurationDays) * 24 * time.Hour)
	transactionID := uuid.NewString()

	tx := models.Transaction{
		TransactionID:   transactionID,
		UserID:          userID,
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		Price:           plan.Price,
		DurationDays:    plan.DurationDays,
		PaymentMethod:   paymentMethod,
		PaymentProofURL: proofURL,
		Status:          models.TransactionPending,
		StartDate:       startDate,
		EndDate:         endDate,
		CreatedAt:       startDate,
		UpdatedAt:       startDate,
	}
	sub := models.Subscription{
		SubscriptionID: uuid.NewString(),
		TransactionID:  transactionID,
		UserID:         userID,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		Status:         models.TransactionPending,
		StartDate:      startDate,
		EndDate:        endDate,
		CreatedAt:      startDate,
	}
	activePlan := models.ActivePlan{
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.Repo.CreateTransactionBundle(ctx, tx, sub, activePlan); err != nil {
		return "", err
	}
	zap.L().Info("transaction created",
		zap.String("transactionId", transactionID),
		zap.String("userId", userID),
		zap.String("planId", plan.ID))
	return transactionID, nil
}

// ReviewTransaction moves a pending transaction to approved or rejected.
func (s *DefaultBillingService) ReviewTransaction(ctx context.Context, transactionID, status string) error {
	if status != models.TransactionApproved && status != models.TransactionRejected {
		return fmt.Errorf("invalid review status %q", status)
	}
	return s.Repo.UpdateTransactionStatus(ctx, transactionID, status)
}

// GetTransaction fetches one transaction.
func (s *DefaultBillingService) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return s.Repo.GetTransaction(ctx, transactionID)
}

// ListTransactions lists transactions, optionally filtered by status.
func (s *DefaultBillingService) ListTransactions(ctx context.Context, status string) ([]models.Transaction, error) {
	return s.Repo.ListTransactions(ctx, status)
}
