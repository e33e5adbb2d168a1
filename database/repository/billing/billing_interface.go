package billing

import (
	"context"
	"errors"
	"time"

	"rent2reuse/models"
)

// ErrNotFound is returned when no transaction matches the lookup.
var ErrNotFound = errors.New("transaction not found")

// BillingRepository persists transactions, subscriptions and the user's
// active-plan fields.
type BillingRepository interface {
	// CreateTransactionBundle writes the transaction document, the
	// subscription document and the user's active-plan update as one atomic
	// multi-document write. Either all three land or none do.
	CreateTransactionBundle(ctx context.Context, tx models.Transaction, sub models.Subscription, plan models.ActivePlan) error

	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, status string) ([]models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID, status string) error

	// ExpiringSubscriptions returns subscriptions whose end date falls within
	// [now, now+horizon), for the reminder worker.
	ExpiringSubscriptions(ctx context.Context, now time.Time, horizon time.Duration) ([]models.Subscription, error)
}
