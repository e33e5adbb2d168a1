package billing

import (
	"context"
	"fmt"
	"time"

	"rent2reuse/database"
	"rent2reuse/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	transactionsCollection  = "transactions"
	subscriptionsCollection = "subscription"
	usersCollection         = "users"
)

// FirestoreBillingRepo implements BillingRepository against Firestore.
type FirestoreBillingRepo struct {
	client *firestore.Client
}

// NewFirestoreBillingRepo creates a repository bound to the global client.
func NewFirestoreBillingRepo() *FirestoreBillingRepo {
	return &FirestoreBillingRepo{client: database.FirestoreClient}
}

// CreateTransactionBundle runs the three dependent writes inside one
// Firestore transaction so a failure in any write commits nothing.
func (r *FirestoreBillingRepo) CreateTransactionBundle(ctx context.Context, txDoc models.Transaction, sub models.Subscription, plan models.ActivePlan) error {
	txRef := r.client.Collection(transactionsCollection).Doc(txDoc.TransactionID)
	subRef := r.client.Collection(subscriptionsCollection).Doc(sub.SubscriptionID)
	userRef := r.client.Collection(usersCollection).Doc(txDoc.UserID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(txRef, txDoc); err != nil {
			return fmt.Errorf("transaction write: %w", err)
		}
		if err := tx.Set(subRef, sub); err != nil {
			return fmt.Errorf("subscription write: %w", err)
		}
		updates := []firestore.Update{
			{Path: "activePlanId", Value: plan.PlanID},
			{Path: "activePlanName", Value: plan.PlanName},
			{Path: "planStartDate", Value: plan.StartDate},
			{Path: "planEndDate", Value: plan.EndDate},
		}
		if err := tx.Update(userRef, updates); err != nil {
			return fmt.Errorf("user active-plan update: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction bundle: %w", err)
	}
	return nil
}

// GetTransaction fetches a transaction by id, or ErrNotFound.
func (r *FirestoreBillingRepo) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	iter := r.client.Collection(transactionsCollection).
		Where("transactionId", "==", transactionID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactions returns transactions, optionally filtered by status.
func (r *FirestoreBillingRepo) ListTransactions(ctx context.Context, status string) ([]models.Transaction, error) {
	q := r.client.Collection(transactionsCollection).Query
	if status != "" {
		q = q.Where("status", "==", status)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()

	var txs []models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, fmt.Errorf("failed to decode transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// UpdateTransactionStatus moves a transaction to approved/rejected.
func (r *FirestoreBillingRepo) UpdateTransactionStatus(ctx context.Context, transactionID, status string) error {
	iter := r.client.Collection(transactionsCollection).
		Where("transactionId", "==", transactionID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query transaction: %w", err)
	}
	_, err = doc.Ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	return nil
}

// ExpiringSubscriptions returns subscriptions ending within the horizon.
func (r *FirestoreBillingRepo) ExpiringSubscriptions(ctx context.Context, now time.Time, horizon time.Duration) ([]models.Subscription, error) {
	iter := r.client.Collection(subscriptionsCollection).
		Where("endDate", ">=", now).
		Where("endDate", "<", now.Add(horizon)).
		Documents(ctx)
	defer iter.Stop()

	var subs []models.Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query expiring subscriptions: %w", err)
		}
		var sub models.Subscription
		if err := doc.DataTo(&sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
