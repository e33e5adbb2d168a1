package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	billingRepo "rent2reuse/database/repository/billing"
	"rent2reuse/models"
)

type mockBillingRepo struct {
	bundles []struct {
		tx   models.Transaction
		sub  models.Subscription
		plan models.ActivePlan
	}
	bundleErr error
	statuses  map[string]string
}

func newMockBillingRepo() *mockBillingRepo {
	return &mockBillingRepo{statuses: make(map[string]string)}
}

func (m *mockBillingRepo) CreateTransactionBundle(ctx context.Context, tx models.Transaction, sub models.Subscription, plan models.ActivePlan) error {
	if m.bundleErr != nil {
		return m.bundleErr
	}
	m.bundles = append(m.bundles, struct {
		tx   models.Transaction
		sub  models.Subscription
		plan models.ActivePlan
	}{tx, sub, plan})
	return nil
}

func (m *mockBillingRepo) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	for _, b := range m.bundles {
		if b.tx.TransactionID == id {
			tx := b.tx
			return &tx, nil
		}
	}
	return nil, billingRepo.ErrNotFound
}

func (m *mockBillingRepo) ListTransactions(ctx context.Context, status string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, b := range m.bundles {
		if status == "" || b.tx.Status == status {
			out = append(out, b.tx)
		}
	}
	return out, nil
}

func (m *mockBillingRepo) UpdateTransactionStatus(ctx context.Context, id, status string) error {
	m.statuses[id] = status
	return nil
}

func (m *mockBillingRepo) ExpiringSubscriptions(ctx context.Context, now time.Time, horizon time.Duration) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, b := range m.bundles {
		if !b.sub.EndDate.Before(now) && b.sub.EndDate.Before(now.Add(horizon)) {
			out = append(out, b.sub)
		}
	}
	return out, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateTransactionEndDateExact(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	repo := newMockBillingRepo()
	svc := &DefaultBillingService{Repo: repo, Now: fixedClock(start)}

	plan := models.Plan{ID: "plan-pro", Name: "Pro", Price: 499, DurationDays: 30}
	txID, err := svc.CreateTransaction(context.Background(), "user-1", plan, "gcash", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if txID == "" {
		t.Fatal("expected a transaction id")
	}
	if len(repo.bundles) != 1 {
		t.Fatalf("expected one bundle, got %d", len(repo.bundles))
	}

	tx := repo.bundles[0].tx
	if got, want := tx.EndDate.Sub(tx.StartDate), 30*24*time.Hour; got != want {
		t.Fatalf("endDate-startDate = %v, want %v", got, want)
	}
	if tx.Status != models.TransactionPending {
		t.Fatalf("new transaction must be pending, got %q", tx.Status)
	}
}

func TestCreateTransactionBundleIsConsistent(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := newMockBillingRepo()
	svc := &DefaultBillingService{Repo: repo, Now: fixedClock(start)}

	plan := models.Plan{ID: "plan-basic", Name: "Basic", Price: 199, DurationDays: 7}
	txID, err := svc.CreateTransaction(context.Background(), "user-2", plan, "card", "proofs/p1.png")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	b := repo.bundles[0]
	if b.sub.TransactionID != txID {
		t.Fatalf("subscription must reference the transaction id %q, got %q", txID, b.sub.TransactionID)
	}
	if b.sub.EndDate != b.tx.EndDate || b.plan.EndDate != b.tx.EndDate {
		t.Fatal("transaction, subscription and active plan must share one end date")
	}
	if b.tx.PaymentProofURL != "proofs/p1.png" {
		t.Fatalf("proof url not carried: %q", b.tx.PaymentProofURL)
	}
	if b.plan.PlanID != plan.ID || b.plan.PlanName != plan.Name {
		t.Fatalf("active plan fields wrong: %+v", b.plan)
	}
}

func TestCreateTransactionWriteFailureSurfacesError(t *testing.T) {
	repo := newMockBillingRepo()
	repo.bundleErr = errors.New("firestore unavailable")
	svc := &DefaultBillingService{Repo: repo}

	plan := models.Plan{ID: "plan-pro", Name: "Pro", Price: 499, DurationDays: 30}
	_, err := svc.CreateTransaction(context.Background(), "user-1", plan, "gcash", "")
	if !errors.Is(err, repo.bundleErr) {
		t.Fatalf("expected underlying write error, got %v", err)
	}
	if len(repo.bundles) != 0 {
		t.Fatal("nothing may be recorded on write failure")
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := &DefaultBillingService{Repo: newMockBillingRepo()}
	plan := models.Plan{ID: "plan-pro", DurationDays: 30}

	if _, err := svc.CreateTransaction(context.Background(), "", plan, "gcash", ""); err == nil {
		t.Fatal("missing userID must be rejected")
	}
	if _, err := svc.CreateTransaction(context.Background(), "u", models.Plan{ID: "p"}, "gcash", ""); err == nil {
		t.Fatal("non-positive duration must be rejected")
	}
	if _, err := svc.CreateTransaction(context.Background(), "u", plan, "", ""); err == nil {
		t.Fatal("missing payment method must be rejected")
	}
}

func TestReviewTransaction(t *testing.T) {
	repo := newMockBillingRepo()
	svc := &DefaultBillingService{Repo: repo}

	if err := svc.ReviewTransaction(context.Background(), "t1", models.TransactionApproved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if repo.statuses["t1"] != models.TransactionApproved {
		t.Fatalf("status not persisted: %q", repo.statuses["t1"])
	}
	if err := svc.ReviewTransaction(context.Background(), "t1", "refunded"); err == nil {
		t.Fatal("unknown status must be rejected")
	}
	if err := svc.ReviewTransaction(context.Background(), "t1", models.TransactionPending); err == nil {
		t.Fatal("reviewing back to pending must be rejected")
	}
}
