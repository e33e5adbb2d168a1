package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	adminRepo "rent2reuse/database/repository/admin"
	"rent2reuse/models"
)

type mockAdminRepo struct {
	accounts map[string]*models.AdminAccount // keyed by email
	err      error
	logouts  map[string]time.Time
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{
		accounts: make(map[string]*models.AdminAccount),
		logouts:  make(map[string]time.Time),
	}
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	if m.err != nil {
		return nil, m.err
	}
	acct, ok := m.accounts[email]
	if !ok {
		return nil, adminRepo.ErrNotFound
	}
	return acct, nil
}

func (m *mockAdminRepo) GetByUID(ctx context.Context, uid string) (*models.AdminAccount, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, acct := range m.accounts {
		if acct.UID == uid {
			return acct, nil
		}
	}
	return nil, adminRepo.ErrNotFound
}

func (m *mockAdminRepo) List(ctx context.Context) ([]models.AdminAccount, error) {
	var out []models.AdminAccount
	for _, acct := range m.accounts {
		out = append(out, *acct)
	}
	return out, nil
}

func (m *mockAdminRepo) StampLastLogout(ctx context.Context, uid string, at time.Time) error {
	m.logouts[uid] = at
	return nil
}

func (m *mockAdminRepo) UpdateStatus(ctx context.Context, uid string, status string) error {
	for _, acct := range m.accounts {
		if acct.UID == uid {
			acct.AccountStatus = status
			return nil
		}
	}
	return adminRepo.ErrNotFound
}

func TestCheckRecordMissingRecordDenied(t *testing.T) {
	svc := &DefaultSessionService{Repo: newMockAdminRepo()}
	if _, err := svc.checkRecord(context.Background(), "ghost@rent2reuse.com"); err != ErrDenied {
		t.Fatalf("missing record should deny, got %v", err)
	}
}

func TestCheckRecordUnapprovedDenied(t *testing.T) {
	for _, status := range []string{models.AccountStatusPending, models.AccountStatusRejected, ""} {
		repo := newMockAdminRepo()
		repo.accounts["ops@rent2reuse.com"] = &models.AdminAccount{
			UID:           "u1",
			Email:         "ops@rent2reuse.com",
			AdminRole:     "super_admin",
			AccountStatus: status,
		}
		svc := &DefaultSessionService{Repo: repo}
		if _, err := svc.checkRecord(context.Background(), "ops@rent2reuse.com"); err != ErrDenied {
			t.Fatalf("status %q should deny regardless of role, got %v", status, err)
		}
	}
}

func TestCheckRecordLookupFailureDenied(t *testing.T) {
	repo := newMockAdminRepo()
	repo.err = errors.New("backend unavailable")
	svc := &DefaultSessionService{Repo: repo}
	if _, err := svc.checkRecord(context.Background(), "ops@rent2reuse.com"); err != ErrDenied {
		t.Fatalf("lookup failure must fail closed, got %v", err)
	}
}

func TestCheckRecordApproved(t *testing.T) {
	repo := newMockAdminRepo()
	repo.accounts["ops@rent2reuse.com"] = &models.AdminAccount{
		UID:           "u1",
		Email:         "ops@rent2reuse.com",
		AdminRole:     "finance",
		AccountStatus: models.AccountStatusApproved,
	}
	svc := &DefaultSessionService{Repo: repo}
	acct, err := svc.checkRecord(context.Background(), "ops@rent2reuse.com")
	if err != nil {
		t.Fatalf("approved record should pass, got %v", err)
	}
	if acct.AdminRole != "finance" {
		t.Fatalf("expected role finance, got %q", acct.AdminRole)
	}
}
