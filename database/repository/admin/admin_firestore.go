package admin

import (
	"context"
	"fmt"
	"time"

	"rent2reuse/database"
	"rent2reuse/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const adminCollection = "admin"

// FirestoreAdminRepo implements AdminRepository against Firestore.
type FirestoreAdminRepo struct {
	client *firestore.Client
}

// NewFirestoreAdminRepo creates a repository bound to the global client.
func NewFirestoreAdminRepo() *FirestoreAdminRepo {
	return &FirestoreAdminRepo{client: database.FirestoreClient}
}

func (r *FirestoreAdminRepo) coll() *firestore.CollectionRef {
	return r.client.Collection(adminCollection)
}

func (r *FirestoreAdminRepo) getByField(ctx context.Context, field, value string) (*models.AdminAccount, error) {
	iter := r.coll().Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admin by %s: %w", field, err)
	}

	var acct models.AdminAccount
	if err := doc.DataTo(&acct); err != nil {
		return nil, fmt.Errorf("failed to decode admin record: %w", err)
	}
	return &acct, nil
}

// GetByEmail returns the admin record matching the email, or ErrNotFound.
func (r *FirestoreAdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	return r.getByField(ctx, "email", email)
}

// GetByUID returns the admin record matching the uid, or ErrNotFound.
func (r *FirestoreAdminRepo) GetByUID(ctx context.Context, uid string) (*models.AdminAccount, error) {
	return r.getByField(ctx, "uid", uid)
}

// List returns every admin record.
func (r *FirestoreAdminRepo) List(ctx context.Context) ([]models.AdminAccount, error) {
	iter := r.coll().Documents(ctx)
	defer iter.Stop()

	var accounts []models.AdminAccount
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list admin records: %w", err)
		}
		var acct models.AdminAccount
		if err := doc.DataTo(&acct); err != nil {
			return nil, fmt.Errorf("failed to decode admin record: %w", err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

func (r *FirestoreAdminRepo) updateByUID(ctx context.Context, uid string, updates []firestore.Update) error {
	iter := r.coll().Where("uid", "==", uid).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query admin by uid: %w", err)
	}
	if _, err := doc.Ref.Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update admin record: %w", err)
	}
	return nil
}

// StampLastLogout records the logout time on the admin record.
func (r *FirestoreAdminRepo) StampLastLogout(ctx context.Context, uid string, at time.Time) error {
	return r.updateByUID(ctx, uid, []firestore.Update{
		{Path: "lastLogout", Value: at},
	})
}

// UpdateStatus sets the account status (pending/approved/rejected).
func (r *FirestoreAdminRepo) UpdateStatus(ctx context.Context, uid string, status string) error {
	return r.updateByUID(ctx, uid, []firestore.Update{
		{Path: "accountStatus", Value: status},
	})
}
