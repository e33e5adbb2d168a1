package settings

import (
	"context"
	"fmt"

	"rent2reuse/database"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const settingsCollection = "settings"

// FirestoreSettingsRepo implements SettingsRepository against Firestore.
type FirestoreSettingsRepo struct {
	client *firestore.Client
}

// NewFirestoreSettingsRepo creates a repository bound to the global client.
func NewFirestoreSettingsRepo() *FirestoreSettingsRepo {
	return &FirestoreSettingsRepo{client: database.FirestoreClient}
}

// GetSection decodes the settings document with the given id into out.
// A missing document returns found=false and leaves out untouched.
func (r *FirestoreSettingsRepo) GetSection(ctx context.Context, sectionID string, out interface{}) (bool, error) {
	doc, err := r.client.Collection(settingsCollection).Doc(sectionID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch settings section %q: %w", sectionID, err)
	}
	if err := doc.DataTo(out); err != nil {
		return false, fmt.Errorf("failed to decode settings section %q: %w", sectionID, err)
	}
	return true, nil
}

// SetSection overwrites the settings document with the given id.
func (r *FirestoreSettingsRepo) SetSection(ctx context.Context, sectionID string, payload interface{}) error {
	if _, err := r.client.Collection(settingsCollection).Doc(sectionID).Set(ctx, payload); err != nil {
		return fmt.Errorf("failed to write settings section %q: %w", sectionID, err)
	}
	return nil
}
