package settings

import (
	"context"
	"fmt"
	"sync"

	settingsRepo "rent2reuse/database/repository/settings"
	"rent2reuse/models"

	"go.uber.org/zap"
)

// Store is the cached settings aggregate. Load is lazy and idempotent; every
// accessor returns the section defaults until a load completes, and after a
// successful load all six sections are present. Consumers never observe a
// partially loaded aggregate.
type Store struct {
	Repo settingsRepo.SettingsRepository

	mu       sync.RWMutex
	loaded   bool
	loading  sync.Mutex
	snapshot models.SettingsAggregate
}

// NewStore creates an unloaded store backed by defaults.
func NewStore(repo settingsRepo.SettingsRepository) *Store {
	return &Store{
		Repo:     repo,
		snapshot: models.DefaultSettings(),
	}
}

// Load fetches all six settings sections. Concurrent calls coalesce; a
// repeated call after success is a no-op. A missing document keeps the
// section's defaults — only a fetch error fails the load, and a failed load
// leaves the store unloaded with defaults intact.
func (s *Store) Load(ctx context.Context) error {
	s.loading.Lock()
	defer s.loading.Unlock()

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	next := models.DefaultSettings()
	sections := []struct {
		id  string
		out interface{}
	}{
		{models.SettingsSectionGeneral, &next.General},
		{models.SettingsSectionRental, &next.Rental},
		{models.SettingsSectionSubscription, &next.Subscription},
		{models.SettingsSectionVoucher, &next.Voucher},
		{models.SettingsSectionNotifications, &next.Notifications},
		{models.SettingsSectionPermissions, &next.Permissions},
	}
	for _, sec := range sections {
		found, err := s.Repo.GetSection(ctx, sec.id, sec.out)
		if err != nil {
			return fmt.Errorf("settings load: %w", err)
		}
		if !found {
			zap.L().Info("settings section missing, using defaults", zap.String("section", sec.id))
		}
	}

	s.mu.Lock()
	s.snapshot = next
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded reports whether a load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// All returns the full aggregate (defaults before load).
func (s *Store) All() models.SettingsAggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Store) General() models.GeneralSettings            { return s.All().General }
func (s *Store) Rental() models.RentalSettings              { return s.All().Rental }
func (s *Store) Subscription() models.SubscriptionSettings  { return s.All().Subscription }
func (s *Store) Voucher() models.VoucherSettings            { return s.All().Voucher }
func (s *Store) Notifications() models.NotificationSettings { return s.All().Notifications }
func (s *Store) Permissions() models.PermissionSettings     { return s.All().Permissions }

// UpdateSection persists a section payload and refreshes the cached snapshot
// so readers see the write immediately.
func (s *Store) UpdateSection(ctx context.Context, sectionID string, apply func(*models.SettingsAggregate)) error {
	s.mu.Lock()
	next := s.snapshot
	apply(&next)
	s.mu.Unlock()

	var payload interface{}
	switch sectionID {
	case models.SettingsSectionGeneral:
		payload = next.General
	case models.SettingsSectionRental:
		payload = next.Rental
	case models.SettingsSectionSubscription:
		payload = next.Subscription
	case models.SettingsSectionVoucher:
		payload = next.Voucher
	case models.SettingsSectionNotifications:
		payload = next.Notifications
	case models.SettingsSectionPermissions:
		payload = next.Permissions
	default:
		return fmt.Errorf("unknown settings section %q", sectionID)
	}

	if err := s.Repo.SetSection(ctx, sectionID, payload); err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()
	return nil
}
