package settings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rent2reuse/models"
)

type mockSettingsRepo struct {
	mu       sync.Mutex
	sections map[string]func(out interface{})
	err      error
	fetches  int
}

func (m *mockSettingsRepo) GetSection(ctx context.Context, sectionID string, out interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	if m.err != nil {
		return false, m.err
	}
	fill, ok := m.sections[sectionID]
	if !ok {
		return false, nil
	}
	fill(out)
	return true, nil
}

func (m *mockSettingsRepo) SetSection(ctx context.Context, sectionID string, payload interface{}) error {
	return m.err
}

func TestAccessorsReturnDefaultsBeforeLoad(t *testing.T) {
	store := NewStore(&mockSettingsRepo{})
	if store.Loaded() {
		t.Fatal("store should start unloaded")
	}
	defaults := models.DefaultSettings()
	if store.General() != defaults.General {
		t.Fatal("general accessor should return defaults before load")
	}
	if store.Rental() != defaults.Rental {
		t.Fatal("rental accessor should return defaults before load")
	}
	if store.Voucher() != defaults.Voucher {
		t.Fatal("voucher accessor should return defaults before load")
	}
	if store.Notifications() != defaults.Notifications {
		t.Fatal("notifications accessor should return defaults before load")
	}
	if store.Permissions() != defaults.Permissions {
		t.Fatal("permissions accessor should return defaults before load")
	}
}

func TestLoadFillsAllSectionsWithMissingDocsDefaulted(t *testing.T) {
	repo := &mockSettingsRepo{
		sections: map[string]func(out interface{}){
			models.SettingsSectionGeneral: func(out interface{}) {
				*(out.(*models.GeneralSettings)) = models.GeneralSettings{PlatformName: "R2R Staging"}
			},
			// The other five documents do not exist.
		},
	}
	store := NewStore(repo)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !store.Loaded() {
		t.Fatal("store should be loaded")
	}
	if store.General().PlatformName != "R2R Staging" {
		t.Fatalf("loaded section not visible: %+v", store.General())
	}
	defaults := models.DefaultSettings()
	if store.Rental() != defaults.Rental {
		t.Fatal("missing rental document must resolve to defaults, not be absent")
	}
	if store.Voucher() != defaults.Voucher {
		t.Fatal("missing voucher document must resolve to defaults, not be absent")
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	repo := &mockSettingsRepo{}
	store := NewStore(repo)
	for i := 0; i < 3; i++ {
		if err := store.Load(context.Background()); err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
	}
	if repo.fetches != len(models.SettingsSectionIDs) {
		t.Fatalf("expected one fetch per section, got %d", repo.fetches)
	}
}

func TestLoadFailureLeavesStoreUnloaded(t *testing.T) {
	repo := &mockSettingsRepo{err: errors.New("backend down")}
	store := NewStore(repo)
	if err := store.Load(context.Background()); err == nil {
		t.Fatal("load should surface the fetch error")
	}
	if store.Loaded() {
		t.Fatal("failed load must leave the store unloaded")
	}
	defaults := models.DefaultSettings()
	if store.General() != defaults.General {
		t.Fatal("failed load must leave defaults intact")
	}

	// Retry succeeds once the backend recovers.
	repo.mu.Lock()
	repo.err = nil
	repo.mu.Unlock()
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("retry load failed: %v", err)
	}
	if !store.Loaded() {
		t.Fatal("store should be loaded after retry")
	}
}

func TestConcurrentLoadsCoalesce(t *testing.T) {
	repo := &mockSettingsRepo{}
	store := NewStore(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Load(context.Background())
		}()
	}
	wg.Wait()

	if repo.fetches != len(models.SettingsSectionIDs) {
		t.Fatalf("concurrent loads must coalesce to one fetch per section, got %d", repo.fetches)
	}
}
