package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/port"
)

// SettingsStore persists the singleton settings record.
type SettingsStore struct {
	kv port.KVStore
}

// NewSettings creates the settings store.
func NewSettings(kv port.KVStore) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// Get returns the persisted settings, or the hardcoded defaults when
// none were ever saved or the stored value is unreadable.
func (s *SettingsStore) Get(ctx context.Context) (domain.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, KeySettings)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("store: reading %s: %w", KeySettings, err)
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("WARN store: %s holds unreadable data, using defaults: %v", KeySettings, err)
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// Save overwrites the settings record wholesale. There is no merge.
func (s *SettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", KeySettings, err)
	}
	if err := s.kv.Set(ctx, KeySettings, string(raw)); err != nil {
		log.Printf("ERROR store: writing %s: %v", KeySettings, err)
		return fmt.Errorf("store: writing %s: %w", KeySettings, domain.ErrStoreWrite)
	}
	return nil
}
