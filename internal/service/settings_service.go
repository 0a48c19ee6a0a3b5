package service

import (
	"context"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/store"
)

// SettingsService defines the settings contract. Settings are a
// singleton: reads fall back to hardcoded defaults, saves overwrite
// the whole record.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

type settingsService struct {
	settings *store.SettingsStore
}

// NewSettingsService creates a SettingsService over the settings store.
func NewSettingsService(settings *store.SettingsStore) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Save(ctx context.Context, settings domain.Settings) error {
	verr := &domain.ValidationError{}
	if settings.Company.Name == "" {
		verr.Add("company.name", "must not be empty")
	}
	if settings.InvoiceStartNumber < 1 {
		settings.InvoiceStartNumber = 1
	}
	if verr.HasErrors() {
		return verr
	}
	return s.settings.Save(ctx, settings)
}
