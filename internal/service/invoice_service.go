package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"invoiceflow/internal/calc"
	"invoiceflow/internal/domain"
	"invoiceflow/internal/sequence"
	"invoiceflow/internal/store"
)

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id string) (domain.Invoice, error)
	// Save validates, restores every derived-field invariant, and
	// upserts the invoice. Derived fields supplied by the caller are
	// recomputed, never trusted.
	Save(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	// NewNumber issues the next formatted invoice number. The counter
	// advances immediately, so a draft abandoned after calling this
	// leaves a permanent gap in the numbering.
	NewNumber(ctx context.Context) (string, error)
}

type invoiceService struct {
	invoices *store.Collection[domain.Invoice]
	settings *store.SettingsStore
	seq      *sequence.Generator
}

// NewInvoiceService creates an InvoiceService over the given stores.
func NewInvoiceService(invoices *store.Collection[domain.Invoice], settings *store.SettingsStore, seq *sequence.Generator) InvoiceService {
	return &invoiceService{invoices: invoices, settings: settings, seq: seq}
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.GetAll(ctx)
}

func (s *invoiceService) Get(ctx context.Context, id string) (domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) Save(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	if err := validateInvoice(&inv); err != nil {
		return domain.Invoice{}, err
	}

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	if inv.Status == "" {
		inv.Status = domain.InvoiceStatusDraft
	}
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.New().String()
		}
	}

	calc.Recalculate(&inv)
	return s.invoices.Save(ctx, inv)
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	return s.invoices.DeleteByID(ctx, id)
}

func (s *invoiceService) NewNumber(ctx context.Context) (string, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	n, err := s.seq.Next(ctx)
	if err != nil {
		return "", err
	}
	return sequence.Format(settings.InvoicePrefix, n), nil
}

func validateInvoice(inv *domain.Invoice) error {
	verr := &domain.ValidationError{}
	if inv.InvoiceNumber == "" {
		verr.Add("invoice_number", "must not be empty")
	}
	if inv.Client.Name == "" {
		verr.Add("client.name", "must not be empty")
	}
	if inv.DiscountType == "" {
		inv.DiscountType = domain.DiscountPercentage
	} else if !domain.ValidDiscountTypes[inv.DiscountType] {
		verr.Add("discount_type", "must be percentage or fixed")
	}
	if inv.Status != "" && !domain.ValidInvoiceStatuses[inv.Status] {
		verr.Add("status", "unknown status")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
