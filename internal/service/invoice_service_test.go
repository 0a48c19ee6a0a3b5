package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/sequence"
	"invoiceflow/internal/service"
	"invoiceflow/internal/storage/memory"
	"invoiceflow/internal/store"
)

func newInvoiceService() (service.InvoiceService, *memory.Store) {
	kv := memory.New()
	svc := service.NewInvoiceService(
		store.NewInvoices(kv),
		store.NewSettings(kv),
		sequence.New(kv, store.KeyLastInvoiceNumber),
	)
	return svc, kv
}

func TestInvoiceService_Save_RecomputesDerivedFields(t *testing.T) {
	svc, _ := newInvoiceService()

	saved, err := svc.Save(context.Background(), domain.Invoice{
		InvoiceNumber: "INV-0001",
		Client:        domain.Client{Name: "Acme"},
		Items: []domain.InvoiceItem{
			{Description: "Design work", Quantity: 10, UnitPrice: 50, Subtotal: 1},
			{Description: "Hosting", Quantity: 1, UnitPrice: 25},
		},
		TaxRate:       10,
		DiscountType:  domain.DiscountFixed,
		DiscountValue: 25,
		// stale aggregates supplied by the caller
		Subtotal: 9999, Total: -5,
	})

	require.NoError(t, err)
	assert.Equal(t, 500.0, saved.Items[0].Subtotal)
	assert.Equal(t, 25.0, saved.Items[1].Subtotal)
	assert.Equal(t, 525.0, saved.Subtotal)
	assert.Equal(t, 52.5, saved.TaxAmount)
	assert.Equal(t, 25.0, saved.DiscountAmount)
	assert.Equal(t, 552.5, saved.Total)
}

func TestInvoiceService_Save_AssignsIDsAndDefaults(t *testing.T) {
	svc, _ := newInvoiceService()

	saved, err := svc.Save(context.Background(), domain.Invoice{
		InvoiceNumber: "INV-0001",
		Client:        domain.Client{Name: "Acme"},
		Items:         []domain.InvoiceItem{{Description: "Work", Quantity: 1, UnitPrice: 10}},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.Items[0].ID)
	assert.Equal(t, domain.InvoiceStatusDraft, saved.Status)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestInvoiceService_Save_ValidationFailureNeverReachesStore(t *testing.T) {
	svc, _ := newInvoiceService()
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.Invoice{Client: domain.Client{Name: "Acme"}})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invoice_number", verr.Fields[0].Field)

	list, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, list, "rejected invoice must not be persisted")
}

func TestInvoiceService_Save_RejectsUnknownDiscountType(t *testing.T) {
	svc, _ := newInvoiceService()

	_, err := svc.Save(context.Background(), domain.Invoice{
		InvoiceNumber: "INV-0001",
		Client:        domain.Client{Name: "Acme"},
		DiscountType:  "bogus",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestInvoiceService_ClientSnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	clients := service.NewClientService(store.NewClients(kv))
	invoices := service.NewInvoiceService(
		store.NewInvoices(kv),
		store.NewSettings(kv),
		sequence.New(kv, store.KeyLastInvoiceNumber),
	)

	client, err := clients.Save(ctx, domain.Client{Name: "Acme", Email: "old@acme.test"})
	require.NoError(t, err)

	inv, err := invoices.Save(ctx, domain.Invoice{
		InvoiceNumber: "INV-0001",
		Client:        client,
	})
	require.NoError(t, err)

	// editing the client afterwards must not change the past invoice
	client.Email = "new@acme.test"
	_, err = clients.Save(ctx, client)
	require.NoError(t, err)

	got, err := invoices.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "old@acme.test", got.Client.Email)
}

func TestInvoiceService_NewNumber_UsesSettingsPrefix(t *testing.T) {
	svc, kv := newInvoiceService()
	ctx := context.Background()

	custom := domain.DefaultSettings()
	custom.InvoicePrefix = "ACME-"
	require.NoError(t, store.NewSettings(kv).Save(ctx, custom))

	first, err := svc.NewNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACME-0001", first)

	second, err := svc.NewNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACME-0002", second)
}

func TestInvoiceService_NewNumber_AdvancesEvenWhenDraftAbandoned(t *testing.T) {
	svc, _ := newInvoiceService()
	ctx := context.Background()

	_, err := svc.NewNumber(ctx)
	require.NoError(t, err)
	// no invoice saved with the first number

	next, err := svc.NewNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", next, "abandoned drafts leave numbering gaps")
}

func TestInvoiceService_Delete_AbsentIDIsNoOp(t *testing.T) {
	svc, _ := newInvoiceService()

	assert.NoError(t, svc.Delete(context.Background(), "missing"))
}
