package backup_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceflow/internal/backup"
	"invoiceflow/internal/domain"
	"invoiceflow/internal/sequence"
	"invoiceflow/internal/storage/memory"
	"invoiceflow/internal/store"
)

func seedData(t *testing.T, kv *memory.Store) {
	t.Helper()
	ctx := context.Background()

	clients := store.NewClients(kv)
	_, err := clients.Save(ctx, domain.Client{
		ID: "c1", Name: "Acme", Email: "billing@acme.test",
		Address: domain.Address{City: "Karachi", Country: "Pakistan"},
	})
	require.NoError(t, err)

	products := store.NewProducts(kv)
	_, err = products.Save(ctx, domain.Product{ID: "p1", Name: "Widget", Price: 12.5, Category: "Hardware"})
	require.NoError(t, err)

	invoices := store.NewInvoices(kv)
	_, err = invoices.Save(ctx, domain.Invoice{
		ID: "inv1", InvoiceNumber: "INV-0001", Currency: "PKR",
		Items:  []domain.InvoiceItem{{ID: "i1", Description: "Widget", Quantity: 2, UnitPrice: 12.5, Subtotal: 25}},
		Status: domain.InvoiceStatusDraft,
	})
	require.NoError(t, err)

	settings := domain.DefaultSettings()
	settings.Company.Name = "Seeded Co"
	require.NoError(t, store.NewSettings(kv).Save(ctx, settings))

	gen := sequence.New(kv, store.KeyLastInvoiceNumber)
	_, err = gen.Next(ctx)
	require.NoError(t, err)
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := memory.New()
	seedData(t, src)

	doc, err := backup.New(src).Export(ctx)
	require.NoError(t, err)

	dst := memory.New()
	require.NoError(t, backup.New(dst).Import(ctx, doc))

	srcInvoices, err := store.NewInvoices(src).GetAll(ctx)
	require.NoError(t, err)
	dstInvoices, err := store.NewInvoices(dst).GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcInvoices, dstInvoices)

	srcClients, err := store.NewClients(src).GetAll(ctx)
	require.NoError(t, err)
	dstClients, err := store.NewClients(dst).GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcClients, dstClients)

	srcProducts, err := store.NewProducts(src).GetAll(ctx)
	require.NoError(t, err)
	dstProducts, err := store.NewProducts(dst).GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcProducts, dstProducts)

	srcSettings, err := store.NewSettings(src).Get(ctx)
	require.NoError(t, err)
	dstSettings, err := store.NewSettings(dst).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcSettings, dstSettings)

	// counter continues from the imported value
	n, err := sequence.New(dst, store.KeyLastInvoiceNumber).Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestExport_EmptyStore(t *testing.T) {
	doc, err := backup.New(memory.New()).Export(context.Background())
	require.NoError(t, err)

	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &parsed))
	assert.JSONEq(t, "[]", string(parsed["invoices"]))
	assert.JSONEq(t, "[]", string(parsed["clients"]))
	assert.JSONEq(t, "[]", string(parsed["products"]))
	assert.JSONEq(t, "0", string(parsed["lastInvoiceNumber"]))

	var settings domain.Settings
	require.NoError(t, json.Unmarshal(parsed["settings"], &settings))
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestImport_MalformedJSONLeavesDataUntouched(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	seedData(t, kv)

	err := backup.New(kv).Import(ctx, []byte("{truncated"))

	assert.ErrorIs(t, err, domain.ErrImportParse)
	clients, getErr := store.NewClients(kv).GetAll(ctx)
	require.NoError(t, getErr)
	assert.Len(t, clients, 1, "existing data must survive a failed import")
}

func TestImport_PartialDocumentOnlyOverwritesPresentKeys(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	seedData(t, kv)

	newSettings := domain.DefaultSettings()
	newSettings.Company.Name = "Imported Co"
	raw, err := json.Marshal(map[string]any{"settings": newSettings})
	require.NoError(t, err)

	require.NoError(t, backup.New(kv).Import(ctx, raw))

	settings, err := store.NewSettings(kv).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Imported Co", settings.Company.Name)

	invoices, err := store.NewInvoices(kv).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 1, "invoices must be untouched by a settings-only import")
}

func TestImport_IgnoresUnknownKeys(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	require.NoError(t, backup.New(kv).Import(ctx, []byte(`{"future_field": 1, "clients": []}`)))

	clients, err := store.NewClients(kv).GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestClear_RemovesEverything(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	seedData(t, kv)

	require.NoError(t, backup.New(kv).Clear(ctx))

	clients, err := store.NewClients(kv).GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	settings, err := store.NewSettings(kv).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	n, err := sequence.New(kv, store.KeyLastInvoiceNumber).Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "counter restarts after a full clear")
}
