// Package backup serializes the entire store into one JSON document
// and restores it. Import is tolerant of partial documents: only the
// keys present in the input are overwritten.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/port"
	"invoiceflow/internal/store"
)

// document is the export wire shape. On import the raw messages let a
// key be restored verbatim without re-interpreting its records.
type document struct {
	Invoices          json.RawMessage `json:"invoices,omitempty"`
	Clients           json.RawMessage `json:"clients,omitempty"`
	Products          json.RawMessage `json:"products,omitempty"`
	Settings          json.RawMessage `json:"settings,omitempty"`
	LastInvoiceNumber *int            `json:"lastInvoiceNumber,omitempty"`
}

// Codec exports and imports the full data set over the KV port.
type Codec struct {
	kv port.KVStore
}

// New creates a Codec over kv.
func New(kv port.KVStore) *Codec {
	return &Codec{kv: kv}
}

// Export returns one pretty-printed JSON document holding all four
// collections and the invoice counter. Absent collections export as
// empty arrays, absent settings as the defaults, an absent counter as 0.
func (c *Codec) Export(ctx context.Context) ([]byte, error) {
	out := map[string]any{}

	for name, key := range map[string]string{
		"invoices": store.KeyInvoices,
		"clients":  store.KeyClients,
		"products": store.KeyProducts,
	} {
		out[name] = c.readArray(ctx, key)
	}

	out["settings"] = c.readSettings(ctx)
	out["lastInvoiceNumber"] = c.readCounter(ctx)

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: encoding export: %w", err)
	}
	return raw, nil
}

// Import parses doc and overwrites each collection or counter whose
// key is present, leaving absent keys untouched. Malformed JSON
// returns domain.ErrImportParse with nothing mutated. Unknown extra
// keys are ignored.
func (c *Codec) Import(ctx context.Context, doc []byte) error {
	var parsed document
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("backup: %w", domain.ErrImportParse)
	}

	writes := []struct {
		key string
		raw json.RawMessage
	}{
		{store.KeyInvoices, parsed.Invoices},
		{store.KeyClients, parsed.Clients},
		{store.KeyProducts, parsed.Products},
		{store.KeySettings, parsed.Settings},
	}
	for _, w := range writes {
		if w.raw == nil {
			continue
		}
		if err := c.kv.Set(ctx, w.key, string(w.raw)); err != nil {
			return fmt.Errorf("backup: restoring %s: %w", w.key, domain.ErrStoreWrite)
		}
	}

	if parsed.LastInvoiceNumber != nil {
		value := strconv.Itoa(*parsed.LastInvoiceNumber)
		if err := c.kv.Set(ctx, store.KeyLastInvoiceNumber, value); err != nil {
			return fmt.Errorf("backup: restoring %s: %w", store.KeyLastInvoiceNumber, domain.ErrStoreWrite)
		}
	}

	return nil
}

// Clear removes every stored key: all collections, the settings record
// and the invoice counter.
func (c *Codec) Clear(ctx context.Context) error {
	for _, key := range store.AllKeys() {
		if err := c.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("backup: clearing %s: %w", key, domain.ErrStoreWrite)
		}
	}
	return nil
}

func (c *Codec) readArray(ctx context.Context, key string) json.RawMessage {
	raw, ok, err := c.kv.Get(ctx, key)
	if err != nil || !ok || !json.Valid([]byte(raw)) {
		if err != nil || (ok && !json.Valid([]byte(raw))) {
			log.Printf("WARN backup: %s unreadable, exporting as empty", key)
		}
		return json.RawMessage("[]")
	}
	return json.RawMessage(raw)
}

func (c *Codec) readSettings(ctx context.Context) json.RawMessage {
	raw, ok, err := c.kv.Get(ctx, store.KeySettings)
	if err == nil && ok && json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	if err != nil || ok {
		log.Printf("WARN backup: %s unreadable, exporting defaults", store.KeySettings)
	}
	defaults, _ := json.Marshal(domain.DefaultSettings())
	return defaults
}

func (c *Codec) readCounter(ctx context.Context) int {
	raw, ok, err := c.kv.Get(ctx, store.KeyLastInvoiceNumber)
	if err != nil || !ok {
		return 0
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		log.Printf("WARN backup: %s is not an integer, exporting 0", store.KeyLastInvoiceNumber)
		return 0
	}
	return n
}
