// Package store implements the record store: generic get-all, upsert
// and delete over collections serialized as JSON arrays in the
// key-value store, plus the singleton settings record. Corrupt stored
// data degrades to an empty collection with a logged warning instead
// of failing, so storage corruption never crashes the caller.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/port"
)

// Collection is a record store over one storage key. Every call
// deserializes from storage, so returned slices are independent
// snapshots: mutating them does not affect the store.
type Collection[T any] struct {
	kv    port.KVStore
	key   string
	id    func(*T) string
	touch func(*T)
}

// NewInvoices creates the invoice collection. Saving always overwrites
// UpdatedAt with the current UTC time, regardless of the caller value.
func NewInvoices(kv port.KVStore) *Collection[domain.Invoice] {
	return &Collection[domain.Invoice]{
		kv:    kv,
		key:   KeyInvoices,
		id:    func(inv *domain.Invoice) string { return inv.ID },
		touch: func(inv *domain.Invoice) { inv.UpdatedAt = time.Now().UTC() },
	}
}

// NewClients creates the client collection.
func NewClients(kv port.KVStore) *Collection[domain.Client] {
	return &Collection[domain.Client]{
		kv:  kv,
		key: KeyClients,
		id:  func(c *domain.Client) string { return c.ID },
	}
}

// NewProducts creates the product collection.
func NewProducts(kv port.KVStore) *Collection[domain.Product] {
	return &Collection[domain.Product]{
		kv:  kv,
		key: KeyProducts,
		id:  func(p *domain.Product) string { return p.ID },
	}
}

// GetAll returns a snapshot of every record. An absent key or
// unreadable stored value yields an empty slice; the latter is logged.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", c.key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("WARN store: %s holds unreadable data, treating as empty: %v", c.key, err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// GetByID returns the record with the given id, or domain.ErrNotFound.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	records, err := c.GetAll(ctx)
	if err != nil {
		return zero, err
	}
	for i := range records {
		if c.id(&records[i]) == id {
			return records[i], nil
		}
	}
	return zero, domain.ErrNotFound
}

// Save upserts rec by id: an existing record is replaced in place,
// preserving its position; otherwise rec is appended. The stored
// record is returned, reflecting any touch applied at save time.
func (c *Collection[T]) Save(ctx context.Context, rec T) (T, error) {
	var zero T
	records, err := c.GetAll(ctx)
	if err != nil {
		return zero, err
	}

	if c.touch != nil {
		c.touch(&rec)
	}

	replaced := false
	for i := range records {
		if c.id(&records[i]) == c.id(&rec) {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	if err := c.write(ctx, records); err != nil {
		return zero, err
	}
	return rec, nil
}

// DeleteByID removes the record with the given id. Deleting an absent
// id is a no-op, not an error, and skips the storage write entirely.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	records, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for i := range records {
		if c.id(&records[i]) != id {
			kept = append(kept, records[i])
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return c.write(ctx, kept)
}

func (c *Collection[T]) write(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(raw)); err != nil {
		log.Printf("ERROR store: writing %s: %v", c.key, err)
		return fmt.Errorf("store: writing %s: %w", c.key, domain.ErrStoreWrite)
	}
	return nil
}
