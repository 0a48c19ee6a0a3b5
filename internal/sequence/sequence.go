// Package sequence issues sequential invoice numbers backed by a
// persisted counter. The counter is monotonic and non-reusable: it is
// never decremented, and advances even when the resulting draft is
// abandoned, so gaps in issued numbers are expected.
package sequence

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/port"
)

// Generator produces the next invoice number from a counter persisted
// in the key-value store. The mutex serializes the read-modify-write
// step across goroutines; the storage itself offers no compare-and-swap.
type Generator struct {
	mu  sync.Mutex
	kv  port.KVStore
	key string
}

// New creates a Generator persisting its counter under key.
func New(kv port.KVStore, key string) *Generator {
	return &Generator{kv: kv, key: key}
}

// Next increments the persisted counter by one and returns the new
// value. An absent or unreadable counter starts from 0. The counter is
// only advanced once the new value has been persisted.
func (g *Generator) Next(ctx context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	last := 0
	raw, ok, err := g.kv.Get(ctx, g.key)
	if err != nil {
		return 0, fmt.Errorf("sequence: reading counter: %w", err)
	}
	if ok {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			log.Printf("WARN sequence: counter %q is not an integer (%q), restarting from 0", g.key, raw)
		} else {
			last = n
		}
	}

	next := last + 1
	if err := g.kv.Set(ctx, g.key, strconv.Itoa(next)); err != nil {
		return 0, fmt.Errorf("sequence: persisting counter: %w", domain.ErrStoreWrite)
	}
	return next, nil
}

// Format renders an invoice number as prefix plus the number
// zero-padded to at least 4 digits. Padding never truncates.
func Format(prefix string, number int) string {
	return fmt.Sprintf("%s%04d", prefix, number)
}
