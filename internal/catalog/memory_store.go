package catalog

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process map. It backs tests and
// local runs without Redis; insertion order is the store's native order.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]Product
	order    []string
}

// NewMemoryStore creates an empty in-memory catalog store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]Product),
	}
}

// Find returns matching products in insertion order.
func (m *MemoryStore) Find(ctx context.Context, pred func(Product) bool, opts FindOptions) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]Product, 0, len(m.order))
	for _, id := range m.order {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if pred == nil || pred(p) {
			products = append(products, p)
		}
	}

	return applyOptions(products, opts), nil
}

// Upsert inserts or replaces a product by ID.
func (m *MemoryStore) Upsert(ctx context.Context, p Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.products[p.ID] = p

	return nil
}

// Delete removes a product by ID.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; !exists {
		return nil
	}
	delete(m.products, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return nil
}

// Count returns the number of stored products.
func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.products)), nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
