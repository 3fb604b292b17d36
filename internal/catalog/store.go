package catalog

import (
	"context"
	"sort"
)

// FindOptions narrows a Find call.
type FindOptions struct {
	// SortByPriceAsc orders results by ascending price before the limit
	// is applied.
	SortByPriceAsc bool
	// Limit caps the number of results. Zero or negative means unbounded.
	Limit int
}

// Store defines the interface for catalog access.
// This allows us to swap between Redis, in-memory, etc.
type Store interface {
	// Find returns all products matching pred, in the store's native
	// order unless opts says otherwise. A nil pred matches everything.
	Find(ctx context.Context, pred func(Product) bool, opts FindOptions) ([]Product, error)

	// Upsert inserts or replaces a product by ID.
	Upsert(ctx context.Context, p Product) error

	// Delete removes a product by ID. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Count returns the number of products in the store.
	Count(ctx context.Context) (int64, error)

	// Close releases the store's resources.
	Close() error
}

// applyOptions sorts and caps an already-filtered result set.
func applyOptions(products []Product, opts FindOptions) []Product {
	if opts.SortByPriceAsc {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	}
	if opts.Limit > 0 && len(products) > opts.Limit {
		products = products[:opts.Limit]
	}
	return products
}
