package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// LoadSeed reads a JSON product list from path.
func LoadSeed(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return products, nil
}

// SeedStore loads the seed file into an empty store so a fresh deployment
// can answer queries before the first ingest event arrives. A non-empty
// store is left alone; restarts must not clobber ingested updates.
func SeedStore(ctx context.Context, store Store, path string) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check store: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	products, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}

	for _, p := range products {
		if err := store.Upsert(ctx, p); err != nil {
			return 0, fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	return len(products), nil
}
