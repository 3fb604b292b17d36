package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// productsKey is the Redis hash holding the catalog read model,
// field = product ID, value = product JSON.
const productsKey = "catalog:products"

// RedisStore implements Store on top of a Redis hash kept in sync by the
// ingest consumer.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed catalog store.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	// Parse Redis URL
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Create Redis client
	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Find loads the catalog hash and filters in process. The catalog is small
// (a storefront's worth of products), so a full load per query is fine.
func (r *RedisStore) Find(ctx context.Context, pred func(Product) bool, opts FindOptions) ([]Product, error) {
	data, err := r.client.HGetAll(ctx, productsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from Redis: %w", err)
	}

	products := make([]Product, 0, len(data))
	for field, raw := range data {
		var p Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("failed to parse product %s: %w", field, err)
		}
		if pred == nil || pred(p) {
			products = append(products, p)
		}
	}

	// HGetAll order is unspecified; sort by ID so the store's native
	// order stays deterministic across calls.
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return applyOptions(products, opts), nil
}

// Upsert inserts or replaces a product in the catalog hash.
func (r *RedisStore) Upsert(ctx context.Context, p Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	if err := r.client.HSet(ctx, productsKey, p.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save product to Redis: %w", err)
	}

	return nil
}

// Delete removes a product from the catalog hash.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.HDel(ctx, productsKey, id).Err(); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// Count returns the number of products in the catalog hash.
func (r *RedisStore) Count(ctx context.Context) (int64, error) {
	n, err := r.client.HLen(ctx, productsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return n, nil
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Health check - verify Redis connection is alive
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
