package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/shuttlehub/shopbot/internal/catalog"
)

// Event operations published by the storefront backend.
const (
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// Event is a product change on the catalog topic.
type Event struct {
	Op      string           `json:"op"`
	ID      string           `json:"id,omitempty"`
	Product *catalog.Product `json:"product,omitempty"`
}

// Consumer keeps the catalog read model in sync with product events from
// the storefront backend.
type Consumer struct {
	reader *kafka.Reader
	store  catalog.Store
}

// NewConsumer creates a Kafka consumer for the catalog topic.
// segmentio/kafka-go: Reader provides consumer group functionality with
// automatic offset management.
func NewConsumer(brokers []string, topic, groupID string, store catalog.Store) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})

	return &Consumer{
		reader: reader,
		store:  store,
	}
}

// Run consumes until ctx is cancelled. Malformed events are logged and
// skipped; store errors are logged and the consumer moves on, since the
// next upsert of the same product heals the read model.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	log.Printf("Catalog consumer: consuming from %s", c.reader.Config().Topic)

	for {
		// segmentio/kafka-go: ReadMessage blocks until a message is
		// available and handles group coordination and offset commits.
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := c.Apply(ctx, msg.Value); err != nil {
			log.Printf("Catalog consumer: %v", err)
		}
	}
}

// Apply decodes one event and applies it to the store.
func (c *Consumer) Apply(ctx context.Context, data []byte) error {
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	switch evt.Op {
	case OpUpsert:
		if evt.Product == nil || evt.Product.ID == "" {
			return fmt.Errorf("upsert event without product")
		}
		if err := c.store.Upsert(ctx, *evt.Product); err != nil {
			return fmt.Errorf("failed to apply upsert for %s: %w", evt.Product.ID, err)
		}
	case OpDelete:
		if evt.ID == "" {
			return fmt.Errorf("delete event without id")
		}
		if err := c.store.Delete(ctx, evt.ID); err != nil {
			return fmt.Errorf("failed to apply delete for %s: %w", evt.ID, err)
		}
	default:
		return fmt.Errorf("unknown event op %q", evt.Op)
	}

	return nil
}
