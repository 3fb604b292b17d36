package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/shuttlehub/shopbot/internal/catalog"
	"github.com/shuttlehub/shopbot/internal/config"
	"github.com/shuttlehub/shopbot/internal/handlers"
	"github.com/shuttlehub/shopbot/internal/ingest"
	"github.com/shuttlehub/shopbot/internal/transport"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("Starting Shopbot Chat Service...")

	// Load configuration
	cfg := config.Load()
	log.Printf("Service: %s", cfg.ServiceName)
	log.Printf("HTTP address: %s", cfg.HTTPAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize catalog store
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize catalog store: %v", err)
	}
	defer store.Close()

	// Seed the catalog if configured and empty
	if cfg.CatalogSeedPath != "" {
		n, err := catalog.SeedStore(ctx, store, cfg.CatalogSeedPath)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		if n > 0 {
			log.Printf("Seeded catalog with %d products from %s", n, cfg.CatalogSeedPath)
		}
	}

	// Initialize chat handler
	chatHandler := handlers.NewChatHandler(store)
	log.Println("Chat handler initialized")

	// Start catalog ingest consumer in the background
	if cfg.KafkaEnabled {
		consumer := ingest.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, store)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Catalog consumer error: %v", err)
			}
		}()
	}

	// Initialize NATS transport for internal services
	var natsTransport *transport.NATSTransport
	if cfg.NatsEnabled {
		natsTransport, err = transport.NewNATSTransport(cfg, chatHandler)
		if err != nil {
			log.Fatalf("Failed to initialize NATS transport: %v", err)
		}
		defer natsTransport.Close()

		if err := natsTransport.Start(); err != nil {
			log.Fatalf("Failed to start NATS transport: %v", err)
		}
		log.Printf("Listening on subject: %s", cfg.NatsRequestSubject)
	}

	// Setup HTTP routes for the storefront widget
	r := mux.NewRouter()
	httpTransport := transport.NewHTTPTransport(chatHandler)
	httpTransport.RegisterRoutes(r)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		log.Println("Shutting down gracefully...")
		cancel()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("Shopbot Chat Service listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	log.Println("Shopbot Chat Service stopped")
}

// newStore picks the catalog backend: Redis when configured, in-memory
// otherwise (local development without dependencies).
func newStore(cfg *config.Config) (catalog.Store, error) {
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL empty, using in-memory catalog store")
		return catalog.NewMemoryStore(), nil
	}

	log.Printf("Connecting to Redis: %s", cfg.RedisURL)
	store, err := catalog.NewRedisStore(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	log.Println("Redis connected")
	return store, nil
}
