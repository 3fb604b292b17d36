package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/shuttlehub/shopbot/internal/catalog"
	"github.com/shuttlehub/shopbot/internal/config"
	"github.com/shuttlehub/shopbot/internal/handlers"
	"github.com/shuttlehub/shopbot/internal/models"
)

// fallbackText mirrors the storefront widget's own transport-error message.
const fallbackText = "Xin lỗi, có lỗi xảy ra. Vui lòng thử lại."

// NATSTransport exposes the chat handler over request/reply for internal
// services that talk NATS instead of HTTP.
type NATSTransport struct {
	conn    *nats.Conn
	config  *config.Config
	handler *handlers.ChatHandler
}

func NewNATSTransport(cfg *config.Config, handler *handlers.ChatHandler) (*NATSTransport, error) {
	// Connect to NATS
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1), // Infinite reconnects
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Printf("Connected to NATS server: %s", cfg.NatsURL)

	return &NATSTransport{
		conn:    conn,
		config:  cfg,
		handler: handler,
	}, nil
}

func (nt *NATSTransport) Start() error {
	// Subscribe to chat message requests
	_, err := nt.conn.Subscribe(nt.config.NatsRequestSubject, nt.handleChatRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsRequestSubject, err)
	}

	log.Printf("Subscribed to subject: %s", nt.config.NatsRequestSubject)
	return nil
}

func (nt *NATSTransport) handleChatRequest(msg *nats.Msg) {
	// Parse the request
	var request models.ChatRequest
	if err := json.Unmarshal(msg.Data, &request); err != nil {
		log.Printf("Error parsing request: %v", err)
		nt.sendFallbackResponse(msg, &request)
		return
	}

	if request.SessionID == "" {
		request.SessionID = uuid.NewString()
	}

	log.Printf("Processing chat request for session: %s", request.SessionID)

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), nt.config.RequestTimeout)
	defer cancel()

	// Call the handler (never fails; catalog faults degrade to empty results)
	response := nt.handler.HandleMessage(ctx, &request)

	// Send response
	if err := nt.sendResponse(msg, response); err != nil {
		log.Printf("Error sending response: %v", err)
	}
}

func (nt *NATSTransport) sendResponse(msg *nats.Msg, response *models.ChatResponse) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := msg.Respond(responseData); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Printf("Response sent for session: %s, intent: %s", response.SessionID, response.Intent)
	return nil
}

func (nt *NATSTransport) sendFallbackResponse(msg *nats.Msg, request *models.ChatRequest) {
	response := &models.ChatResponse{
		SessionID: request.SessionID,
		Text:      fallbackText,
		Products:  []catalog.Product{},
	}

	if err := nt.sendResponse(msg, response); err != nil {
		log.Printf("Failed to send fallback response: %v", err)
	}
}

func (nt *NATSTransport) Close() error {
	if nt.conn != nil {
		nt.conn.Close()
		log.Println("NATS connection closed")
	}
	return nil
}
