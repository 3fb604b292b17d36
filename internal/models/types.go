package models

import "github.com/shuttlehub/shopbot/internal/catalog"

// ChatRequest is the inbound message envelope shared by the HTTP and NATS
// transports. SessionID is optional; transports fill in a UUID when empty.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" validate:"required"`
}

// ChatResponse is the reply envelope: the localized text plus the products
// to render. Products is never nil on the wire.
type ChatResponse struct {
	SessionID string            `json:"session_id,omitempty"`
	Intent    string            `json:"intent"`
	Text      string            `json:"text"`
	Products  []catalog.Product `json:"products"`
}

// APIResponse wraps a ChatResponse for the storefront HTTP API.
type APIResponse struct {
	Success  bool          `json:"success"`
	Response *ChatResponse `json:"response,omitempty"`
	Message  string        `json:"message,omitempty"`
}
