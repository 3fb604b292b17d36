package transport

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shuttlehub/shopbot/internal/handlers"
	"github.com/shuttlehub/shopbot/internal/models"
)

// go-playground/validator/v10: struct validator for inbound chat payloads.
var validate = validator.New()

// HTTPTransport serves the storefront widget API.
type HTTPTransport struct {
	handler *handlers.ChatHandler
}

func NewHTTPTransport(handler *handlers.ChatHandler) *HTTPTransport {
	return &HTTPTransport{handler: handler}
}

// RegisterRoutes wires the chat API routes.
// gorilla/mux: Router provides method-based routing and URL pattern matching.
func (t *HTTPTransport) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", t.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/chatbot/chat", t.chatHandler).Methods(http.MethodPost)
}

func (t *HTTPTransport) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// chatHandler is the storefront widget's entry point. Transport errors are
// the only failures surfaced here; the chat handler itself never fails.
func (t *HTTPTransport) chatHandler(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "invalid JSON body",
		})
		return
	}

	// go-playground/validator/v10: checks required fields via struct tags.
	if err := validate.Struct(request); err != nil {
		writeJSON(w, http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "message is required",
		})
		return
	}

	if request.SessionID == "" {
		request.SessionID = uuid.NewString()
	}

	response := t.handler.HandleMessage(r.Context(), &request)
	writeJSON(w, http.StatusOK, models.APIResponse{
		Success:  true,
		Response: response,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
