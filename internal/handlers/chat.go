package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/shuttlehub/shopbot/internal/bot"
	"github.com/shuttlehub/shopbot/internal/catalog"
	"github.com/shuttlehub/shopbot/internal/models"
)

// resultCap bounds the product list for the non-exhaustive intents
// (bestseller, price). Brand, playstyle and general search are uncapped.
const resultCap = 5

// ChatHandler wires the classifier, keyword matcher and composer into the
// single entry point the transports call. It holds no per-request state.
type ChatHandler struct {
	classifier *bot.Classifier
	matcher    *bot.Matcher
	store      catalog.Store
}

// NewChatHandler creates a handler bound to a catalog store.
func NewChatHandler(store catalog.Store) *ChatHandler {
	return &ChatHandler{
		classifier: bot.NewClassifier(),
		matcher:    bot.NewMatcher(store),
		store:      store,
	}
}

// HandleMessage never fails: catalog faults and malformed input both degrade
// to a well-formed response with an empty product list.
func (h *ChatHandler) HandleMessage(ctx context.Context, request *models.ChatRequest) *models.ChatResponse {
	message := strings.TrimSpace(request.Message)
	cls := h.classifier.Classify(message)

	var products []catalog.Product
	switch cls.Intent {
	case bot.IntentGreeting, bot.IntentClarify:
		// Static replies, no catalog query.

	case bot.IntentBestseller:
		products = h.find(ctx,
			func(p catalog.Product) bool { return p.Bestseller },
			catalog.FindOptions{Limit: resultCap})

	case bot.IntentBrand:
		// The brand name itself is the single keyword group, matched
		// across all four text fields. Uncapped.
		spec := bot.BuildQuery(nil, cls.Param)
		products = h.matcher.Search(ctx, spec, catalog.FindOptions{})

	case bot.IntentPlaystyle:
		spec := bot.BuildQuery(bot.Tokenize(cls.Param), cls.Param)
		products = h.matcher.Search(ctx, spec, catalog.FindOptions{})

	case bot.IntentPrice:
		// No numeric threshold parsing: always the 5 cheapest items.
		products = h.find(ctx, nil,
			catalog.FindOptions{SortByPriceAsc: true, Limit: resultCap})

	default:
		if message == "" {
			break
		}
		spec := bot.BuildQuery(bot.Tokenize(message), message)
		products = h.matcher.Search(ctx, spec, catalog.FindOptions{})
	}

	reply := bot.Compose(cls, products)

	response := &models.ChatResponse{
		SessionID: request.SessionID,
		Intent:    string(cls.Intent),
		Text:      reply.Text,
		Products:  reply.Products,
	}
	if response.Products == nil {
		response.Products = []catalog.Product{}
	}

	log.Printf("Message handled for session %s: intent=%s, results=%d",
		request.SessionID, cls.Intent, len(response.Products))

	return response
}

// find queries the store directly with the matcher's fault policy: a catalog
// error is logged and reported as no results.
func (h *ChatHandler) find(ctx context.Context, pred func(catalog.Product) bool, opts catalog.FindOptions) []catalog.Product {
	products, err := h.store.Find(ctx, pred, opts)
	if err != nil {
		log.Printf("catalog query failed, returning no results: %v", err)
		return nil
	}
	return products
}
