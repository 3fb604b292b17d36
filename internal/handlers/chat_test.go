package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuttlehub/shopbot/internal/bot"
	"github.com/shuttlehub/shopbot/internal/catalog"
	"github.com/shuttlehub/shopbot/internal/models"
)

func seedStore(t *testing.T, products ...catalog.Product) *catalog.MemoryStore {
	t.Helper()
	store := catalog.NewMemoryStore()
	for _, p := range products {
		require.NoError(t, store.Upsert(context.Background(), p))
	}
	return store
}

func handle(h *ChatHandler, message string) *models.ChatResponse {
	return h.HandleMessage(context.Background(), &models.ChatRequest{
		SessionID: "test-session",
		Message:   message,
	})
}

func TestHandleMessageGreeting(t *testing.T) {
	h := NewChatHandler(seedStore(t))

	resp := handle(h, "hello")

	assert.Equal(t, string(bot.IntentGreeting), resp.Intent)
	assert.Equal(t, bot.GreetingText, resp.Text)
	assert.Equal(t, []catalog.Product{}, resp.Products)
}

func TestHandleMessageBrandNothingFound(t *testing.T) {
	h := NewChatHandler(seedStore(t,
		catalog.Product{ID: "1", Name: "Vợt Lining Axforce", Category: "Vợt cầu lông"},
	))

	resp := handle(h, "yonex")

	assert.Equal(t, string(bot.IntentBrand), resp.Intent)
	assert.Equal(t, "Hiện chưa có sản phẩm Yonex.", resp.Text)
	assert.Empty(t, resp.Products)
}

func TestHandleMessageBrandMatchesAllTextFields(t *testing.T) {
	h := NewChatHandler(seedStore(t,
		catalog.Product{ID: "1", Name: "Astrox 99 Pro", SubCategory: "Yonex"},
		catalog.Product{ID: "2", Name: "Vợt Yonex Nanoflare"},
		catalog.Product{ID: "3", Name: "Vợt Victor Thruster"},
		catalog.Product{ID: "4", Description: "Dòng vợt Yonex cao cấp"},
	))

	resp := handle(h, "vợt yonex")

	assert.Equal(t, string(bot.IntentBrand), resp.Intent)
	require.Len(t, resp.Products, 3)
	assert.Equal(t, "Tôi tìm thấy 3 sản phẩm Yonex:", resp.Text)
}

func TestHandleMessageClarify(t *testing.T) {
	h := NewChatHandler(seedStore(t,
		catalog.Product{ID: "1", Name: "Vợt Yonex Astrox"},
	))

	resp := handle(h, "vợt")

	assert.Equal(t, string(bot.IntentClarify), resp.Intent)
	assert.Contains(t, resp.Text, "Yonex")
	assert.Empty(t, resp.Products, "clarification must not dump the catalog")
}

func TestHandleMessagePriceReturnsFiveCheapestAscending(t *testing.T) {
	store := catalog.NewMemoryStore()
	for i := 10; i >= 1; i-- {
		require.NoError(t, store.Upsert(context.Background(), catalog.Product{
			ID:    fmt.Sprintf("p%02d", i),
			Name:  fmt.Sprintf("Vợt %d", i),
			Price: int64(i * 100000),
		}))
	}
	h := NewChatHandler(store)

	resp := handle(h, "rẻ")

	assert.Equal(t, string(bot.IntentPrice), resp.Intent)
	require.Len(t, resp.Products, 5)
	for i, p := range resp.Products {
		assert.Equal(t, int64((i+1)*100000), p.Price)
	}
}

func TestHandleMessageBestsellerCappedAtFive(t *testing.T) {
	store := catalog.NewMemoryStore()
	for i := 1; i <= 7; i++ {
		require.NoError(t, store.Upsert(context.Background(), catalog.Product{
			ID:         fmt.Sprintf("b%d", i),
			Name:       fmt.Sprintf("Vợt bán chạy %d", i),
			Bestseller: true,
		}))
	}
	require.NoError(t, store.Upsert(context.Background(), catalog.Product{ID: "x", Name: "Vợt thường"}))
	h := NewChatHandler(store)

	resp := handle(h, "bán chạy")

	assert.Equal(t, string(bot.IntentBestseller), resp.Intent)
	assert.Len(t, resp.Products, 5)
	for _, p := range resp.Products {
		assert.True(t, p.Bestseller)
	}
}

func TestHandleMessageBrandUncapped(t *testing.T) {
	store := catalog.NewMemoryStore()
	for i := 1; i <= 8; i++ {
		require.NoError(t, store.Upsert(context.Background(), catalog.Product{
			ID:   fmt.Sprintf("y%d", i),
			Name: fmt.Sprintf("Vợt Yonex %d", i),
		}))
	}
	h := NewChatHandler(store)

	resp := handle(h, "yonex")

	assert.Len(t, resp.Products, 8)
}

func TestHandleMessagePlaystyle(t *testing.T) {
	h := NewChatHandler(seedStore(t,
		catalog.Product{ID: "1", Name: "Astrox 99", Description: "Vợt tấn công đầu nặng"},
		catalog.Product{ID: "2", Name: "Nanoflare 800", Description: "Vợt phòng thủ linh hoạt"},
	))

	resp := handle(h, "vợt tấn công")

	assert.Equal(t, string(bot.IntentPlaystyle), resp.Intent)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "1", resp.Products[0].ID)
	assert.Equal(t, "Đây là 1 vợt phù hợp lối chơi tấn công:", resp.Text)
}

func TestHandleMessageGeneralSearch(t *testing.T) {
	h := NewChatHandler(seedStore(t,
		catalog.Product{ID: "1", Name: "Túi vợt Yonex", Category: "Phụ kiện"},
		catalog.Product{ID: "2", Name: "Giày cầu lông", Category: "Giày"},
	))

	resp := handle(h, "túi đựng")

	assert.Equal(t, string(bot.IntentSearch), resp.Intent)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "1", resp.Products[0].ID)
}

func TestHandleMessageEmptyMessage(t *testing.T) {
	h := NewChatHandler(seedStore(t,
		catalog.Product{ID: "1", Name: "Vợt Yonex"},
	))

	resp := handle(h, "")

	assert.Equal(t, string(bot.IntentSearch), resp.Intent)
	assert.Equal(t, "Hiện chưa có sản phẩm phù hợp với yêu cầu của bạn.", resp.Text)
	assert.Equal(t, []catalog.Product{}, resp.Products)
}

type faultyStore struct{}

func (faultyStore) Find(ctx context.Context, pred func(catalog.Product) bool, opts catalog.FindOptions) ([]catalog.Product, error) {
	return nil, errors.New("catalog unavailable")
}
func (faultyStore) Upsert(ctx context.Context, p catalog.Product) error { return errors.New("catalog unavailable") }
func (faultyStore) Delete(ctx context.Context, id string) error        { return errors.New("catalog unavailable") }
func (faultyStore) Count(ctx context.Context) (int64, error)           { return 0, errors.New("catalog unavailable") }
func (faultyStore) Close() error                                       { return nil }

// A catalog fault must never escape HandleMessage: every intent that queries
// the store falls back to its "nothing found" reply.
func TestHandleMessageCatalogFault(t *testing.T) {
	h := NewChatHandler(faultyStore{})

	tests := []struct {
		message  string
		wantText string
	}{
		{"bán chạy", "Hiện chưa có sản phẩm bán chạy."},
		{"yonex", "Hiện chưa có sản phẩm Yonex."},
		{"rẻ", "Hiện chưa có sản phẩm."},
		{"cước căng cầu lông", "Hiện chưa có sản phẩm phù hợp với yêu cầu của bạn."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			resp := handle(h, tt.message)
			assert.Equal(t, tt.wantText, resp.Text)
			assert.Equal(t, []catalog.Product{}, resp.Products)
		})
	}
}
