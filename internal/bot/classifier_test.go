package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name       string
		message    string
		wantIntent Intent
		wantParam  string
	}{
		{"greeting english", "hello", IntentGreeting, ""},
		{"greeting vietnamese", "xin chào shop", IntentGreeting, ""},
		{"greeting wins over every other rule", "hello, cho mình xem vợt yonex bán chạy", IntentGreeting, ""},
		{"bestseller synonym", "sản phẩm nào bán chạy nhất", IntentBestseller, ""},
		{"bestseller english", "show me the bestseller", IntentBestseller, ""},
		{"bare racket mention asks for clarification", "vợt", IntentClarify, ""},
		{"racket with no specifics asks for clarification", "mình muốn mua vợt", IntentClarify, ""},
		{"racket plus brand is a brand query", "vợt yonex", IntentBrand, "Yonex"},
		{"racket plus playstyle is a playstyle query", "vợt tấn công", IntentPlaystyle, "tấn công"},
		{"brand without racket term", "có lining không", IntentBrand, "Lining"},
		{"brand variant spelling", "li-ning", IntentBrand, "Lining"},
		{"first brand in table order wins", "vợt victor hay yonex", IntentBrand, "Yonex"},
		{"playstyle synonym", "mình thích smash", IntentPlaystyle, "tấn công"},
		{"playstyle beginner", "vợt cho người mới", IntentPlaystyle, "người mới chơi"},
		{"cheap synonym", "rẻ", IntentPrice, ""},
		{"cheap with threshold still ignores the number", "cheap, dưới 500000", IntentPrice, ""},
		{"fallback to general search", "túi đựng giày", IntentSearch, ""},
		{"empty message falls through to search", "", IntentSearch, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.Equal(t, tt.wantParam, got.Param)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()

	messages := []string{"hello", "vợt", "vợt yonex", "bán chạy", "rẻ", "túi cầu lông", ""}
	for _, msg := range messages {
		first := c.Classify(msg)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, c.Classify(msg), "message %q", msg)
		}
	}
}

// Rule 3 must check brand and playstyle membership without firing their
// queries: the clarification intent never wins when either would match.
func TestClarifySuppression(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, IntentClarify, c.Classify("vợt cầu lông").Intent)
	assert.Equal(t, IntentBrand, c.Classify("vợt cầu lông yonex").Intent)
	assert.Equal(t, IntentPlaystyle, c.Classify("vợt cầu lông phòng thủ").Intent)
}
