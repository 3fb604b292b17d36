package bot

import (
	"fmt"
	"strings"

	"github.com/shuttlehub/shopbot/internal/catalog"
)

// Reply is the composed user-facing message plus the products to render.
type Reply struct {
	Text     string
	Products []catalog.Product
}

// GreetingText is the fixed greeting reply, also used by the storefront
// widget as its opening message.
const GreetingText = "Xin chào! Tôi có thể giúp bạn tìm sản phẩm. Bạn đang tìm gì?"

// Compose picks the localized reply template for the classified intent,
// branching on whether the query found anything. Products pass through
// unchanged; capping happens before composition. Pure function.
func Compose(cls Classification, products []catalog.Product) Reply {
	switch cls.Intent {
	case IntentGreeting:
		return Reply{Text: GreetingText}

	case IntentBestseller:
		if len(products) == 0 {
			return Reply{Text: "Hiện chưa có sản phẩm bán chạy."}
		}
		return Reply{
			Text:     fmt.Sprintf("Đây là %d sản phẩm bán chạy nhất:", len(products)),
			Products: products,
		}

	case IntentClarify:
		return Reply{Text: fmt.Sprintf(
			"Bạn muốn tìm vợt như thế nào? Shop hiện có các thương hiệu: %s. Hoặc bạn có thể tìm theo lối chơi: %s.",
			strings.Join(BrandLabels(), ", "),
			strings.Join(PlaystyleLabels(), ", "),
		)}

	case IntentBrand:
		if len(products) == 0 {
			return Reply{Text: fmt.Sprintf("Hiện chưa có sản phẩm %s.", cls.Param)}
		}
		return Reply{
			Text:     fmt.Sprintf("Tôi tìm thấy %d sản phẩm %s:", len(products), cls.Param),
			Products: products,
		}

	case IntentPlaystyle:
		if len(products) == 0 {
			return Reply{Text: fmt.Sprintf("Hiện chưa có vợt phù hợp lối chơi %s.", cls.Param)}
		}
		return Reply{
			Text:     fmt.Sprintf("Đây là %d vợt phù hợp lối chơi %s:", len(products), cls.Param),
			Products: products,
		}

	case IntentPrice:
		if len(products) == 0 {
			return Reply{Text: "Hiện chưa có sản phẩm."}
		}
		return Reply{
			Text:     "Đây là các sản phẩm có giá tốt nhất:",
			Products: products,
		}

	default:
		if len(products) == 0 {
			return Reply{Text: "Hiện chưa có sản phẩm phù hợp với yêu cầu của bạn."}
		}
		return Reply{
			Text:     fmt.Sprintf("Tôi tìm thấy %d sản phẩm phù hợp:", len(products)),
			Products: products,
		}
	}
}
