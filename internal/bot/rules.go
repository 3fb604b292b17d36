package bot

import "strings"

// Pattern is a pure predicate over lowercased message text. Substring sets,
// compiled regexps, or locale-aware matchers all fit behind it.
type Pattern func(text string) bool

func containsAny(keywords ...string) Pattern {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

func hasPrefixAny(prefixes ...string) Pattern {
	return func(text string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(text, p) {
				return true
			}
		}
		return false
	}
}

func anyOf(patterns ...Pattern) Pattern {
	return func(text string) bool {
		for _, p := range patterns {
			if p(text) {
				return true
			}
		}
		return false
	}
}

// Entry pairs a canonical label with its localized spelling variants.
// Table order matters: the first entry with a matching variant wins.
type Entry struct {
	Label    string
	Variants []string
}

var brandTable = []Entry{
	{Label: "Yonex", Variants: []string{"yonex", "yy"}},
	{Label: "Lining", Variants: []string{"lining", "li-ning", "li ning"}},
	{Label: "Victor", Variants: []string{"victor"}},
	{Label: "Mizuno", Variants: []string{"mizuno"}},
	{Label: "Apacs", Variants: []string{"apacs"}},
	{Label: "Kumpoo", Variants: []string{"kumpoo"}},
	{Label: "Forza", Variants: []string{"forza"}},
	{Label: "Proace", Variants: []string{"proace", "pro ace"}},
}

var playstyleTable = []Entry{
	{Label: "tấn công", Variants: []string{"tấn công", "tan cong", "đập cầu", "smash", "attack"}},
	{Label: "phòng thủ", Variants: []string{"phòng thủ", "phong thu", "defense", "thủ"}},
	{Label: "công thủ toàn diện", Variants: []string{"công thủ toàn diện", "toàn diện", "cân bằng", "can bang", "balanced", "all round"}},
	{Label: "người mới chơi", Variants: []string{"người mới", "nguoi moi", "mới chơi", "moi choi", "beginner", "tập chơi"}},
}

var (
	greetingPrefixes   = []string{"hi", "hello", "hey", "chào", "xin chào", "alo"}
	bestsellerKeywords = []string{"bestseller", "bán chạy", "phổ biến", "nổi bật", "hot"}
	racketKeywords     = []string{"vợt", "racket", "racquet"}
	priceKeywords      = []string{"rẻ", "giá rẻ", "gia re", "giá tốt", "cheap", "dưới"}
)

// matchEntry returns the first table entry whose variant occurs in text.
func matchEntry(table []Entry, text string) (Entry, bool) {
	for _, e := range table {
		for _, v := range e.Variants {
			if strings.Contains(text, v) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

func tableMatcher(table []Entry) Pattern {
	return func(text string) bool {
		_, ok := matchEntry(table, text)
		return ok
	}
}

func tableLabel(table []Entry) func(text string) string {
	return func(text string) string {
		e, _ := matchEntry(table, text)
		return e.Label
	}
}

// BrandLabels lists the canonical brand names in table order.
func BrandLabels() []string {
	labels := make([]string, len(brandTable))
	for i, e := range brandTable {
		labels[i] = e.Label
	}
	return labels
}

// PlaystyleLabels lists the playstyle names in table order.
func PlaystyleLabels() []string {
	labels := make([]string, len(playstyleTable))
	for i, e := range playstyleTable {
		labels[i] = e.Label
	}
	return labels
}
