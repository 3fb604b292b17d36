package bot

import (
	"context"
	"log"
	"strings"

	"github.com/shuttlehub/shopbot/internal/catalog"
)

// QuerySpec is a conjunction of keyword groups. Each group is a disjunction
// of case-insensitive substring tests over the four product text fields;
// a product qualifies only if every group matches in at least one field.
type QuerySpec struct {
	Groups []string
}

// BuildQuery turns tokens into a QuerySpec. When tokenization yields nothing
// usable the raw query becomes a single group, so the matcher never runs an
// unconstrained query by accident.
func BuildQuery(tokens []string, raw string) QuerySpec {
	if len(tokens) == 0 {
		return QuerySpec{Groups: []string{strings.ToLower(strings.TrimSpace(raw))}}
	}

	groups := make([]string, len(tokens))
	copy(groups, tokens)
	return QuerySpec{Groups: groups}
}

// Match reports whether p satisfies every keyword group of the spec.
func (q QuerySpec) Match(p catalog.Product) bool {
	fields := [...]string{
		strings.ToLower(p.Name),
		strings.ToLower(p.Description),
		strings.ToLower(p.Category),
		strings.ToLower(p.SubCategory),
	}

	for _, group := range q.Groups {
		matched := false
		for _, f := range fields {
			if strings.Contains(f, group) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Matcher executes keyword queries against the catalog.
type Matcher struct {
	store catalog.Store
}

// NewMatcher creates a matcher bound to a catalog store.
func NewMatcher(store catalog.Store) *Matcher {
	return &Matcher{store: store}
}

// Search runs spec against the catalog. Catalog faults degrade to an empty
// result set: the user gets a "nothing found" reply, never a raw error.
func (m *Matcher) Search(ctx context.Context, spec QuerySpec, opts catalog.FindOptions) []catalog.Product {
	products, err := m.store.Find(ctx, spec.Match, opts)
	if err != nil {
		log.Printf("catalog query failed, returning no results: %v", err)
		return nil
	}
	return products
}
