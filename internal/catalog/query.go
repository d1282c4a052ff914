package catalog

import (
	"strings"

	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

const (
	defaultLimit = 12
	maxLimit     = 100
)

// normalize clamps the requested page and limit.
func normalize(q *domain.ProductQuery, defLimit, capLimit int) (page, limit int) {
	if defLimit <= 0 {
		defLimit = defaultLimit
	}
	if capLimit <= 0 {
		capLimit = maxLimit
	}

	limit = q.Limit
	if limit <= 0 {
		limit = defLimit
	}
	if limit > capLimit {
		limit = capLimit
	}

	page = max(q.Page, 1)
	return page, limit
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// filter is a ProductQuery prepared for matching.
type filter struct {
	category   string
	brand      string
	terms      []string
	sourceOnly bool
	onSale     bool
}

func newFilter(q *domain.ProductQuery) filter {
	f := filter{
		category:   strings.TrimSpace(q.Category),
		brand:      strings.TrimSpace(q.Brand),
		terms:      strings.Fields(strings.ToLower(q.Search)),
		sourceOnly: q.ExternalSourceOnly,
		onSale:     q.OnSale,
	}
	// The external-source view replaces the category.
	if f.sourceOnly {
		f.category = ""
	}
	return f
}

// matches reports whether p is visible and satisfies every set criterion.
// Search terms must all appear in the name, brand or category.
func (f filter) matches(p *domain.Product) bool {
	if !p.IsVisible {
		return false
	}
	if f.category != "" && !strings.EqualFold(p.Category, f.category) {
		return false
	}
	if f.brand != "" && !strings.EqualFold(p.Brand, f.brand) {
		return false
	}
	if f.sourceOnly && !p.IsFromExternalSource {
		return false
	}
	if f.onSale && !p.Discounted() {
		return false
	}
	if len(f.terms) == 0 {
		return true
	}

	haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Category)
	for _, term := range f.terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
