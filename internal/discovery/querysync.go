package discovery

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/schema"
)

// Router is the navigation-location collaborator: it exposes the current
// query string and accepts a new one on explicit navigation.
type Router interface {
	Location() string
	Navigate(query string) error
}

// locationParams is the query-string shape read and written by QuerySync.
// Fields are strings so malformed values decode without error and are
// normalised afterwards.
type locationParams struct {
	Category string `schema:"category,omitempty"`
	Search   string `schema:"search,omitempty"`
	Brand    string `schema:"brand,omitempty"`
	Page     string `schema:"page,omitempty"`
	OnSale   string `schema:"onSale,omitempty"`
}

var (
	locationDecoder = newLocationDecoder()
	locationEncoder = schema.NewEncoder()
)

func newLocationDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Hydrate builds the initial filter and page from a navigation location. The
// location may be a full URL, a "?"-prefixed query or a bare query string.
// Unknown categories, malformed pages and malformed onSale values fall back
// to their defaults. A nil categories list accepts any category.
func Hydrate(location string, categories []string) (FilterState, PageState) {
	f := DefaultFilterState()
	p := NewPageState(DefaultPageSize)

	var params locationParams
	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(rawQuery(location))
	if err := locationDecoder.Decode(&params, values); err != nil {
		return f, p
	}

	switch category := strings.TrimSpace(params.Category); {
	case category == "":
	case category == SourceOnlyCategory:
		f.SourceOnly = true
	default:
		if c, ok := canonicalCategory(category, categories); ok {
			f.Category = c
		}
	}

	f.SearchText = strings.TrimSpace(params.Search)
	f.Brand = strings.TrimSpace(params.Brand)

	if onSale, err := strconv.ParseBool(strings.TrimSpace(params.OnSale)); err == nil {
		f.OnSale = onSale
	}
	if page, err := strconv.Atoi(strings.TrimSpace(params.Page)); err == nil && page >= 1 {
		p.CurrentPage = page
		p.TotalPages = page
	}
	return f, p
}

// EncodeLocation renders the navigable facets of f and page as a query
// string. Defaults are omitted.
func EncodeLocation(f FilterState, page int) string {
	params := locationParams{
		Category: f.CategorySlot(),
		Search:   strings.TrimSpace(f.SearchText),
		Brand:    f.Brand,
	}
	if page > 1 {
		params.Page = strconv.Itoa(page)
	}
	if f.OnSale {
		params.OnSale = "true"
	}

	values := url.Values{}
	if err := locationEncoder.Encode(params, values); err != nil {
		return ""
	}
	return values.Encode()
}

func rawQuery(location string) string {
	s := strings.TrimSpace(location)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[i+1:]
	}
	if strings.Contains(s, "://") {
		return ""
	}
	return s
}

func canonicalCategory(category string, categories []string) (string, bool) {
	if categories == nil {
		return category, true
	}
	for _, c := range categories {
		if strings.EqualFold(c, category) {
			return c, true
		}
	}
	return "", false
}

// QuerySync seeds a Listing from the router once and writes the location
// back on explicit navigation. Ordinary facet edits made directly on the
// Listing never touch the router.
type QuerySync struct {
	router     Router
	listing    *Listing
	categories []string
	logger     *slog.Logger
}

// NewQuerySync creates a QuerySync. categories is the set of known category
// names used to normalise hydrated values.
func NewQuerySync(router Router, listing *Listing, categories []string, opts ...Option) *QuerySync {
	o := buildOptions(opts)
	return &QuerySync{
		router:     router,
		listing:    listing,
		categories: categories,
		logger:     o.logger,
	}
}

// Mount hydrates the listing from the current location and fetches.
func (q *QuerySync) Mount() error {
	loc := q.router.Location()
	f, p := Hydrate(loc, q.categories)
	q.logger.Debug("hydrated listing from location",
		"location", loc,
		"category", f.CategorySlot(),
		"page", p.CurrentPage,
	)
	return q.listing.Seed(f, p.CurrentPage)
}

// NavigateCategory selects category (or clears it when empty) and writes
// the location.
func (q *QuerySync) NavigateCategory(category string) error {
	category = strings.TrimSpace(category)
	if category != "" && category != SourceOnlyCategory {
		c, ok := canonicalCategory(category, q.categories)
		if !ok {
			return fmt.Errorf("%w: category %q", ErrInvalidFacetValue, category)
		}
		category = c
	}
	return q.navigate(FacetCategory, category)
}

// NavigateBrand selects brand (or clears it when empty) and writes the
// location.
func (q *QuerySync) NavigateBrand(brand string) error {
	return q.navigate(FacetBrand, brand)
}

// SubmitSearch commits search text and writes the location.
func (q *QuerySync) SubmitSearch(text string) error {
	return q.navigate(FacetSearch, text)
}

func (q *QuerySync) navigate(name Facet, value string) error {
	if err := q.listing.SetFacet(name, value); err != nil {
		return err
	}
	v := q.listing.View()
	loc := EncodeLocation(v.Filter, v.Page.CurrentPage)
	if err := q.router.Navigate(loc); err != nil {
		return fmt.Errorf("navigating to %q: %w", loc, err)
	}
	return nil
}

// MemoryRouter is an in-process Router that records every navigation.
type MemoryRouter struct {
	mu       sync.Mutex
	location string
	history  []string
}

// NewMemoryRouter creates a router positioned at location.
func NewMemoryRouter(location string) *MemoryRouter {
	return &MemoryRouter{location: rawQuery(location)}
}

// Location returns the current query string.
func (r *MemoryRouter) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// Navigate records query as the new location.
func (r *MemoryRouter) Navigate(query string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, query)
	r.location = query
	return nil
}

// History returns every location written through Navigate, oldest first.
func (r *MemoryRouter) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
