package discovery

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// Facet names one filter dimension of the listing.
type Facet string

// Facet constants.
const (
	FacetCategory   Facet = "category"
	FacetBrand      Facet = "brand"
	FacetSearch     Facet = "search"
	FacetSourceOnly Facet = "sourceOnly"
	FacetOnSale     Facet = "onSale"
	FacetPriceMin   Facet = "priceMin"
	FacetPriceMax   Facet = "priceMax"
	FacetInStock    Facet = "inStock"
	FacetDiscounted Facet = "discounted"
	FacetFeatured   Facet = "featured"
	FacetSort       Facet = "sort"
)

// Facets lists every facet SetFacet accepts.
var Facets = []Facet{
	FacetCategory, FacetBrand, FacetSearch, FacetSourceOnly, FacetOnSale,
	FacetPriceMin, FacetPriceMax, FacetInStock, FacetDiscounted, FacetFeatured,
	FacetSort,
}

// SourceOnlyCategory is the category slot value that selects the
// external-source-only view instead of a real category.
const SourceOnlyCategory = "external"

// DefaultPriceMax is the upper price bound of a freshly reset filter.
const DefaultPriceMax = 10000

var (
	// ErrUnknownFacet is returned by SetFacet for a facet name it does not know.
	ErrUnknownFacet = errors.New("unknown facet")
	// ErrInvalidFacetValue is returned by SetFacet when a value cannot be parsed.
	ErrInvalidFacetValue = errors.New("invalid facet value")
)

// ChangeClass tells the paginator whether a facet change needs the network.
type ChangeClass int

// Change classes.
const (
	// ServerSide facets are sent with the listing fetch.
	ServerSide ChangeClass = iota + 1
	// ClientSide facets filter the already fetched page.
	ClientSide
	// SortOnly reorders the already fetched page.
	SortOnly
)

func (c ChangeClass) String() string {
	switch c {
	case ServerSide:
		return "server-side"
	case ClientSide:
		return "client-side"
	case SortOnly:
		return "sort-only"
	default:
		return "none"
	}
}

// Class returns the change class of f.
func (f Facet) Class() (ChangeClass, bool) {
	switch f {
	case FacetCategory, FacetBrand, FacetSearch, FacetSourceOnly, FacetOnSale:
		return ServerSide, true
	case FacetPriceMin, FacetPriceMax, FacetInStock, FacetDiscounted, FacetFeatured:
		return ClientSide, true
	case FacetSort:
		return SortOnly, true
	default:
		return 0, false
	}
}

// FilterState holds every active facet of a listing session.
// Category and SourceOnly share one slot: at most one is set.
type FilterState struct {
	Category       string
	Brand          string
	SearchText     string
	SourceOnly     bool
	OnSale         bool
	PriceMin       float64
	PriceMax       float64
	InStockOnly    bool
	DiscountedOnly bool
	FeaturedOnly   bool
	SortKey        domain.SortKey
}

// DefaultFilterState returns the state produced by a reset.
func DefaultFilterState() FilterState {
	return FilterState{
		PriceMax: DefaultPriceMax,
		SortKey:  domain.SortNewest,
	}
}

// ServerParams are the facets sent with a listing fetch.
type ServerParams struct {
	Category           string
	Search             string
	Brand              string
	ExternalSourceOnly bool
	OnSale             bool
}

// Query builds the listing request for the given page.
func (p ServerParams) Query(page, limit int) domain.ProductQuery {
	return domain.ProductQuery{
		Page:               page,
		Limit:              limit,
		Category:           p.Category,
		Search:             p.Search,
		Brand:              p.Brand,
		ExternalSourceOnly: p.ExternalSourceOnly,
		OnSale:             p.OnSale,
	}
}

// SetFacet returns f with one facet updated and the class of that facet.
// On error f is returned unchanged.
func (f FilterState) SetFacet(name Facet, value string) (FilterState, ChangeClass, error) {
	class, ok := name.Class()
	if !ok {
		return f, 0, fmt.Errorf("%w %q", ErrUnknownFacet, name)
	}

	next := f
	var err error

	switch name {
	case FacetCategory:
		next.setCategorySlot(strings.TrimSpace(value))
	case FacetBrand:
		next.Brand = strings.TrimSpace(value)
	case FacetSearch:
		next.SearchText = value
	case FacetSourceOnly:
		var on bool
		if on, err = parseFlag(name, value); err == nil {
			next.SourceOnly = on
			if on {
				next.Category = ""
			}
		}
	case FacetOnSale:
		next.OnSale, err = parseFlag(name, value)
	case FacetPriceMin:
		next.PriceMin, err = parsePrice(name, value)
	case FacetPriceMax:
		next.PriceMax, err = parsePrice(name, value)
	case FacetInStock:
		next.InStockOnly, err = parseFlag(name, value)
	case FacetDiscounted:
		next.DiscountedOnly, err = parseFlag(name, value)
	case FacetFeatured:
		next.FeaturedOnly, err = parseFlag(name, value)
	case FacetSort:
		key := domain.SortKey(strings.TrimSpace(value))
		if !key.Valid() {
			err = fmt.Errorf("%w: sort %q", ErrInvalidFacetValue, value)
		}
		next.SortKey = key
	}

	if err != nil {
		return f, 0, err
	}
	return next, class, nil
}

// setCategorySlot stores value in the shared category slot.
func (f *FilterState) setCategorySlot(value string) {
	if value == SourceOnlyCategory {
		f.Category = ""
		f.SourceOnly = true
		return
	}
	f.Category = value
	f.SourceOnly = false
}

// CategorySlot returns the value shown in the category selector.
func (f FilterState) CategorySlot() string {
	if f.SourceOnly {
		return SourceOnlyCategory
	}
	return f.Category
}

// ResetAll returns the default filter. A reset always counts as a
// server-side change.
func (FilterState) ResetAll() (FilterState, ChangeClass) {
	return DefaultFilterState(), ServerSide
}

// ComputeServerParams maps f onto listing request parameters. The
// external-source flag and category are mutually exclusive on the wire.
func (f FilterState) ComputeServerParams() ServerParams {
	p := ServerParams{
		Category:           f.Category,
		Search:             strings.TrimSpace(f.SearchText),
		Brand:              f.Brand,
		ExternalSourceOnly: f.SourceOnly,
		OnSale:             f.OnSale,
	}
	if p.ExternalSourceOnly {
		p.Category = ""
	}
	return p
}

// priceBounds returns the active inclusive price range. An inverted range is
// swapped rather than matching nothing.
func (f FilterState) priceBounds() (lo, hi float64, active bool) {
	lo, hi = f.PriceMin, f.PriceMax
	minActive := lo > 0
	maxActive := hi != DefaultPriceMax
	if !minActive {
		lo = math.Inf(-1)
	}
	if !maxActive {
		hi = math.Inf(1)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, minActive || maxActive
}

// ApplyClientSidePredicate filters products by the client-side facets and
// sorts them by SortKey. The input slice is not modified and equal sort keys
// keep their original order.
func (f FilterState) ApplyClientSidePredicate(products []domain.Product) []domain.Product {
	lo, hi, priced := f.priceBounds()

	out := make([]domain.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if priced {
			price := p.EffectivePrice()
			if price < lo || price > hi {
				continue
			}
		}
		if f.InStockOnly && !p.InStock() {
			continue
		}
		if f.DiscountedOnly && !p.Discounted() {
			continue
		}
		if f.FeaturedOnly && !p.IsFeatured {
			continue
		}
		out = append(out, *p)
	}

	slices.SortStableFunc(out, compareFor(f.SortKey))
	return out
}

func compareFor(key domain.SortKey) func(a, b domain.Product) int {
	switch key {
	case domain.SortPriceLow:
		return func(a, b domain.Product) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		}
	case domain.SortPriceHigh:
		return func(a, b domain.Product) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		}
	case domain.SortName:
		return func(a, b domain.Product) int {
			return strings.Compare(a.Name, b.Name)
		}
	default:
		return func(a, b domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	}
}

func parseFlag(name Facet, value string) (bool, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q", ErrInvalidFacetValue, name, value)
	}
	return b, nil
}

func parsePrice(name Facet, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidFacetValue, name, value)
	}
	return v, nil
}
