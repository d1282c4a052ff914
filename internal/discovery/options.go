package discovery

import (
	"log/slog"
	"time"

	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// Suggester defaults.
const (
	DefaultDebounce     = 300 * time.Millisecond
	DefaultSuggestLimit = 6
)

type options struct {
	logger       *slog.Logger
	clock        Clock
	debounce     time.Duration
	suggestLimit int
	pageSize     int

	onSuggestions func(SuggestionState)
	onSelect      func(domain.Product)
	onListing     func(ListingView)
}

// Option configures a Suggester or a Listing. Options that do not apply to
// the component being built are ignored.
type Option func(*options)

// WithLogger sets the logger used for stale, failed and completed requests.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock replaces the wall clock used for debouncing.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithDebounce sets the quiet interval before a suggestion lookup fires.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithSuggestLimit sets the maximum number of suggestions requested and kept.
func WithSuggestLimit(n int) Option {
	return func(o *options) {
		o.suggestLimit = n
	}
}

// WithPageSize sets the fixed listing page size.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = n
	}
}

// WithSuggestionObserver registers fn to receive every suggestion state
// change. fn is called without any lock held.
func WithSuggestionObserver(fn func(SuggestionState)) Option {
	return func(o *options) {
		o.onSuggestions = fn
	}
}

// WithSelectHandler registers fn to receive products chosen from the
// suggestion list.
func WithSelectHandler(fn func(domain.Product)) Option {
	return func(o *options) {
		o.onSelect = fn
	}
}

// WithListingObserver registers fn to receive every listing view change.
// fn is called without any lock held.
func WithListingObserver(fn func(ListingView)) Option {
	return func(o *options) {
		o.onListing = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:       slog.Default(),
		clock:        realClock{},
		debounce:     DefaultDebounce,
		suggestLimit: DefaultSuggestLimit,
		pageSize:     DefaultPageSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.suggestLimit <= 0 {
		o.suggestLimit = DefaultSuggestLimit
	}
	if o.pageSize <= 0 {
		o.pageSize = DefaultPageSize
	}
	if o.debounce < 0 {
		o.debounce = 0
	}
	return o
}
