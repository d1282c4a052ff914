package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/donaldgifford/storefront-discovery/internal/metrics"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// ErrClosed is returned by Listing operations after Close.
var ErrClosed = errors.New("listing closed")

// ListingStatus is the state of the result area.
type ListingStatus int

// Listing statuses.
const (
	ListingIdle ListingStatus = iota
	ListingLoading
	ListingReady
	ListingError
)

func (s ListingStatus) String() string {
	switch s {
	case ListingLoading:
		return "loading"
	case ListingReady:
		return "ready"
	case ListingError:
		return "error"
	default:
		return "idle"
	}
}

// ListingView is an immutable snapshot of a listing session.
type ListingView struct {
	Filter FilterState
	Page   PageState
	Status ListingStatus
	// Err is the message of the last failed fetch while Status is
	// ListingError.
	Err string
	// Products is the fetched page after the client-side facets and sort.
	Products []domain.Product
	// Fetched is the number of products on the fetched page before
	// client-side filtering.
	Fetched int
	// Total is the server-reported number of matching products.
	Total int
	// Seq increases with every published view. A view with a lower Seq
	// than one already rendered is stale.
	Seq uint64
}

// Listing runs a faceted, paginated product listing against a Catalog.
// Every handler goes through Reduce; fetches run on goroutines and their
// results are applied only while their generation is current.
type Listing struct {
	catalog Catalog
	logger  *slog.Logger
	out     *notifier[ListingView]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	filter   FilterState
	page     PageState
	lastGood PageState
	base     []domain.Product
	total    int
	status   ListingStatus
	err      string
	seq      uint64
	closed   bool
}

// NewListing creates an idle listing with the default filter. Nothing is
// fetched until the first action.
func NewListing(catalog Catalog, opts ...Option) *Listing {
	o := buildOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())
	page := NewPageState(o.pageSize)
	return &Listing{
		catalog:  catalog,
		logger:   o.logger,
		out:      newNotifier(o.onListing),
		ctx:      ctx,
		cancel:   cancel,
		filter:   DefaultFilterState(),
		page:     page,
		lastGood: page,
	}
}

// Dispatch applies a and starts the fetch it calls for, if any.
func (l *Listing) Dispatch(a Action) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}

	t, err := Reduce(l.filter, l.page, a)
	if err != nil {
		l.mu.Unlock()
		return err
	}

	changed := t.Filter != l.filter || t.Page != l.page
	l.filter, l.page = t.Filter, t.Page

	gen := l.page.LastFetchGeneration
	if t.Fetch != nil {
		l.status = ListingLoading
		l.err = ""
		l.wg.Add(1)
	}

	if changed {
		l.publishLocked()
	}
	l.mu.Unlock()

	l.out.drain()
	if t.Fetch != nil {
		go l.fetch(gen, t.Fetch)
	}
	return nil
}

// SetFacet changes one facet.
func (l *Listing) SetFacet(name Facet, value string) error {
	return l.Dispatch(SetFacetAction{Facet: name, Value: value})
}

// ResetAll restores the default filter and refetches page 1.
func (l *Listing) ResetAll() error {
	return l.Dispatch(ResetAllAction{})
}

// GoTo moves to page; out of range pages are ignored.
func (l *Listing) GoTo(page int) error {
	return l.Dispatch(GoToAction{Page: page})
}

// Next moves one page forward.
func (l *Listing) Next() error {
	return l.Dispatch(NextPageAction{})
}

// Prev moves one page back.
func (l *Listing) Prev() error {
	return l.Dispatch(PrevPageAction{})
}

// Refresh refetches the current page.
func (l *Listing) Refresh() error {
	return l.Dispatch(RefreshAction{})
}

// Seed replaces the filter and page and fetches.
func (l *Listing) Seed(f FilterState, page int) error {
	return l.Dispatch(SeedAction{Filter: f, Page: page})
}

func (l *Listing) fetch(gen uint64, q *domain.ProductQuery) {
	defer l.wg.Done()

	metrics.ListingFetchesTotal.Inc()
	start := time.Now()
	page, err := l.catalog.ListProducts(l.ctx, q)
	metrics.ListingFetchDuration.Observe(time.Since(start).Seconds())

	l.mu.Lock()
	if !l.page.Accepts(gen) {
		l.mu.Unlock()
		metrics.ListingStaleTotal.Inc()
		l.logger.Debug("discarding stale listing page",
			"generation", gen,
			"page", q.Page,
		)
		return
	}

	if err != nil {
		metrics.ListingFailuresTotal.Inc()
		l.logger.Warn("listing fetch failed",
			"generation", gen,
			"page", q.Page,
			"error", err,
		)
		l.page = l.page.Rollback(l.lastGood)
		l.status = ListingError
		l.err = err.Error()
	} else {
		l.page = l.page.Resolve(page.Pagination)
		l.lastGood = l.page
		l.base = slices.Clone(page.Products)
		l.total = page.Pagination.Total
		l.status = ListingReady
		l.err = ""
		l.logger.Debug("listing page loaded",
			"generation", gen,
			"page", l.page.CurrentPage,
			"total_pages", l.page.TotalPages,
			"count", len(page.Products),
		)
	}
	l.publishLocked()
	l.mu.Unlock()

	l.out.drain()
}

// View returns a snapshot of the listing.
func (l *Listing) View() ListingView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewLocked()
}

// publishLocked stamps the next sequence number and queues the view for
// the observer.
func (l *Listing) publishLocked() {
	l.seq++
	l.out.push(l.viewLocked())
}

func (l *Listing) viewLocked() ListingView {
	return ListingView{
		Filter:   l.filter,
		Page:     l.page,
		Status:   l.status,
		Err:      l.err,
		Products: l.filter.ApplyClientSidePredicate(l.base),
		Fetched:  len(l.base),
		Total:    l.total,
		Seq:      l.seq,
	}
}

// Brands returns the brand list for the brand facet.
func (l *Listing) Brands(ctx context.Context) ([]string, error) {
	brands, err := l.catalog.ListBrands(ctx)
	if err != nil {
		l.logger.Warn("brand list fetch failed", "error", err)
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	return brands, nil
}

// Wait blocks until every issued fetch has settled.
func (l *Listing) Wait() {
	l.wg.Wait()
}

// Close cancels in-flight fetches and rejects further actions.
func (l *Listing) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}
