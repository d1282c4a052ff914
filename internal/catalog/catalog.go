// Package catalog serves a product fixture through the listing contract the
// discovery controller consumes: paginated product search plus the brand and
// category lists. Hidden products are never returned.
package catalog

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// ErrEmpty is returned by Ping when no visible products are loaded.
var ErrEmpty = errors.New("catalog has no visible products")

// ProductSource defines the catalog operations the HTTP handlers depend on.
type ProductSource interface {
	ListProducts(ctx context.Context, q *domain.ProductQuery) (*domain.ProductPage, error)
	ListBrands(ctx context.Context) ([]string, error)
	Categories() []string
	Ping(ctx context.Context) error
}

// Memory is an in-memory ProductSource.
type Memory struct {
	defaultLimit int
	maxLimit     int
	latency      time.Duration

	mu         sync.RWMutex
	products   []domain.Product
	categories []string
}

// Option configures a Memory catalog.
type Option func(*Memory)

// WithLimits sets the page size used when a query has none and the largest
// page size a query may ask for.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(m *Memory) {
		m.defaultLimit = defaultLimit
		m.maxLimit = maxLimit
	}
}

// WithLatency delays every product listing by d.
func WithLatency(d time.Duration) Option {
	return func(m *Memory) {
		m.latency = d
	}
}

// WithCategories fixes the category list instead of deriving it from the
// products.
func WithCategories(categories []string) Option {
	return func(m *Memory) {
		m.categories = slices.Clone(categories)
	}
}

// NewMemory creates a catalog over products. Products are served newest
// first.
func NewMemory(products []domain.Product, opts ...Option) *Memory {
	m := &Memory{
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Replace(products)
	return m
}

// LoadFile reads a JSON fixture. The file holds either an array of products
// or an object with a "products" array.
func LoadFile(path string, opts ...Option) (*Memory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading catalog fixture: %w", err)
	}

	products, err := decodeFixture(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog fixture %s: %w", path, err)
	}
	return NewMemory(products, opts...), nil
}

func decodeFixture(data []byte) ([]domain.Product, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var products []domain.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, err
		}
		return products, nil
	}

	var wrapped struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Products, nil
}

// Replace swaps the served products.
func (m *Memory) Replace(products []domain.Product) {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b domain.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = sorted
}

// ListProducts returns one page of visible products matching q.
func (m *Memory) ListProducts(ctx context.Context, q *domain.ProductQuery) (*domain.ProductPage, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	if q == nil {
		q = &domain.ProductQuery{}
	}
	page, limit := normalize(q, m.defaultLimit, m.maxLimit)
	f := newFilter(q)

	m.mu.RLock()
	var matched []domain.Product
	for i := range m.products {
		if f.matches(&m.products[i]) {
			matched = append(matched, m.products[i])
		}
	}
	m.mu.RUnlock()

	total := len(matched)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	products := make([]domain.Product, end-start)
	copy(products, matched[start:end])

	return &domain.ProductPage{
		Products: products,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// ListBrands returns the distinct brands of visible products, sorted.
func (m *Memory) ListBrands(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return distinct(m.products, func(p *domain.Product) string { return p.Brand }), nil
}

// Categories returns the configured categories, or the distinct categories
// of visible products when none were configured.
func (m *Memory) Categories() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.categories != nil {
		return slices.Clone(m.categories)
	}
	return distinct(m.products, func(p *domain.Product) string { return p.Category })
}

// Ping reports whether the catalog has anything to serve.
func (m *Memory) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.products {
		if m.products[i].IsVisible {
			return nil
		}
	}
	return ErrEmpty
}

func (m *Memory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func distinct(products []domain.Product, key func(*domain.Product) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for i := range products {
		p := &products[i]
		k := strings.TrimSpace(key(p))
		if !p.IsVisible || k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
