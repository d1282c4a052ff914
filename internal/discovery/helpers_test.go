package discovery_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// fakeClock records timers and fires them on demand.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) discovery.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Pending returns the number of armed timers.
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Armed returns the number of timers ever created.
func (c *fakeClock) Armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// FireAll runs every armed timer in creation order.
func (c *fakeClock) FireAll() {
	c.mu.Lock()
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t.fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func product(id string, price float64) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     price,
		Stock:     1,
		Category:  "Electronics",
		Brand:     "Acme",
		CreatedAt: baseTime,
		IsVisible: true,
	}
}

func pricedProducts(prices ...float64) []domain.Product {
	out := make([]domain.Product, 0, len(prices))
	for i, p := range prices {
		out = append(out, product(fmt.Sprintf("p%d", i+1), p))
	}
	return out
}

func pageOf(products []domain.Product, page, totalPages int) *domain.ProductPage {
	return &domain.ProductPage{
		Products: products,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      discovery.DefaultPageSize,
			Total:      totalPages * discovery.DefaultPageSize,
			TotalPages: totalPages,
		},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for i := range products {
		out = append(out, products[i].ID)
	}
	return out
}

func prices(products []domain.Product) []float64 {
	out := make([]float64, 0, len(products))
	for i := range products {
		out = append(out, products[i].EffectivePrice())
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
