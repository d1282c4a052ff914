package discovery

import (
	"context"
	"time"

	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// ProductLister fetches one page of products.
type ProductLister interface {
	ListProducts(ctx context.Context, q *domain.ProductQuery) (*domain.ProductPage, error)
}

// Catalog is the product-search endpoint the controller talks to.
type Catalog interface {
	ProductLister
	ListBrands(ctx context.Context) ([]string, error)
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules debounce callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
