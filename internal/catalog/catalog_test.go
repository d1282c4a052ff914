package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-discovery/internal/catalog"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

func ptr[T any](v T) *T { return &v }

var day0 = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

func fixture() []domain.Product {
	return []domain.Product{
		{ID: "a", Name: "Aurora Laptop", Category: "Electronics", Brand: "Lumen", Price: 1000, IsVisible: true, CreatedAt: day0},
		{ID: "b", Name: "Pulse Earbuds", Category: "Electronics", Brand: "Sonance", Price: 100, DiscountPrice: ptr(80.0), IsVisible: true, IsFromExternalSource: true, CreatedAt: day0.AddDate(0, 0, 1)},
		{ID: "c", Name: "Trail Sneakers", Category: "Fashion", Brand: "Stride", Price: 90, IsVisible: true, CreatedAt: day0.AddDate(0, 0, 2)},
		{ID: "d", Name: "Leather Boots", Category: "Fashion", Brand: "Stride", Price: 180, DiscountPrice: ptr(150.0), IsVisible: true, CreatedAt: day0.AddDate(0, 0, 3)},
		{ID: "e", Name: "Oak Lamp", Category: "Home", Brand: "Hearth", Price: 60, IsVisible: true, IsFromExternalSource: true, CreatedAt: day0.AddDate(0, 0, 4)},
		{ID: "f", Name: "Hidden Lamp", Category: "Home", Brand: "Ghost", Price: 10, IsVisible: false, CreatedAt: day0.AddDate(0, 0, 5)},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for i := range products {
		out = append(out, products[i].ID)
	}
	return out
}

func TestMemory_ListProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     *domain.ProductQuery
		wantIDs   []string
		wantTotal int
		wantPages int
	}{
		{
			name:      "nil query returns visible products newest first",
			query:     nil,
			wantIDs:   []string{"e", "d", "c", "b", "a"},
			wantTotal: 5,
			wantPages: 1,
		},
		{
			name:      "category is case-insensitive",
			query:     &domain.ProductQuery{Category: "fashion"},
			wantIDs:   []string{"d", "c"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "brand",
			query:     &domain.ProductQuery{Brand: "Sonance"},
			wantIDs:   []string{"b"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "search matches every term",
			query:     &domain.ProductQuery{Search: "leather STRIDE"},
			wantIDs:   []string{"d"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "search matches category",
			query:     &domain.ProductQuery{Search: "home"},
			wantIDs:   []string{"e"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "external source replaces category",
			query:     &domain.ProductQuery{Category: "Fashion", ExternalSourceOnly: true},
			wantIDs:   []string{"e", "b"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "on sale",
			query:     &domain.ProductQuery{OnSale: true},
			wantIDs:   []string{"d", "b"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "pagination",
			query:     &domain.ProductQuery{Page: 2, Limit: 2},
			wantIDs:   []string{"c", "b"},
			wantTotal: 5,
			wantPages: 3,
		},
		{
			name:      "page past the end is empty",
			query:     &domain.ProductQuery{Page: 9, Limit: 2},
			wantIDs:   []string{},
			wantTotal: 5,
			wantPages: 3,
		},
		{
			name:      "hidden products never match",
			query:     &domain.ProductQuery{Brand: "Ghost"},
			wantIDs:   []string{},
			wantTotal: 0,
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := catalog.NewMemory(fixture())
			page, err := m.ListProducts(context.Background(), tt.query)
			require.NoError(t, err)
			require.NotNil(t, page.Products)

			assert.Equal(t, tt.wantIDs, ids(page.Products))
			assert.Equal(t, tt.wantTotal, page.Pagination.Total)
			assert.Equal(t, tt.wantPages, page.Pagination.TotalPages)
		})
	}
}

func TestMemory_ListProducts_Limits(t *testing.T) {
	t.Parallel()

	m := catalog.NewMemory(fixture(), catalog.WithLimits(2, 3))

	page, err := m.ListProducts(context.Background(), &domain.ProductQuery{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 2, page.Pagination.Limit)
	assert.Len(t, page.Products, 2)

	page, err = m.ListProducts(context.Background(), &domain.ProductQuery{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.Limit)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestMemory_ListProducts_Latency(t *testing.T) {
	t.Parallel()

	m := catalog.NewMemory(fixture(), catalog.WithLatency(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.ListProducts(ctx, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemory_ListBrands(t *testing.T) {
	t.Parallel()

	m := catalog.NewMemory(fixture())
	brands, err := m.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hearth", "Lumen", "Sonance", "Stride"}, brands)
}

func TestMemory_Categories(t *testing.T) {
	t.Parallel()

	derived := catalog.NewMemory(fixture())
	assert.Equal(t, []string{"Electronics", "Fashion", "Home"}, derived.Categories())

	fixed := catalog.NewMemory(fixture(), catalog.WithCategories([]string{"Home", "Garden"}))
	assert.Equal(t, []string{"Home", "Garden"}, fixed.Categories())
}

func TestMemory_Ping(t *testing.T) {
	t.Parallel()

	require.NoError(t, catalog.NewMemory(fixture()).Ping(context.Background()))

	hidden := []domain.Product{{ID: "x", IsVisible: false}}
	require.ErrorIs(t, catalog.NewMemory(hidden).Ping(context.Background()), catalog.ErrEmpty)
	require.ErrorIs(t, catalog.NewMemory(nil).Ping(context.Background()), catalog.ErrEmpty)
}

func TestMemory_Replace(t *testing.T) {
	t.Parallel()

	m := catalog.NewMemory(nil)
	m.Replace(fixture()[:1])

	page, err := m.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(page.Products))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	m, err := catalog.LoadFile(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)

	page, err := m.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-014", "p-011", "p-006", "p-003", "p-001"}, ids(page.Products))
	require.NotNil(t, page.Products[0].DiscountPrice)
	assert.InDelta(t, 169.0, *page.Products[0].DiscountPrice, 0.001)
	assert.True(t, page.Products[0].IsFromExternalSource)
}

func TestLoadFile_WrappedObject(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[{"id":"w","name":"Wrapped","isVisible":true}]}`), 0o644))

	m, err := catalog.LoadFile(path)
	require.NoError(t, err)
	page, err := m.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"w"}, ids(page.Products))
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := catalog.LoadFile("/nonexistent/products.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog fixture")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":`), 0o644))
	_, err = catalog.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog fixture")
}
