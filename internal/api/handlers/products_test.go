package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-discovery/internal/api/handlers"
	"github.com/donaldgifford/storefront-discovery/internal/catalog"
	"github.com/donaldgifford/storefront-discovery/internal/catalog/mocks"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

func TestProductsHandler_ListProducts(t *testing.T) {
	t.Parallel()

	onePage := &domain.ProductPage{
		Products:   []domain.Product{{ID: "p-001", Name: "Aurora Laptop", IsVisible: true}},
		Pagination: domain.Pagination{Page: 1, Limit: 12, Total: 1, TotalPages: 1},
	}

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockProductSource)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters",
			query: "",
			setupMock: func(m *mocks.MockProductSource) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *domain.ProductQuery) bool {
						return *q == domain.ProductQuery{}
					})).
					Return(onePage, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalPages":1`,
		},
		{
			name:  "all filters",
			query: "?page=2&limit=12&category=Electronics&search=laptop&brand=Lumen&isOnSale=true",
			setupMock: func(m *mocks.MockProductSource) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *domain.ProductQuery) bool {
						return q.Page == 2 && q.Limit == 12 &&
							q.Category == "Electronics" && q.Search == "laptop" &&
							q.Brand == "Lumen" && q.OnSale && !q.ExternalSourceOnly
					})).
					Return(onePage, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"p-001"`,
		},
		{
			name:  "external source flag",
			query: "?isExternalSource=true",
			setupMock: func(m *mocks.MockProductSource) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *domain.ProductQuery) bool {
						return q.ExternalSourceOnly
					})).
					Return(onePage, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-numeric page rejected",
			query:      "?page=abc",
			setupMock:  func(_ *mocks.MockProductSource) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "source error returns 500",
			query: "?category=Home",
			setupMock: func(m *mocks.MockProductSource) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.Anything).
					Return(nil, errors.New("fixture unavailable")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing products failed: fixture unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := mocks.NewMockProductSource(t)
			tt.setupMock(source)

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(source))

			resp := api.Get("/api/v1/products" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProductsHandler_ListBrands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		brands []string
		want   []string
	}{
		{
			name:   "returns brands",
			brands: []string{"Hearth", "Lumen"},
			want:   []string{"Hearth", "Lumen"},
		},
		{
			name:   "nil brands encode as empty list",
			brands: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := mocks.NewMockProductSource(t)
			source.EXPECT().ListBrands(mock.Anything).Return(tt.brands, nil).Once()

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(source))

			resp := api.Get("/api/v1/products/brands")
			require.Equal(t, http.StatusOK, resp.Code)

			var body domain.BrandList
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Brands)
		})
	}
}

func TestProductsHandler_ListBrands_Error(t *testing.T) {
	t.Parallel()

	source := mocks.NewMockProductSource(t)
	source.EXPECT().ListBrands(mock.Anything).Return(nil, errors.New("boom")).Once()

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(source))

	resp := api.Get("/api/v1/products/brands")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing brands failed: boom")
}

func TestProductsHandler_ListCategories(t *testing.T) {
	t.Parallel()

	source := mocks.NewMockProductSource(t)
	source.EXPECT().Categories().Return([]string{"Electronics", "Fashion", "Home"}).Once()

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(source))

	resp := api.Get("/api/v1/products/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var body domain.CategoryList
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"Electronics", "Fashion", "Home"}, body.Categories)
}

func TestProductsHandler_MemoryCatalog(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	source := catalog.NewMemory([]domain.Product{
		{ID: "a", Name: "Aurora Laptop", Category: "Electronics", Brand: "Lumen", Price: 999, IsVisible: true, CreatedAt: created},
		{ID: "b", Name: "Trail Sneakers", Category: "Fashion", Brand: "Stride", Price: 89, IsVisible: true, CreatedAt: created.Add(time.Hour)},
		{ID: "c", Name: "Hidden", Category: "Fashion", Brand: "Stride", Price: 1, IsVisible: false, CreatedAt: created.Add(2 * time.Hour)},
	}, catalog.WithLimits(1, 10))

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(source))

	resp := api.Get("/api/v1/products?category=fashion")
	require.Equal(t, http.StatusOK, resp.Code)

	var page domain.ProductPage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	require.Len(t, page.Products, 1)
	assert.Equal(t, "b", page.Products[0].ID)
	assert.Equal(t, domain.Pagination{Page: 1, Limit: 1, Total: 1, TotalPages: 1}, page.Pagination)

	resp = api.Get("/api/v1/products?page=2")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	require.Len(t, page.Products, 1)
	assert.Equal(t, "a", page.Products[0].ID)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
