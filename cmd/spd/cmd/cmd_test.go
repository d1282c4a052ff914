package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-discovery/internal/api/handlers"
	"github.com/donaldgifford/storefront-discovery/internal/catalog"
	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func fixtureProducts() []domain.Product {
	d0 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: "a", Name: "Aurora Laptop", Category: "Electronics", Brand: "Lumen", Price: 1199, DiscountPrice: ptr(999.0), Stock: 4, IsVisible: true, CreatedAt: d0},
		{ID: "b", Name: "Pulse Earbuds", Category: "Electronics", Brand: "Sonance", Price: 129, Stock: 0, IsVisible: true, IsFromExternalSource: true, CreatedAt: d0.AddDate(0, 0, 1)},
		{ID: "c", Name: "Trail Sneakers", Category: "Fashion", Brand: "Stride", Price: 89, DiscountPrice: ptr(69.0), Stock: 7, IsVisible: true, CreatedAt: d0.AddDate(0, 0, 2)},
		{ID: "d", Name: "Oak Desk Lamp", Category: "Home", Brand: "Hearth", Price: 59, Stock: 2, IsVisible: true, CreatedAt: d0.AddDate(0, 0, 3)},
		{ID: "e", Name: "Linen Throw", Category: "Home", Brand: "Hearth", Price: 45, DiscountPrice: ptr(39.0), Stock: 9, IsVisible: true, IsFromExternalSource: true, CreatedAt: d0.AddDate(0, 0, 4)},
	}
}

// useCatalog starts a catalog API over the fixture and points viper at it.
func useCatalog(t *testing.T, output string) string {
	t.Helper()

	e := echo.New()
	api := humaecho.New(e, huma.DefaultConfig("Test Catalog", "test"))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(catalog.NewMemory(fixtureProducts())))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	configure(t, srv.URL, output)
	return srv.URL
}

func configure(t *testing.T, server, output string) {
	t.Helper()
	viper.Set("server", server)
	viper.Set("output", output)
	viper.Set("log-level", "error")
	viper.Set("timeout", 2*time.Second)
	viper.Set("rate-limit", 0.0)
	viper.Set("page-size", discovery.DefaultPageSize)
	viper.Set("suggest-limit", discovery.DefaultSuggestLimit)
	viper.Set("debounce", time.Millisecond)
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func decodeSummary(t *testing.T, out string) listingSummary {
	t.Helper()
	var s listingSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	return s
}

func summaryIDs(s listingSummary) []string {
	ids := make([]string, 0, len(s.Products))
	for i := range s.Products {
		ids = append(ids, s.Products[i].ID)
	}
	return ids
}

func TestBrowse(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantIDs   []string
		wantLoc   string
		wantTotal int
	}{
		{
			name:      "server-side category",
			args:      []string{"--category", "Electronics"},
			wantIDs:   []string{"b", "a"},
			wantLoc:   "category=Electronics",
			wantTotal: 2,
		},
		{
			name:      "client-side facets and sort",
			args:      []string{"--discounted", "--sort", "price-low"},
			wantIDs:   []string{"e", "c", "a"},
			wantLoc:   "",
			wantTotal: 5,
		},
		{
			name:      "price range and stock",
			args:      []string{"--min-price", "50", "--max-price", "200", "--in-stock"},
			wantIDs:   []string{"d", "c"},
			wantLoc:   "",
			wantTotal: 5,
		},
		{
			name:      "location is canonicalised against the category list",
			args:      []string{"--location", "https://shop.example/products?category=home&onSale=true"},
			wantIDs:   []string{"e"},
			wantLoc:   "category=Home&onSale=true",
			wantTotal: 1,
		},
		{
			name:      "flags override the location",
			args:      []string{"--location", "?category=Home", "--source-only"},
			wantIDs:   []string{"e", "b"},
			wantLoc:   "category=external",
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCatalog(t, "json")

			out, err := run(t, browseCmd(), tt.args...)
			require.NoError(t, err)

			s := decodeSummary(t, out)
			assert.Equal(t, tt.wantIDs, summaryIDs(s))
			assert.Equal(t, tt.wantTotal, s.Total)
			assert.Equal(t, tt.wantLoc, s.Location)
			assert.Equal(t, 1, s.Page)
		})
	}
}

func TestBrowse_Table(t *testing.T) {
	useCatalog(t, "table")

	out, err := run(t, browseCmd(), "--brand", "Hearth")
	require.NoError(t, err)
	assert.Contains(t, out, "Linen Throw")
	assert.Contains(t, out, "$39.00 (was $45.00)")
	assert.Contains(t, out, "Page 1 of 1 (2 shown, 2 matching)")
	assert.Contains(t, out, "Location: ?brand=Hearth")
}

func TestBrowse_InvalidSort(t *testing.T) {
	useCatalog(t, "json")

	_, err := run(t, browseCmd(), "--sort", "cheapest")
	require.Error(t, err)
	require.ErrorIs(t, err, discovery.ErrInvalidFacetValue)
	assert.Contains(t, err.Error(), "--sort")
}

func TestBrowse_ServerDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()
	configure(t, url, "json")

	_, err := run(t, browseCmd(), "--category", "Home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running at "+url)
}

func TestSuggest(t *testing.T) {
	useCatalog(t, "table")

	out, err := run(t, suggestCmd(), "desk", "lamp")
	require.NoError(t, err)
	assert.Contains(t, out, "Oak Desk Lamp")
	assert.NotContains(t, out, "Linen Throw")
}

func TestSuggest_Pick(t *testing.T) {
	useCatalog(t, "json")

	out, err := run(t, suggestCmd(), "hearth", "--pick", "2")
	require.NoError(t, err)

	var p domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "d", p.ID)

	_, err = run(t, suggestCmd(), "lamp", "--pick", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only 1 suggestions")
}

func TestSuggest_NoMatches(t *testing.T) {
	useCatalog(t, "table")

	out, err := run(t, suggestCmd(), "zeppelin")
	require.NoError(t, err)
	assert.Equal(t, "No suggestions.\n", out)
}

func TestBrands(t *testing.T) {
	useCatalog(t, "table")

	out, err := run(t, brandsCmd())
	require.NoError(t, err)
	assert.Equal(t, "Hearth\nLumen\nSonance\nStride\n", out)
}

func TestWatch_Count(t *testing.T) {
	useCatalog(t, "table")

	out, err := run(t, watchCmd(), "--category", "Home", "--interval", "1s", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "--- "))
	assert.Equal(t, 2, strings.Count(out, "Oak Desk Lamp"))
}

func TestWatchLoop_SkipsStaleViews(t *testing.T) {
	updates := make(chan discovery.ListingView, 3)
	updates <- discovery.ListingView{Status: discovery.ListingError, Err: "newer", Seq: 2}
	updates <- discovery.ListingView{Status: discovery.ListingError, Err: "older", Seq: 1}
	updates <- discovery.ListingView{Status: discovery.ListingError, Err: "latest", Seq: 3}

	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)

	require.NoError(t, watchLoop(t.Context(), c, updates, 2))
	out := buf.String()
	assert.Contains(t, out, "refresh failed: newer")
	assert.Contains(t, out, "refresh failed: latest")
	assert.NotContains(t, out, "older")
	assert.Equal(t, 2, strings.Count(out, "--- "))
}

func TestWatch_InvalidInterval(t *testing.T) {
	useCatalog(t, "table")

	_, err := run(t, watchCmd(), "--interval", "0s")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "spd dev\n", out)
}
