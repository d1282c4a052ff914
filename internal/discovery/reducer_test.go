package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

func pageAt(current, total int) discovery.PageState {
	p := discovery.NewPageState(discovery.DefaultPageSize)
	p.CurrentPage = current
	p.TotalPages = total
	p.LastFetchGeneration = 7
	return p
}

func TestPageState_GoTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    int
		wantPage  int
		wantFetch bool
	}{
		{name: "zero is ignored", target: 0, wantPage: 3, wantFetch: false},
		{name: "negative is ignored", target: -2, wantPage: 3, wantFetch: false},
		{name: "past last is ignored", target: 6, wantPage: 3, wantFetch: false},
		{name: "first", target: 1, wantPage: 1, wantFetch: true},
		{name: "last", target: 5, wantPage: 5, wantFetch: true},
		{name: "same page refetches", target: 3, wantPage: 3, wantFetch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := pageAt(3, 5)
			got, fetch := start.GoTo(tt.target)
			assert.Equal(t, tt.wantFetch, fetch)
			assert.Equal(t, tt.wantPage, got.CurrentPage)
			assert.Equal(t, start.LastFetchGeneration, got.LastFetchGeneration)
		})
	}
}

func TestPageState_NextPrevBoundaries(t *testing.T) {
	t.Parallel()

	last := pageAt(5, 5)
	got, fetch := last.Next()
	assert.False(t, fetch)
	assert.Equal(t, last, got)

	first := pageAt(1, 5)
	got, fetch = first.Prev()
	assert.False(t, fetch)
	assert.Equal(t, first, got)

	got, fetch = first.Next()
	assert.True(t, fetch)
	assert.Equal(t, 2, got.CurrentPage)
}

func TestPageState_ResolveAndRollback(t *testing.T) {
	t.Parallel()

	p := discovery.NewPageState(0)
	assert.Equal(t, discovery.DefaultPageSize, p.PageSize)

	p = p.BeginFetch()
	assert.True(t, p.Accepts(1))
	assert.False(t, p.Accepts(0))

	p = p.Resolve(domain.Pagination{TotalPages: 0})
	assert.Equal(t, 1, p.TotalPages)

	good := p.Resolve(domain.Pagination{TotalPages: 4})
	moved, ok := good.GoTo(3)
	require.True(t, ok)
	moved = moved.BeginFetch().BeginFetch()

	rolled := moved.Rollback(good)
	assert.Equal(t, 1, rolled.CurrentPage)
	assert.Equal(t, 4, rolled.TotalPages)
	assert.Equal(t, moved.LastFetchGeneration, rolled.LastFetchGeneration)
}

func TestReduce_FacetChanges(t *testing.T) {
	t.Parallel()

	electronics := discovery.DefaultFilterState()
	electronics.Category = "Electronics"

	tests := []struct {
		name       string
		action     discovery.Action
		wantPage   int
		wantFetch  bool
		wantChange discovery.ChangeClass
	}{
		{
			name:       "category change resets to page 1 and fetches",
			action:     discovery.SetFacetAction{Facet: discovery.FacetCategory, Value: "Fashion"},
			wantPage:   1,
			wantFetch:  true,
			wantChange: discovery.ServerSide,
		},
		{
			name:       "in-stock change keeps page without fetch",
			action:     discovery.SetFacetAction{Facet: discovery.FacetInStock, Value: "true"},
			wantPage:   3,
			wantFetch:  false,
			wantChange: discovery.ClientSide,
		},
		{
			name:       "sort change keeps page without fetch",
			action:     discovery.SetFacetAction{Facet: discovery.FacetSort, Value: "name"},
			wantPage:   3,
			wantFetch:  false,
			wantChange: discovery.SortOnly,
		},
		{
			name:       "unchanged server-side value does not refetch",
			action:     discovery.SetFacetAction{Facet: discovery.FacetCategory, Value: "Electronics"},
			wantPage:   3,
			wantFetch:  false,
			wantChange: discovery.ServerSide,
		},
		{
			name:       "reset always refetches page 1",
			action:     discovery.ResetAllAction{},
			wantPage:   1,
			wantFetch:  true,
			wantChange: discovery.ServerSide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := pageAt(3, 5)
			tr, err := discovery.Reduce(electronics, start, tt.action)
			require.NoError(t, err)

			assert.Equal(t, tt.wantChange, tr.Change)
			assert.Equal(t, tt.wantPage, tr.Page.CurrentPage)
			if !tt.wantFetch {
				assert.Nil(t, tr.Fetch)
				assert.Equal(t, start.LastFetchGeneration, tr.Page.LastFetchGeneration)
				return
			}

			require.NotNil(t, tr.Fetch)
			assert.Equal(t, start.LastFetchGeneration+1, tr.Page.LastFetchGeneration)
			assert.Equal(t, 1, tr.Fetch.Page)
			assert.Equal(t, discovery.DefaultPageSize, tr.Fetch.Limit)
		})
	}
}

func TestReduce_PageActions(t *testing.T) {
	t.Parallel()

	f := discovery.DefaultFilterState()
	f.Brand = "Acme"

	tests := []struct {
		name      string
		action    discovery.Action
		wantPage  int
		wantFetch bool
	}{
		{name: "goTo(0) is a no-op", action: discovery.GoToAction{Page: 0}, wantPage: 3},
		{name: "goTo(total+1) is a no-op", action: discovery.GoToAction{Page: 6}, wantPage: 3},
		{name: "goTo in range", action: discovery.GoToAction{Page: 4}, wantPage: 4, wantFetch: true},
		{name: "next", action: discovery.NextPageAction{}, wantPage: 4, wantFetch: true},
		{name: "prev", action: discovery.PrevPageAction{}, wantPage: 2, wantFetch: true},
		{name: "refresh", action: discovery.RefreshAction{}, wantPage: 3, wantFetch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := pageAt(3, 5)
			tr, err := discovery.Reduce(f, start, tt.action)
			require.NoError(t, err)
			assert.Equal(t, f, tr.Filter)
			assert.Equal(t, tt.wantPage, tr.Page.CurrentPage)

			if !tt.wantFetch {
				assert.Nil(t, tr.Fetch)
				assert.Equal(t, start, tr.Page)
				return
			}
			require.NotNil(t, tr.Fetch)
			assert.Equal(t, &domain.ProductQuery{
				Page:  tt.wantPage,
				Limit: discovery.DefaultPageSize,
				Brand: "Acme",
			}, tr.Fetch)
		})
	}
}

func TestReduce_Seed(t *testing.T) {
	t.Parallel()

	f := discovery.DefaultFilterState()
	f.Category = "Fashion"

	tr, err := discovery.Reduce(
		discovery.DefaultFilterState(),
		discovery.NewPageState(discovery.DefaultPageSize),
		discovery.SeedAction{Filter: f, Page: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, f, tr.Filter)
	assert.Equal(t, 2, tr.Page.CurrentPage)
	assert.Equal(t, 2, tr.Page.TotalPages)
	require.NotNil(t, tr.Fetch)
	assert.Equal(t, &domain.ProductQuery{
		Page:     2,
		Limit:    discovery.DefaultPageSize,
		Category: "Fashion",
	}, tr.Fetch)
}

func TestReduce_InvalidFacetLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	f := discovery.DefaultFilterState()
	p := pageAt(2, 4)

	tr, err := discovery.Reduce(f, p, discovery.SetFacetAction{Facet: "color", Value: "red"})
	require.ErrorIs(t, err, discovery.ErrUnknownFacet)
	assert.Equal(t, f, tr.Filter)
	assert.Equal(t, p, tr.Page)
	assert.Nil(t, tr.Fetch)
}
