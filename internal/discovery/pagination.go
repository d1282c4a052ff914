package discovery

import domain "github.com/donaldgifford/storefront-discovery/pkg/types"

// DefaultPageSize is the number of products requested per listing page.
const DefaultPageSize = 12

// PageState tracks the current page of a listing session and the generation
// of the most recent fetch.
type PageState struct {
	CurrentPage         int
	PageSize            int
	TotalPages          int
	LastFetchGeneration uint64
}

// NewPageState returns page 1 of 1 with the given page size.
func NewPageState(pageSize int) PageState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return PageState{
		CurrentPage: 1,
		PageSize:    pageSize,
		TotalPages:  1,
	}
}

// GoTo moves to page. It reports false, leaving p unchanged, when page is
// outside [1, TotalPages]; otherwise the caller must fetch.
func (p PageState) GoTo(page int) (PageState, bool) {
	if page < 1 || page > p.TotalPages {
		return p, false
	}
	p.CurrentPage = page
	return p, true
}

// Next is GoTo(CurrentPage+1).
func (p PageState) Next() (PageState, bool) {
	return p.GoTo(p.CurrentPage + 1)
}

// Prev is GoTo(CurrentPage-1).
func (p PageState) Prev() (PageState, bool) {
	return p.GoTo(p.CurrentPage - 1)
}

// OnFacetChanged resets to page 1 for server-side changes and reports
// whether a fetch is needed. Client-side and sort changes leave p as is.
func (p PageState) OnFacetChanged(class ChangeClass) (PageState, bool) {
	if class != ServerSide {
		return p, false
	}
	p.CurrentPage = 1
	return p, true
}

// BeginFetch takes the next fetch generation.
func (p PageState) BeginFetch() PageState {
	p.LastFetchGeneration++
	return p
}

// Query builds the fetch request for the current page.
func (p PageState) Query(params ServerParams) *domain.ProductQuery {
	q := params.Query(p.CurrentPage, p.PageSize)
	return &q
}

// Accepts reports whether a fetch issued under gen is still current.
func (p PageState) Accepts(gen uint64) bool {
	return gen == p.LastFetchGeneration
}

// Resolve applies the pagination of an accepted response.
func (p PageState) Resolve(pg domain.Pagination) PageState {
	p.TotalPages = max(1, pg.TotalPages)
	return p
}

// Rollback restores the last good page while keeping the current generation.
func (p PageState) Rollback(lastGood PageState) PageState {
	lastGood.LastFetchGeneration = p.LastFetchGeneration
	return lastGood
}
