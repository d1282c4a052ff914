package discovery

import domain "github.com/donaldgifford/storefront-discovery/pkg/types"

// Action is a user intent applied to a listing session by Reduce.
type Action interface {
	isAction()
}

// SetFacetAction changes one facet.
type SetFacetAction struct {
	Facet Facet
	Value string
}

// ResetAllAction restores the default filter and refetches page 1.
type ResetAllAction struct{}

// GoToAction moves to an absolute page.
type GoToAction struct {
	Page int
}

// NextPageAction moves one page forward.
type NextPageAction struct{}

// PrevPageAction moves one page back.
type PrevPageAction struct{}

// RefreshAction refetches the current page without touching the filter.
type RefreshAction struct{}

// SeedAction replaces the filter and page, typically from a hydrated
// location, and fetches.
type SeedAction struct {
	Filter FilterState
	Page   int
}

func (SetFacetAction) isAction() {}
func (ResetAllAction) isAction() {}
func (GoToAction) isAction() {}
func (NextPageAction) isAction() {}
func (PrevPageAction) isAction() {}
func (RefreshAction) isAction() {}
func (SeedAction) isAction() {}

// Transition is the result of Reduce.
type Transition struct {
	Filter FilterState
	Page   PageState
	// Change is the class of a facet change, zero for page actions.
	Change ChangeClass
	// Fetch is the request to issue under Page.LastFetchGeneration, or nil
	// when the action needs no network.
	Fetch *domain.ProductQuery
}

// Reduce applies a to the given state. It never performs I/O.
func Reduce(f FilterState, p PageState, a Action) (Transition, error) {
	t := Transition{Filter: f, Page: p}
	fetch := false

	switch a := a.(type) {
	case SetFacetAction:
		next, class, err := f.SetFacet(a.Facet, a.Value)
		if err != nil {
			return t, err
		}
		t.Change = class
		if next == f {
			return t, nil
		}
		t.Filter = next
		t.Page, fetch = p.OnFacetChanged(class)

	case ResetAllAction:
		t.Filter, t.Change = f.ResetAll()
		t.Page, fetch = p.OnFacetChanged(t.Change)

	case GoToAction:
		t.Page, fetch = p.GoTo(a.Page)

	case NextPageAction:
		t.Page, fetch = p.Next()

	case PrevPageAction:
		t.Page, fetch = p.Prev()

	case RefreshAction:
		fetch = true

	case SeedAction:
		t.Filter = a.Filter
		t.Change = ServerSide
		t.Page.CurrentPage = max(1, a.Page)
		t.Page.TotalPages = max(t.Page.TotalPages, t.Page.CurrentPage)
		fetch = true
	}

	if fetch {
		t.Page = t.Page.BeginFetch()
		t.Fetch = t.Page.Query(t.Filter.ComputeServerParams())
	}
	return t, nil
}
