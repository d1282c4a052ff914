// Package discovery implements the product discovery controller: a debounced
// type-ahead suggester, facet filtering, pagination with last-request-wins
// fetch reconciliation, and synchronisation with the navigation location.
//
// State transitions are pure functions on value types (FilterState.SetFacet,
// PageState.GoTo, Query.Type, Reduce). Suggester and Listing are the runtime
// shells around them: each serialises its handlers behind one mutex, runs
// catalog calls on goroutines, and applies a response only when the
// generation it was issued under is still current.
package discovery
