package tui

import (
	"context"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// Options configures Run.
type Options struct {
	// Location is the listing location the session starts from.
	Location string
	// Categories is the category domain. Nil accepts any category.
	Categories []string
	// Discovery options applied to both controllers.
	Discovery []discovery.Option
	// Program options, such as tea.WithAltScreen.
	Program []tea.ProgramOption
}

// wire builds the controllers for catalog with every notification routed
// to r.
func wire(catalog discovery.Catalog, r *relay, opts *Options) Controllers {
	suggestOpts := append(slices.Clone(opts.Discovery),
		discovery.WithSuggestionObserver(func(s discovery.SuggestionState) { r.push(SuggestionsMsg{State: s}) }),
		discovery.WithSelectHandler(func(p domain.Product) { r.push(SelectedMsg{Product: p}) }),
	)
	listingOpts := append(slices.Clone(opts.Discovery),
		discovery.WithListingObserver(func(v discovery.ListingView) { r.push(ListingMsg{View: v}) }),
	)

	router := discovery.NewMemoryRouter(opts.Location)
	listing := discovery.NewListing(catalog, listingOpts...)
	return Controllers{
		Suggester:  discovery.NewSuggester(catalog, suggestOpts...),
		Listing:    listing,
		Sync:       discovery.NewQuerySync(router, listing, opts.Categories, opts.Discovery...),
		Router:     router,
		Categories: opts.Categories,
	}
}

// Run starts an interactive session against catalog and blocks until the
// user quits. It returns the last listing location.
func Run(ctx context.Context, catalog discovery.Catalog, opts Options) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := newRelay()
	c := wire(catalog, r, &opts)
	defer c.Suggester.Close()
	defer c.Listing.Close()

	p := tea.NewProgram(New(c), append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.Program...)...)
	go r.run(ctx, p.Send)

	if _, err := p.Run(); err != nil {
		return c.Router.Location(), fmt.Errorf("running tui: %w", err)
	}
	return c.Router.Location(), nil
}
