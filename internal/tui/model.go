// Package tui is an interactive storefront search built on Bubble Tea. It
// drives a Suggester for the search box and a Listing for the results, and
// writes the listing location through a QuerySync on explicit navigation.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// SuggestionsMsg carries a new suggestion state.
type SuggestionsMsg struct{ State discovery.SuggestionState }

// ListingMsg carries a new listing view.
type ListingMsg struct{ View discovery.ListingView }

// SelectedMsg reports a suggestion the user picked.
type SelectedMsg struct{ Product domain.Product }

type brandsMsg struct {
	brands []string
	err    error
}

type errMsg struct{ err error }

// Controllers are the discovery components a Model drives.
type Controllers struct {
	Suggester  *discovery.Suggester
	Listing    *discovery.Listing
	Sync       *discovery.QuerySync
	Router     discovery.Router
	Categories []string
}

// Model is the root Bubble Tea model.
type Model struct {
	c Controllers

	input       textinput.Model
	spinner     spinner.Model
	suggestions discovery.SuggestionState
	view        discovery.ListingView
	selected    *domain.Product

	categories []string // cycle order, "" first
	brands     []string // cycle order, "" first
	err        string
	width      int
}

// New creates a Model over c.
func New(c Controllers) Model {
	ti := textinput.New()
	ti.Placeholder = "Search products"
	ti.Prompt = "/ "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	categories := append([]string{""}, c.Categories...)
	categories = append(categories, discovery.SourceOnlyCategory)

	return Model{
		c:          c,
		input:      ti,
		spinner:    sp,
		categories: categories,
		brands:     []string{""},
		view:       c.Listing.View(),
		suggestions: discovery.SuggestionState{
			Status:      discovery.SuggestIdle,
			ActiveIndex: -1,
		},
	}
}

// Init mounts the listing from the router and loads the brand list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.mount,
		m.loadBrands,
	)
}

func (m Model) mount() tea.Msg {
	if err := m.c.Sync.Mount(); err != nil {
		return errMsg{err}
	}
	return nil
}

func (m Model) loadBrands() tea.Msg {
	brands, err := m.c.Listing.Brands(context.Background())
	return brandsMsg{brands: brands, err: err}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case SuggestionsMsg:
		if msg.State.Seq < m.suggestions.Seq {
			return m, nil
		}
		m.suggestions = msg.State
		return m, nil

	case ListingMsg:
		if msg.View.Seq < m.view.Seq {
			return m, nil
		}
		m.view = msg.View
		return m, nil

	case SelectedMsg:
		p := msg.Product
		m.selected = &p
		return m, nil

	case brandsMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.brands = append([]string{""}, msg.brands...)
		return m, nil

	case errMsg:
		m.err = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.c.Suggester.Clear()
		m.input.SetValue("")
		return m, nil
	case tea.KeyUp:
		m.c.Suggester.Navigate(discovery.NavPrev)
		return m, nil
	case tea.KeyDown:
		m.c.Suggester.Navigate(discovery.NavNext)
		return m, nil
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyTab:
		return m.act(m.c.Sync.NavigateCategory(next(m.categories, m.view.Filter.CategorySlot())))
	case tea.KeyCtrlB:
		return m.act(m.c.Sync.NavigateBrand(next(m.brands, m.view.Filter.Brand)))
	case tea.KeyCtrlS:
		return m.act(m.c.Listing.SetFacet(discovery.FacetSort, string(nextSort(m.view.Filter.SortKey))))
	case tea.KeyCtrlO:
		return m.act(m.c.Listing.SetFacet(discovery.FacetOnSale, fmt.Sprint(!m.view.Filter.OnSale)))
	case tea.KeyCtrlD:
		return m.act(m.c.Listing.SetFacet(discovery.FacetDiscounted, fmt.Sprint(!m.view.Filter.DiscountedOnly)))
	case tea.KeyCtrlR:
		return m.act(m.c.Listing.ResetAll())
	case tea.KeyPgDown:
		return m.act(m.c.Listing.Next())
	case tea.KeyPgUp:
		return m.act(m.c.Listing.Prev())
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.selected = nil
		m.c.Suggester.SetQuery(v)
	}
	return m, cmd
}

// handleEnter picks the highlighted suggestion, or submits the typed text
// as the listing search when none is highlighted.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.suggestions.ActiveIndex >= 0 {
		if _, ok := m.c.Suggester.SelectActive(); ok {
			m.input.SetValue("")
			return m, nil
		}
	}
	m.c.Suggester.Clear()
	return m.act(m.c.Sync.SubmitSearch(m.input.Value()))
}

func (m Model) act(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err.Error()
	} else {
		m.err = ""
	}
	return m, nil
}

func next(cycle []string, current string) string {
	i := slices.IndexFunc(cycle, func(s string) bool { return strings.EqualFold(s, current) })
	return cycle[(i+1)%len(cycle)]
}

func nextSort(current domain.SortKey) domain.SortKey {
	i := slices.Index(domain.SortKeys, current)
	return domain.SortKeys[(i+1)%len(domain.SortKeys)]
}
