package tui

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

const helpLine = "↑/↓ suggestions · enter select/search · tab category · ctrl+b brand · " +
	"ctrl+s sort · ctrl+o on sale · ctrl+d discounted · pgup/pgdn page · ctrl+r reset · ctrl+c quit"

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Storefront"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderSuggestions())
	b.WriteString("\n")

	if m.selected != nil {
		b.WriteString(boxStyle.Render(renderProduct(m.selected)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFacets())
	b.WriteString("\n\n")
	b.WriteString(m.renderListing())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render("error: " + m.err))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSuggestions() string {
	s := m.suggestions
	switch s.Status {
	case discovery.SuggestLoading:
		return m.spinner.View() + mutedStyle.Render(" searching")
	case discovery.SuggestError:
		return errorStyle.Render("suggestions unavailable: " + s.Err)
	case discovery.SuggestSuccess:
		if len(s.Items) == 0 {
			return mutedStyle.Render("no matches")
		}
		lines := make([]string, 0, len(s.Items))
		for i := range s.Items {
			line := fmt.Sprintf("%s  %s", s.Items[i].Name, mutedStyle.Render(s.Items[i].Brand))
			if i == s.ActiveIndex {
				line = activeStyle.Render(line)
			}
			lines = append(lines, "  "+line)
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

func (m Model) renderFacets() string {
	f := m.view.Filter
	category := f.CategorySlot()
	if category == "" {
		category = "all"
	}
	brand := f.Brand
	if brand == "" {
		brand = "all"
	}
	parts := []string{
		labelStyle.Render("category ") + category,
		labelStyle.Render("brand ") + brand,
		labelStyle.Render("sort ") + string(f.SortKey),
	}
	if f.SearchText != "" {
		parts = append(parts, labelStyle.Render("search ")+f.SearchText)
	}
	if f.OnSale {
		parts = append(parts, saleStyle.Render("on sale"))
	}
	if f.DiscountedOnly {
		parts = append(parts, saleStyle.Render("discounted"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderListing() string {
	v := m.view
	var b strings.Builder

	switch v.Status {
	case discovery.ListingLoading:
		b.WriteString(m.spinner.View() + mutedStyle.Render(" loading"))
		b.WriteString("\n")
	case discovery.ListingError:
		b.WriteString(errorStyle.Render("listing failed: " + v.Err))
		b.WriteString("\n")
	}

	if len(v.Products) == 0 && v.Status == discovery.ListingReady {
		b.WriteString(mutedStyle.Render("No products found."))
		b.WriteString("\n")
	}
	for i := range v.Products {
		p := &v.Products[i]
		fmt.Fprintf(&b, "%-36s %-10s %s\n", truncate(p.Name, 36), truncate(p.Brand, 10), price(p))
	}

	fmt.Fprintf(&b, "%s", mutedStyle.Render(fmt.Sprintf(
		"page %d/%d · %d matching · ?%s",
		v.Page.CurrentPage, v.Page.TotalPages, v.Total,
		discovery.EncodeLocation(v.Filter, v.Page.CurrentPage),
	)))
	return b.String()
}

func renderProduct(p *domain.Product) string {
	return fmt.Sprintf("%s\n%s · %s · %s", titleStyle.Render(p.Name), p.Brand, p.Category, price(p))
}

func price(p *domain.Product) string {
	if p.Discounted() {
		return saleStyle.Render(fmt.Sprintf("$%.2f", p.EffectivePrice())) +
			mutedStyle.Render(fmt.Sprintf(" $%.2f", p.Price))
	}
	return fmt.Sprintf("$%.2f", p.Price)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
