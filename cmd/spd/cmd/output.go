package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tBRAND\tCATEGORY\tPRICE\tSTOCK\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\n",
			p.ID,
			truncate(p.Name, 40),
			p.Brand,
			p.Category,
			formatPrice(p),
			p.Stock,
		)
	}
	return tw.finish()
}

// listingSummary is the JSON shape of a listing page.
type listingSummary struct {
	Location   string           `json:"location"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
	Fetched    int              `json:"fetched"`
	Products   []domain.Product `json:"products"`
}

func summarize(v *discovery.ListingView) listingSummary {
	return listingSummary{
		Location:   discovery.EncodeLocation(v.Filter, v.Page.CurrentPage),
		Page:       v.Page.CurrentPage,
		TotalPages: v.Page.TotalPages,
		Total:      v.Total,
		Fetched:    v.Fetched,
		Products:   v.Products,
	}
}

func printListing(w io.Writer, v *discovery.ListingView) error {
	if jsonOutput() {
		return outputJSON(w, summarize(v))
	}

	if len(v.Products) == 0 {
		if _, err := fmt.Fprintln(w, "No products found."); err != nil {
			return err
		}
	} else if err := printProductTable(w, v.Products); err != nil {
		return err
	}

	s := summarize(v)
	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d shown, %d matching)\nLocation: ?%s\n",
		s.Page, s.TotalPages, len(s.Products), s.Total, s.Location)
	return err
}

func printSuggestions(w io.Writer, state discovery.SuggestionState) error {
	if jsonOutput() {
		return outputJSON(w, state.Items)
	}
	if len(state.Items) == 0 {
		_, err := fmt.Fprintln(w, "No suggestions.")
		return err
	}

	tw := newTabWriter(w)
	tw.writef("#\tNAME\tBRAND\tPRICE\n")
	for i := range state.Items {
		p := &state.Items[i]
		tw.writef("%d\t%s\t%s\t%s\n", i+1, truncate(p.Name, 40), p.Brand, formatPrice(p))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPrice(p *domain.Product) string {
	if p.Discounted() {
		return fmt.Sprintf("$%.2f (was $%.2f)", p.EffectivePrice(), p.Price)
	}
	return fmt.Sprintf("$%.2f", p.Price)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
