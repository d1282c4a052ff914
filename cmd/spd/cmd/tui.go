package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-discovery/internal/tui"
	"github.com/donaldgifford/storefront-discovery/pkg/logger"
)

func tuiCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive search with live suggestions and a faceted listing",
		Long: "Open an interactive storefront: type to get debounced suggestions,\n" +
			"press enter to search, tab to change category and page with pgup/pgdn.\n" +
			"The final listing location is printed on exit.",
		Example: `  spd tui
  spd tui --location '?category=Home&onSale=true'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			// The terminal belongs to the UI; only errors are logged, to stderr.
			log := logger.New("error", logger.FormatText)

			categories, err := c.ListCategories(cmd.Context())
			if err != nil {
				categories = nil
			}

			loc, err := tui.Run(cmd.Context(), c, tui.Options{
				Location:   location,
				Categories: categories,
				Discovery:  discoveryOptions(log),
				Program:    []tea.ProgramOption{tea.WithAltScreen()},
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "?%s\n", loc)
			return err
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "listing location to start from")
	return cmd
}
