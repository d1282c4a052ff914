package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

func suggestCmd() *cobra.Command {
	var pick int

	cmd := &cobra.Command{
		Use:   "suggest <text>",
		Short: "Show search suggestions for a query",
		Long: "Run the search-suggestion lookup for the given text and print the\n" +
			"suggestions a search box would show. --pick selects one of them.",
		Example: `  spd suggest lamp
  spd suggest "oak desk" --pick 1 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			s := discovery.NewSuggester(newClient(), discoveryOptions(log)...)
			defer s.Close()

			s.SetQuery(strings.Join(args, " "))
			s.Flush()
			s.Wait()

			state := s.State()
			if state.Status == discovery.SuggestError {
				return errors.New(state.Err)
			}

			if pick == 0 {
				return printSuggestions(cmd.OutOrStdout(), state)
			}

			p, ok := s.Select(pick - 1)
			if !ok {
				return fmt.Errorf("--pick %d: only %d suggestions", pick, len(state.Items))
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProductTable(cmd.OutOrStdout(), []domain.Product{p})
		},
	}

	cmd.Flags().IntVar(&pick, "pick", 0, "select the n-th suggestion (1-based)")
	return cmd
}
