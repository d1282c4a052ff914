package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
)

func brandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the brands available as a listing facet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing := discovery.NewListing(newClient(), discoveryOptions(newLogger())...)
			defer listing.Close()

			brands, err := listing.Brands(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), brands)
			}
			for _, b := range brands {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), b); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
