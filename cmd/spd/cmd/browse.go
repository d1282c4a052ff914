package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	apiclient "github.com/donaldgifford/storefront-discovery/internal/api/client"
	"github.com/donaldgifford/storefront-discovery/internal/discovery"
)

// facetFlags maps facet flags to the facets they set, in the order they are
// applied.
var facetFlags = []struct {
	flag  string
	facet discovery.Facet
}{
	{"category", discovery.FacetCategory},
	{"source-only", discovery.FacetSourceOnly},
	{"brand", discovery.FacetBrand},
	{"search", discovery.FacetSearch},
	{"on-sale", discovery.FacetOnSale},
	{"min-price", discovery.FacetPriceMin},
	{"max-price", discovery.FacetPriceMax},
	{"in-stock", discovery.FacetInStock},
	{"discounted", discovery.FacetDiscounted},
	{"featured", discovery.FacetFeatured},
	{"sort", discovery.FacetSort},
}

func addFacetFlags(fs *pflag.FlagSet) {
	fs.String("category", "", "category to list")
	fs.Bool("source-only", false, "only products from the external source")
	fs.String("brand", "", "brand to list")
	fs.String("search", "", "free-text search")
	fs.Bool("on-sale", false, "only discounted products (server-side)")
	fs.Float64("min-price", 0, "lowest effective price shown")
	fs.Float64("max-price", discovery.DefaultPriceMax, "highest effective price shown")
	fs.Bool("in-stock", false, "hide products without stock")
	fs.Bool("discounted", false, "hide products without a discount price (client-side)")
	fs.Bool("featured", false, "only featured products")
	fs.String("sort", "newest", "sort order (newest, price-low, price-high, name)")
	fs.String("location", "", "start from a listing location such as '?category=Home&page=2'")
	fs.Int("page", 0, "page to show (default: the location's page, else 1)")
}

// initialListing builds the filter and page a listing command starts from:
// the --location query first, then every facet flag the user set.
func initialListing(
	ctx context.Context,
	fs *pflag.FlagSet,
	c *apiclient.Client,
	log *slog.Logger,
) (discovery.FilterState, int, error) {
	f := discovery.DefaultFilterState()
	page := 1

	if loc, _ := fs.GetString("location"); loc != "" {
		categories, err := c.ListCategories(ctx)
		if err != nil {
			log.Warn("category list unavailable, accepting any category", "error", err)
			categories = nil
		}
		var p discovery.PageState
		f, p = discovery.Hydrate(loc, categories)
		page = p.CurrentPage
	}

	for _, ff := range facetFlags {
		if !fs.Changed(ff.flag) {
			continue
		}
		var err error
		f, _, err = f.SetFacet(ff.facet, fs.Lookup(ff.flag).Value.String())
		if err != nil {
			return f, 0, fmt.Errorf("--%s: %w", ff.flag, err)
		}
	}

	if fs.Changed("page") {
		page, _ = fs.GetInt("page")
	}
	return f, max(page, 1), nil
}

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Show one page of a faceted product listing",
		Long: "Fetch one listing page with server-side facets (category, brand,\n" +
			"search, source, sale) and apply the client-side facets (price range,\n" +
			"stock, discount, featured, sort) to it. The listing location printed\n" +
			"below the table can be passed back with --location.",
		Example: `  # First page of a category
  spd browse --category Electronics

  # Discounted products under $100, cheapest first
  spd browse --discounted --max-price 100 --sort price-low

  # Resume a shared location
  spd browse --location '?category=Home&brand=Hearth&page=2'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()
			c := newClient()

			f, page, err := initialListing(cmd.Context(), cmd.Flags(), c, log)
			if err != nil {
				return err
			}

			listing := discovery.NewListing(c, discoveryOptions(log)...)
			defer listing.Close()

			if err := listing.Seed(f, page); err != nil {
				return err
			}
			listing.Wait()

			v := listing.View()
			if v.Status == discovery.ListingError {
				return errors.New(v.Err)
			}
			return printListing(cmd.OutOrStdout(), &v)
		},
	}

	addFacetFlags(cmd.Flags())
	return cmd
}
