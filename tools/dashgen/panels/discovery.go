package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// SuggestLookups charts debounced lookups against discarded and failed ones.
func SuggestLookups() *timeseries.PanelBuilder {
	return timeseriesPanel("Suggestion Lookups", "Lookups issued after debounce, stale discards and failures", "ops").
		WithTarget(PromQuery(`discovery:suggest_lookups:rate5m`, "lookups/s", "A")).
		WithTarget(PromQuery(`rate(discovery_suggest_stale_total[5m])`, "stale/s", "B")).
		WithTarget(PromQuery(`discovery:suggest_failures:rate5m`, "failures/s", "C")).
		Thresholds(ThresholdsGreenOnly())
}

// SuggestLatency charts suggestion lookup latency.
func SuggestLatency() *timeseries.PanelBuilder {
	return latencyPanel("Suggestion Latency", "Suggestion lookup duration percentiles",
		"discovery_suggest_lookup_duration_seconds_bucket")
}

// ListingFetches charts page fetches, stale discards and scheduled refreshes.
func ListingFetches() *timeseries.PanelBuilder {
	return timeseriesPanel("Listing Fetches", "Listing page fetches, stale discards and scheduled refreshes", "ops").
		WithTarget(PromQuery(`discovery:listing_fetches:rate5m`, "fetches/s", "A")).
		WithTarget(PromQuery(`rate(discovery_listing_stale_total[5m])`, "stale/s", "B")).
		WithTarget(PromQuery(`rate(discovery_listing_refreshes_total[5m])`, "refreshes/s", "C")).
		Thresholds(ThresholdsGreenOnly())
}

// ListingLatency charts listing fetch latency.
func ListingLatency() *timeseries.PanelBuilder {
	return latencyPanel("Listing Latency", "Listing page fetch duration percentiles",
		"discovery_listing_fetch_duration_seconds_bucket")
}

// ListingFailureRatio charts the share of listing fetches that failed.
func ListingFailureRatio() *timeseries.PanelBuilder {
	return timeseriesPanel("Listing Failure %", "Failed listing fetches as a percentage of all fetches", "percent").
		WithTarget(PromQuery(
			`discovery:listing_failures:rate5m / discovery:listing_fetches:rate5m * 100`,
			"failed %", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds())
}
