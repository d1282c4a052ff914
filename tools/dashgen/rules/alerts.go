package rules

// AlertRules returns the operational alerts for the catalog server and
// the discovery clients.
func AlertRules() PrometheusRule {
	return newRule("discovery-alerts", RuleGroup{
		Name: "discovery-alerts",
		Rules: []Rule{
			alert("CatalogServerDown",
				`absent(up{job="catalog-server"})`, "2m", "critical",
				"Catalog server is down",
				"The catalog-server job has been absent for more than 2 minutes."),
			alert("CatalogNotReady",
				`discovery_readyz_up == 0`, "2m", "critical",
				"Catalog server has no visible products",
				"The readiness probe has reported an empty catalog for more than 2 minutes."),
			alert("CatalogHighErrorRate",
				`discovery:http_errors:rate5m / discovery:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on the catalog API",
				"More than 5% of catalog API requests returned 5xx over the last 5 minutes."),
			alert("SuggestionFailures",
				`discovery:suggest_failures:rate5m / discovery:suggest_lookups:rate5m > 0.1`, "5m", "warning",
				"Suggestion lookups are failing",
				"More than 10% of suggestion lookups failed over the last 5 minutes."),
			alert("ListingFailures",
				`discovery:listing_failures:rate5m / discovery:listing_fetches:rate5m > 0.1`, "5m", "warning",
				"Listing fetches are failing",
				"More than 10% of listing fetches failed over the last 5 minutes."),
		},
	})
}
