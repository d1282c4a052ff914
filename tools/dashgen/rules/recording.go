package rules

// RecordingRules pre-computes the rates used by the dashboard and alerts.
func RecordingRules() PrometheusRule {
	return newRule("discovery-recording-rules", RuleGroup{
		Name: "discovery-recording",
		Rules: []Rule{
			{Record: "discovery:http_requests:rate5m", Expr: `sum(rate(discovery_http_requests_total[5m]))`},
			{Record: "discovery:http_errors:rate5m", Expr: `sum(rate(discovery_http_requests_total{status=~"5.."}[5m]))`},
			{Record: "discovery:suggest_lookups:rate5m", Expr: `sum(rate(discovery_suggest_lookups_total[5m]))`},
			{Record: "discovery:suggest_failures:rate5m", Expr: `sum(rate(discovery_suggest_failures_total[5m]))`},
			{Record: "discovery:listing_fetches:rate5m", Expr: `sum(rate(discovery_listing_fetches_total[5m]))`},
			{Record: "discovery:listing_failures:rate5m", Expr: `sum(rate(discovery_listing_failures_total[5m]))`},
		},
	})
}
