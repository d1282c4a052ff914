package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate charts catalog API requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Request Rate", "Catalog API requests per second", "reqps").
		WithTarget(PromQuery(`discovery:http_requests:rate5m`, "req/s", "A")).
		Thresholds(ThresholdsGreenOnly())
}

// LatencyPercentiles charts catalog API latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return latencyPanel("Latency Percentiles", "Catalog API request duration percentiles",
		"discovery_http_request_duration_seconds_bucket")
}

// ErrorRate charts the 5xx share of catalog API requests.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Error Rate %", "HTTP 5xx responses as a percentage of all requests", "percent").
		WithTarget(PromQuery(
			`discovery:http_errors:rate5m / discovery:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
