package main

import "errors"

// KnownMetrics lists the series the generated dashboard and rules may
// reference: the discovery_* metrics exported by catalog-server and
// spd watch, the recording rules built from them, and standard process
// metrics.
var KnownMetrics = map[string]bool{
	// catalog-server HTTP.
	"discovery_http_request_duration_seconds_bucket": true,
	"discovery_http_requests_total":                  true,
	"discovery_http_requests_in_flight":              true,
	"discovery_healthz_up":                           true,
	"discovery_readyz_up":                            true,

	// Suggestions.
	"discovery_suggest_lookups_total":                  true,
	"discovery_suggest_stale_total":                    true,
	"discovery_suggest_failures_total":                 true,
	"discovery_suggest_lookup_duration_seconds_bucket": true,

	// Listing.
	"discovery_listing_fetches_total":                 true,
	"discovery_listing_stale_total":                   true,
	"discovery_listing_failures_total":                true,
	"discovery_listing_refreshes_total":               true,
	"discovery_listing_fetch_duration_seconds_bucket": true,

	// Recording rules.
	"discovery:http_requests:rate5m":    true,
	"discovery:http_errors:rate5m":      true,
	"discovery:suggest_lookups:rate5m":  true,
	"discovery:suggest_failures:rate5m": true,
	"discovery:listing_fetches:rate5m":  true,
	"discovery:listing_failures:rate5m": true,

	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig writes every artifact under ../../deploy.
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
