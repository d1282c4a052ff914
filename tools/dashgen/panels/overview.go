package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func probeStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(metric, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows the catalog server liveness probe.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz", "Catalog server liveness (1 = ok)", "discovery_healthz_up")
}

// ReadyzStat shows whether the catalog fixture has visible products.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz", "Catalog server readiness (1 = serving products)", "discovery_readyz_up")
}

// InFlightStat shows requests currently being served.
func InFlightStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("In Flight").
		Description("Catalog API requests currently being served").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(discovery_http_requests_in_flight)`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(20, 50)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat shows catalog server uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since the catalog server started").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, ServerJob),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
