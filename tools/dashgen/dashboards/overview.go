// Package dashboards assembles Grafana dashboards from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/storefront-discovery/tools/dashgen/panels"
)

// BuildOverview constructs the Storefront Discovery overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Storefront Discovery").
		Uid("discovery-overview").
		Tags([]string{"discovery", "storefront"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Catalog Server").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.InFlightStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Suggestions").
		WithPanel(panels.SuggestLookups()).
		WithPanel(panels.SuggestLatency()))

	b.WithRow(dashboard.NewRowBuilder("Listing").
		WithPanel(panels.ListingFetches()).
		WithPanel(panels.ListingLatency()).
		WithPanel(panels.ListingFailureRatio()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
