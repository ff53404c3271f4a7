// Package reporting renders projection tables as CSV and Markdown files.
package reporting

import (
	"fmt"
	"strings"

	"rpcfi-flow-lab/internal/domain"
)

// RenderCSV renders the monthly projection table as a CSV string.
func RenderCSV(table *domain.Table) string {
	var sb strings.Builder

	sb.WriteString("month,revenue,protocol_share,native_buyback,governance_buyback,")
	sb.WriteString("native_units,governance_units,lp_added,developer_lp,foundation_lp,total_lp,")
	sb.WriteString("developer_weekly_yield,foundation_weekly_yield,")
	sb.WriteString("cumulative_developer_yield,cumulative_foundation_yield\n")

	for _, p := range table.Periods {
		sb.WriteString(fmt.Sprintf("%s,%.2f,%.2f,%.2f,%.2f,%.4f,%.4f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f\n",
			p.Month,
			p.Revenue,
			p.ProtocolShare,
			p.NativeBuyback,
			p.GovernanceBuyback,
			p.NativeUnits,
			p.GovernanceUnits,
			p.LPAdded,
			p.DeveloperLP,
			p.FoundationLP,
			p.TotalLP,
			p.DeveloperWeeklyYield,
			p.FoundationWeeklyYield,
			p.CumulativeDeveloperYield,
			p.CumulativeFoundationYield,
		))
	}

	return sb.String()
}

// RenderWeeklyCSV renders the weekly chart expansion as a CSV string.
func RenderWeeklyCSV(points []domain.WeeklyPoint) string {
	var sb strings.Builder

	sb.WriteString("week,date,revenue,native_buyback,governance_buyback,lp_added,")
	sb.WriteString("developer_lp,total_lp,developer_yield,foundation_yield\n")

	for _, w := range points {
		sb.WriteString(fmt.Sprintf("%d,%s,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f\n",
			w.Week,
			w.Date.Format("2006-01-02"),
			w.Revenue,
			w.NativeBuyback,
			w.GovernanceBuyback,
			w.LPAdded,
			w.DeveloperLP,
			w.TotalLP,
			w.DeveloperYield,
			w.FoundationYield,
		))
	}

	return sb.String()
}
