package reporting

import (
	"fmt"
	"strings"
	"time"

	"rpcfi-flow-lab/internal/domain"
)

// RenderMarkdown renders a projection run as a Markdown report.
func RenderMarkdown(table *domain.Table, summary domain.Summary, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s RPCfi Flow Projection\n\n", table.ChainName))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Scenario: %s (%.0f%% APY) | Mode: %s | Pair: %s/%s\n\n",
		table.Scenario, table.APY, table.Mode, table.NativeToken, table.GovernanceToken))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total RPC Revenue | $%.0f |\n", summary.TotalRevenue))
	sb.WriteString(fmt.Sprintf("| Total Buybacks | $%.0f |\n", summary.TotalBuybacks))
	sb.WriteString(fmt.Sprintf("| Final Developer LP | $%.0f |\n", summary.FinalDeveloperLP))
	sb.WriteString(fmt.Sprintf("| Final LP TVL | $%.0f |\n", summary.FinalTotalLP))
	sb.WriteString(fmt.Sprintf("| Total Developer Yield | $%.0f |\n", summary.TotalDeveloperYield))
	sb.WriteString(fmt.Sprintf("| Total Foundation Yield | $%.0f |\n", summary.TotalFoundationYield))
	sb.WriteString(fmt.Sprintf("| Avg Weekly Developer Yield | $%.2f |\n", summary.AvgWeeklyDeveloperYield))
	sb.WriteString(fmt.Sprintf("| Avg Weekly Foundation Yield | $%.2f |\n", summary.AvgWeeklyFoundationYield))
	sb.WriteString("\n")

	sb.WriteString("## Monthly Projection\n\n")
	sb.WriteString(fmt.Sprintf("| Month | Revenue | Protocol | %s Buyback | %s Buyback | LP Added | Dev LP | Total TVL | Dev Yield/wk | Foundation Yield/wk |\n",
		table.NativeToken, table.GovernanceToken))
	sb.WriteString("|-------|---------|----------|------------|------------|----------|--------|-----------|--------------|---------------------|\n")
	for _, p := range table.Periods {
		sb.WriteString(fmt.Sprintf("| %s | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f | $%.0f | $%.2f | $%.2f |\n",
			p.Month,
			p.Revenue,
			p.ProtocolShare,
			p.NativeBuyback,
			p.GovernanceBuyback,
			p.LPAdded,
			p.DeveloperLP,
			p.TotalLP,
			p.DeveloperWeeklyYield,
			p.FoundationWeeklyYield,
		))
	}
	sb.WriteString("\n")

	return sb.String()
}
