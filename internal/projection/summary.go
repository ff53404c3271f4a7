package projection

import "rpcfi-flow-lab/internal/domain"

// Summarize reduces a projection table to the headline metrics shown on the
// overview page.
func Summarize(table *domain.Table) domain.Summary {
	s := domain.Summary{
		Scenario: table.Scenario,
		Mode:     table.Mode,
		APY:      table.APY,
	}
	if len(table.Periods) == 0 {
		return s
	}

	for _, p := range table.Periods {
		s.TotalRevenue += p.Revenue
		s.TotalBuybacks += p.NativeBuyback + p.GovernanceBuyback
		s.AvgWeeklyDeveloperYield += p.DeveloperWeeklyYield
		s.AvgWeeklyFoundationYield += p.FoundationWeeklyYield
	}
	n := float64(len(table.Periods))
	s.AvgWeeklyDeveloperYield /= n
	s.AvgWeeklyFoundationYield /= n

	last := table.Periods[len(table.Periods)-1]
	s.FinalDeveloperLP = last.DeveloperLP
	s.FinalTotalLP = last.TotalLP
	s.TotalDeveloperYield = last.CumulativeDeveloperYield
	s.TotalFoundationYield = last.CumulativeFoundationYield

	return s
}
