package projection

import (
	"time"

	"rpcfi-flow-lab/internal/domain"
)

// ExpandWeekly computes the weekly chart series for one (config, scenario,
// mode) triple. Each projected month expands into four weekly points, each
// carrying the monthly revenue divided by 4.33; splits, LP, and yields are
// recomputed per week with the weekly APY rate applied directly.
func ExpandWeekly(cfg *domain.Config, scenario, mode string) ([]domain.WeeklyPoint, error) {
	table, err := Run(cfg, scenario, mode)
	if err != nil {
		return nil, err
	}

	foundationLP := cfg.FoundationLP()
	nativePrice := cfg.TokenPrices[cfg.NativeToken]
	governancePrice := cfg.TokenPrices[cfg.GovernanceToken]
	weeklyRate := table.APY / 100 / WeeksPerYear

	points := make([]domain.WeeklyPoint, 0, len(table.Periods)*weeksEmittedPerMonth)
	developerLP := 0.0
	cumulativeDevYield := 0.0
	cumulativeFoundationYield := 0.0
	week := 0

	for _, period := range table.Periods {
		monthStart, err := time.Parse(domain.MonthLayout, period.Month)
		if err != nil {
			return nil, err
		}

		weeklyRevenue := period.Revenue / WeeksPerMonth
		for w := 0; w < weeksEmittedPerMonth; w++ {
			week++

			protocol := weeklyRevenue * cfg.ProtocolShare
			native := (weeklyRevenue - protocol) / 2
			governance := weeklyRevenue - protocol - native

			lpAdded := native + governance
			developerLP += lpAdded

			devYield := developerLP * weeklyRate
			foundationYield := foundationLP * weeklyRate
			cumulativeDevYield += devYield
			cumulativeFoundationYield += foundationYield

			points = append(points, domain.WeeklyPoint{
				Week: week,
				Date: monthStart.AddDate(0, 0, w*7),

				Revenue:           weeklyRevenue,
				NativeBuyback:     native,
				GovernanceBuyback: governance,
				NativeUnits:       native / nativePrice,
				GovernanceUnits:   governance / governancePrice,

				LPAdded:      lpAdded,
				DeveloperLP:  developerLP,
				FoundationLP: foundationLP,
				TotalLP:      developerLP + foundationLP,

				DeveloperYield:  devYield,
				FoundationYield: foundationYield,

				CumulativeDeveloperYield:  cumulativeDevYield,
				CumulativeFoundationYield: cumulativeFoundationYield,
			})
		}
	}

	return points, nil
}
