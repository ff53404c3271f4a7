// Package projection computes deterministic RPCfi flow projections: revenue
// splits, token buybacks, LP growth, and yield payouts over a fixed horizon.
package projection

import (
	"time"

	"rpcfi-flow-lab/internal/config"
	"rpcfi-flow-lab/internal/domain"
)

// Yield accrual constants
const (
	// WeeksPerMonth converts between monthly and weekly amounts.
	WeeksPerMonth = 4.33

	// WeeksPerYear converts an annual APY into a weekly rate.
	WeeksPerYear = 52

	// weeksEmittedPerMonth is how many weekly chart points each projected
	// month expands into.
	weeksEmittedPerMonth = 4
)

// Run computes the projection table for one (config, scenario, mode) triple.
// It is a pure function: no state survives between calls, and identical
// inputs produce identical output. An empty mode falls back to the config's
// default mode.
func Run(cfg *domain.Config, scenario, mode string) (*domain.Table, error) {
	if mode == "" {
		mode = cfg.Mode
	}
	if !domain.ValidMode(mode) {
		return nil, &config.Error{Kind: config.KindInvalidType, Field: "mode", Value: mode}
	}

	apy, ok := cfg.APYScenarios[scenario]
	if !ok {
		return nil, config.UnknownScenarioError(scenario)
	}

	start, err := time.Parse(domain.MonthLayout, cfg.ProjectionStart)
	if err != nil {
		return nil, &config.Error{Kind: config.KindInvalidType, Field: "projection_start", Value: cfg.ProjectionStart}
	}

	revenues := monthlyRevenues(cfg, mode)
	foundationLP := cfg.FoundationLP()
	nativePrice := cfg.TokenPrices[cfg.NativeToken]
	governancePrice := cfg.TokenPrices[cfg.GovernanceToken]
	weeklyRate := apy / 100 / WeeksPerYear

	periods := make([]domain.Period, len(revenues))
	developerLP := 0.0
	cumulativeDevYield := 0.0
	cumulativeFoundationYield := 0.0

	for i, revenue := range revenues {
		protocol := revenue * cfg.ProtocolShare
		// Remainder splits evenly between the two buyback pools so the
		// three shares always sum back to the period revenue.
		native := (revenue - protocol) / 2
		governance := revenue - protocol - native

		lpAdded := native + governance
		developerLP += lpAdded

		devWeekly := developerLP * weeklyRate
		foundationWeekly := foundationLP * weeklyRate
		devMonthly := devWeekly * WeeksPerMonth
		foundationMonthly := foundationWeekly * WeeksPerMonth

		cumulativeDevYield += devMonthly
		cumulativeFoundationYield += foundationMonthly

		periods[i] = domain.Period{
			Index: i,
			Month: start.AddDate(0, i, 0).Format(domain.MonthLayout),

			Revenue:           revenue,
			ProtocolShare:     protocol,
			NativeBuyback:     native,
			GovernanceBuyback: governance,

			NativeUnits:     native / nativePrice,
			GovernanceUnits: governance / governancePrice,

			LPAdded:      lpAdded,
			DeveloperLP:  developerLP,
			FoundationLP: foundationLP,
			TotalLP:      developerLP + foundationLP,

			DeveloperWeeklyYield:   devWeekly,
			FoundationWeeklyYield:  foundationWeekly,
			DeveloperMonthlyYield:  devMonthly,
			FoundationMonthlyYield: foundationMonthly,

			CumulativeDeveloperYield:  cumulativeDevYield,
			CumulativeFoundationYield: cumulativeFoundationYield,
		}
	}

	return &domain.Table{
		ChainName:       cfg.ChainName,
		NativeToken:     cfg.NativeToken,
		GovernanceToken: cfg.GovernanceToken,
		Scenario:        scenario,
		Mode:            mode,
		APY:             apy,
		Periods:         periods,
	}, nil
}

// monthlyRevenues produces the gross revenue series for the projection
// horizon according to the selected mode.
func monthlyRevenues(cfg *domain.Config, mode string) []float64 {
	out := make([]float64, cfg.HorizonMonths)
	last := cfg.LastHistoricalRevenue()

	if mode == domain.ModeFlat {
		for i := range out {
			out[i] = last
		}
		return out
	}

	for i := range out {
		out[i] = last * growthFactor(i, len(out), cfg.GrowthMultiplier, cfg.ExpectedFutureGrowthMultiplier)
	}
	return out
}

// growthFactor interpolates linearly from the start multiplier at period 0
// to the target multiplier at the final period. Equal multipliers degenerate
// to a constant, still computed through the same formula so the curve stays
// uniform. A single-period horizon pins t to 0.
func growthFactor(index, total int, start, target float64) float64 {
	if total <= 1 {
		return start
	}
	t := float64(index) / float64(total-1)
	return start + t*(target-start)
}
