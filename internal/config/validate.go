package config

import (
	"fmt"
	"time"

	"rpcfi-flow-lab/internal/domain"
)

// validate checks a parsed raw config and builds the immutable domain.Config.
// The first violation wins; nothing is silently corrected except documented
// defaults for optional fields.
func validate(raw *rawConfig) (*domain.Config, error) {
	if raw.ChainName == "" {
		return nil, missingField("chain_name")
	}
	if raw.NativeToken == "" {
		return nil, missingField("native_token")
	}
	if raw.GovernanceToken == "" {
		return nil, missingField("governance_token")
	}

	if len(raw.TokenPrices) == 0 {
		return nil, missingField("token_prices")
	}
	for symbol, price := range raw.TokenPrices {
		if price <= 0 {
			// Prices divide buyback dollars into units; zero must be
			// rejected here rather than dividing downstream.
			return nil, outOfRange("token_prices."+symbol, price)
		}
	}
	for _, symbol := range []string{raw.NativeToken, raw.GovernanceToken} {
		if _, ok := raw.TokenPrices[symbol]; !ok {
			return nil, missingField("token_prices." + symbol)
		}
	}

	if raw.InitialLP == nil {
		return nil, missingField("initial_lp")
	}
	for name, value := range raw.InitialLP {
		if value < 0 {
			return nil, outOfRange("initial_lp."+name, value)
		}
	}

	if raw.GrowthMultiplier == nil {
		return nil, missingField("growth_multiplier")
	}
	if *raw.GrowthMultiplier < 0 {
		return nil, outOfRange("growth_multiplier", *raw.GrowthMultiplier)
	}
	if raw.ExpectedFutureGrowthMultiplier == nil {
		return nil, missingField("expected_future_growth_multiplier")
	}
	if *raw.ExpectedFutureGrowthMultiplier < 0 {
		return nil, outOfRange("expected_future_growth_multiplier", *raw.ExpectedFutureGrowthMultiplier)
	}

	protocolShare := domain.DefaultProtocolShare
	if raw.ProtocolShare != nil {
		protocolShare = *raw.ProtocolShare
		if protocolShare < 0 || protocolShare >= 1 {
			return nil, outOfRange("protocol_share", protocolShare)
		}
	}

	projectionStart := raw.ProjectionStart
	if projectionStart == "" {
		projectionStart = domain.DefaultProjectionStart
	}
	if _, err := time.Parse(domain.MonthLayout, projectionStart); err != nil {
		return nil, invalidType("projection_start", projectionStart)
	}

	horizon := domain.DefaultHorizonMonths
	if raw.HorizonMonths != nil {
		horizon = *raw.HorizonMonths
		if horizon <= 0 {
			return nil, outOfRange("horizon_months", horizon)
		}
	}

	mode := raw.Mode
	if mode == "" {
		mode = domain.ModeGrowth
	}
	if !domain.ValidMode(mode) {
		return nil, invalidType("mode", mode)
	}

	scenarios := raw.APYScenarios
	if len(scenarios) == 0 {
		scenarios = domain.DefaultAPYScenarios()
	}
	for name, apy := range scenarios {
		if apy < 0 {
			return nil, outOfRange("apy_scenarios."+name, apy)
		}
	}

	if len(raw.HistoricalData) == 0 {
		return nil, missingField("historical_data")
	}
	var prev time.Time
	for i, entry := range raw.HistoricalData {
		month, err := time.Parse(domain.MonthLayout, entry.Month)
		if err != nil {
			return nil, invalidType(fmt.Sprintf("historical_data[%d]", i), entry.Month)
		}
		if entry.Revenue < 0 {
			return nil, outOfRange("historical_data."+entry.Month, entry.Revenue)
		}
		if i > 0 && !month.After(prev) {
			return nil, outOfRange("historical_data."+entry.Month, "out of chronological order")
		}
		prev = month
	}

	return &domain.Config{
		ChainName:       raw.ChainName,
		NativeToken:     raw.NativeToken,
		GovernanceToken: raw.GovernanceToken,
		RPCfiPartner:    raw.RPCfiPartner,
		BaseCurrency:    raw.BaseCurrency,

		TokenPrices: raw.TokenPrices,
		InitialLP:   raw.InitialLP,

		GrowthMultiplier:               *raw.GrowthMultiplier,
		ExpectedFutureGrowthMultiplier: *raw.ExpectedFutureGrowthMultiplier,

		ProtocolShare:   protocolShare,
		ProjectionStart: projectionStart,
		HorizonMonths:   horizon,
		Mode:            mode,

		APYScenarios:   scenarios,
		HistoricalData: raw.HistoricalData,
	}, nil
}
