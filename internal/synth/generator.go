// Package synth generates synthetic RPC revenue series and sample chain
// configs for demos and local runs.
package synth

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"rpcfi-flow-lab/internal/domain"
)

// Params controls one synthetic revenue series.
type Params struct {
	StartMonth  string  // YYYY-MM, inclusive
	EndMonth    string  // YYYY-MM, inclusive
	BaseRevenue float64 // base monthly revenue in USD
	GrowthRate  float64 // monthly growth rate (0 = flat)
	Volatility  float64 // stddev of the multiplicative noise (0.05 = 5%)
}

// Preset scenario names
const (
	PresetConservative = "conservative"
	PresetModerate     = "moderate"
	PresetAggressive   = "aggressive"
	PresetVolatile     = "volatile"
)

// Presets returns the built-in generator scenarios over the default window.
func Presets() map[string]Params {
	return map[string]Params{
		PresetConservative: {StartMonth: "2025-04", EndMonth: "2025-09", BaseRevenue: 12000, Volatility: 0.02},
		PresetModerate:     {StartMonth: "2025-04", EndMonth: "2025-09", BaseRevenue: 15000, Volatility: 0.05},
		PresetAggressive:   {StartMonth: "2025-04", EndMonth: "2025-09", BaseRevenue: 20000, Volatility: 0.08},
		PresetVolatile:     {StartMonth: "2025-04", EndMonth: "2025-09", BaseRevenue: 15000, Volatility: 0.15},
	}
}

// Generate produces a monthly revenue series: base revenue compounded by the
// growth rate, multiplied by Gaussian noise around 1.0, floored at half the
// base revenue, and rounded to the nearest thousand. The rng seed fully
// determines the output.
func Generate(p Params, rng *rand.Rand) ([]domain.MonthlyRevenue, error) {
	start, err := time.Parse(domain.MonthLayout, p.StartMonth)
	if err != nil {
		return nil, fmt.Errorf("start month: %w", err)
	}
	end, err := time.Parse(domain.MonthLayout, p.EndMonth)
	if err != nil {
		return nil, fmt.Errorf("end month: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end month %s precedes start month %s", p.EndMonth, p.StartMonth)
	}

	var out []domain.MonthlyRevenue
	for i, current := 0, start; !current.After(end); i, current = i+1, current.AddDate(0, 1, 0) {
		revenue := p.BaseRevenue * math.Pow(1+p.GrowthRate, float64(i))
		revenue *= 1 + rng.NormFloat64()*p.Volatility
		revenue = math.Max(revenue, p.BaseRevenue*0.5)
		revenue = math.Round(revenue/1000) * 1000

		out = append(out, domain.MonthlyRevenue{
			Month:   current.Format(domain.MonthLayout),
			Revenue: revenue,
		})
	}
	return out, nil
}

// RenderCSV renders a revenue series in the generator's CSV layout.
func RenderCSV(series []domain.MonthlyRevenue) string {
	var sb strings.Builder
	sb.WriteString("Month,RPC_Revenue_USD\n")
	for _, entry := range series {
		sb.WriteString(fmt.Sprintf("%s,%.0f\n", entry.Month, entry.Revenue))
	}
	return sb.String()
}

// RenderJSON renders a revenue series as an ordered JSON object keyed by
// month, the layout the config loader's historical_data field consumes.
func RenderJSON(series []domain.MonthlyRevenue) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, entry := range series {
		sb.WriteString(fmt.Sprintf("  %q: %.1f", entry.Month, entry.Revenue))
		if i < len(series)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// TotalRevenue sums a revenue series.
func TotalRevenue(series []domain.MonthlyRevenue) float64 {
	total := 0.0
	for _, entry := range series {
		total += entry.Revenue
	}
	return total
}
