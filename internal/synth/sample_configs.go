package synth

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"rpcfi-flow-lab/internal/domain"
)

// chainPreset carries the per-chain numbers for sample config emission.
type chainPreset struct {
	ChainName        string
	NativeToken      string
	NativePrice      float64
	GovernancePrice  float64
	GrowthMultiplier float64
	FutureMultiplier float64
}

var samplePresets = map[string]chainPreset{
	"tron":     {ChainName: "Tron", NativeToken: "TRX", NativePrice: 0.12, GovernancePrice: 0.025, GrowthMultiplier: 1.4, FutureMultiplier: 2.0},
	"ethereum": {ChainName: "Ethereum", NativeToken: "ETH", NativePrice: 2500.0, GovernancePrice: 0.025, GrowthMultiplier: 1.2, FutureMultiplier: 1.8},
	"polygon":  {ChainName: "Polygon", NativeToken: "MATIC", NativePrice: 0.85, GovernancePrice: 0.025, GrowthMultiplier: 1.5, FutureMultiplier: 2.2},
}

// SampleConfigs renders one ready-to-load JSON config per known chain, using
// a moderate synthetic revenue series as historical data. Chains share the
// governance token and the default APY scenarios.
func SampleConfigs(rng *rand.Rand) (map[string]string, error) {
	// Chains draw from the shared rng in sorted order so the seed fully
	// determines every document.
	keys := make([]string, 0, len(samplePresets))
	for key := range samplePresets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(samplePresets))
	for _, key := range keys {
		series, err := Generate(Presets()[PresetModerate], rng)
		if err != nil {
			return nil, err
		}
		out[key] = renderSampleConfig(samplePresets[key], series)
	}
	return out, nil
}

func renderSampleConfig(preset chainPreset, series []domain.MonthlyRevenue) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString(fmt.Sprintf("  \"chain_name\": %q,\n", preset.ChainName))
	sb.WriteString(fmt.Sprintf("  \"native_token\": %q,\n", preset.NativeToken))
	sb.WriteString("  \"governance_token\": \"ANKR\",\n")
	sb.WriteString("  \"rpcfi_partner\": \"Ankr\",\n")
	sb.WriteString("  \"base_currency\": \"USD\",\n")
	sb.WriteString("  \"token_prices\": {\n")
	sb.WriteString(fmt.Sprintf("    %q: %g,\n", preset.NativeToken, preset.NativePrice))
	sb.WriteString(fmt.Sprintf("    \"ANKR\": %g\n", preset.GovernancePrice))
	sb.WriteString("  },\n")
	sb.WriteString("  \"initial_lp\": {\n")
	sb.WriteString(fmt.Sprintf("    %q: 50000,\n", preset.ChainName+" Foundation"))
	sb.WriteString("    \"Ankr Foundation\": 50000\n")
	sb.WriteString("  },\n")
	sb.WriteString(fmt.Sprintf("  \"growth_multiplier\": %g,\n", preset.GrowthMultiplier))
	sb.WriteString(fmt.Sprintf("  \"expected_future_growth_multiplier\": %g,\n", preset.FutureMultiplier))
	sb.WriteString("  \"apy_scenarios\": {\n")
	sb.WriteString("    \"worst\": 20.0,\n")
	sb.WriteString("    \"base\": 30.0,\n")
	sb.WriteString("    \"best\": 40.0\n")
	sb.WriteString("  },\n")

	sb.WriteString("  \"historical_data\": {\n")
	for i, entry := range series {
		sb.WriteString(fmt.Sprintf("    %q: %.1f", entry.Month, entry.Revenue))
		if i < len(series)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
	return sb.String()
}
