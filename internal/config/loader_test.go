package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpcfi-flow-lab/internal/domain"
)

const validJSON = `{
  "chain_name": "Avalanche",
  "native_token": "AVAX",
  "governance_token": "NEURA",
  "rpcfi_partner": "Ankr",
  "base_currency": "USD",
  "token_prices": {"AVAX": 25.0, "NEURA": 0.05},
  "initial_lp": {"Avalanche Foundation": 50000, "Neura Foundation": 50000},
  "growth_multiplier": 1.4,
  "expected_future_growth_multiplier": 2.0,
  "apy_scenarios": {"worst": 20.0, "base": 30.0, "best": 40.0},
  "historical_data": {
    "2025-04": 15000,
    "2025-05": 18000,
    "2025-06": 22000,
    "2025-07": 25000,
    "2025-08": 30000,
    "2025-09": 35000
  }
}`

func TestParseJSON_Valid(t *testing.T) {
	cfg, err := ParseJSON([]byte(validJSON))
	require.NoError(t, err)

	assert.Equal(t, "Avalanche", cfg.ChainName)
	assert.Equal(t, "AVAX", cfg.NativeToken)
	assert.Equal(t, "NEURA", cfg.GovernanceToken)
	assert.Equal(t, 1.4, cfg.GrowthMultiplier)
	assert.Equal(t, 2.0, cfg.ExpectedFutureGrowthMultiplier)
	assert.Equal(t, 30.0, cfg.APYScenarios[domain.ScenarioBase])
	assert.Equal(t, 100000.0, cfg.FoundationLP())
}

func TestParseJSON_HistoricalOrderPreserved(t *testing.T) {
	cfg, err := ParseJSON([]byte(validJSON))
	require.NoError(t, err)

	require.Len(t, cfg.HistoricalData, 6)
	assert.Equal(t, "2025-04", cfg.HistoricalData[0].Month)
	assert.Equal(t, "2025-09", cfg.HistoricalData[5].Month)
	assert.Equal(t, 35000.0, cfg.LastHistoricalRevenue())
}

func TestParseJSON_DefaultsApplied(t *testing.T) {
	cfg, err := ParseJSON([]byte(`{
	  "chain_name": "Tron",
	  "native_token": "TRX",
	  "governance_token": "ANKR",
	  "token_prices": {"TRX": 0.12, "ANKR": 0.025},
	  "initial_lp": {"Tron Foundation": 50000},
	  "growth_multiplier": 1.0,
	  "expected_future_growth_multiplier": 1.0,
	  "historical_data": {"2025-09": 10000}
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultProtocolShare, cfg.ProtocolShare)
	assert.Equal(t, domain.DefaultProjectionStart, cfg.ProjectionStart)
	assert.Equal(t, domain.DefaultHorizonMonths, cfg.HorizonMonths)
	assert.Equal(t, domain.ModeGrowth, cfg.Mode)
	assert.Equal(t, domain.DefaultAPYScenarios(), cfg.APYScenarios)
}

func TestParseYAML_Valid(t *testing.T) {
	cfg, err := ParseYAML([]byte(`
chain_name: Polygon
native_token: MATIC
governance_token: ANKR
token_prices:
  MATIC: 0.85
  ANKR: 0.025
initial_lp:
  Polygon Foundation: 50000
growth_multiplier: 1.5
expected_future_growth_multiplier: 2.2
historical_data:
  "2025-07": 20000
  "2025-08": 24000
  "2025-09": 28000
`))
	require.NoError(t, err)

	assert.Equal(t, "Polygon", cfg.ChainName)
	require.Len(t, cfg.HistoricalData, 3)
	assert.Equal(t, "2025-07", cfg.HistoricalData[0].Month)
	assert.Equal(t, 28000.0, cfg.LastHistoricalRevenue())
}

func TestParseJSON_TypeMismatch(t *testing.T) {
	_, err := ParseJSON([]byte(`{"chain_name": 42}`))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidType), "got %v", err)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(validJSON), 0o644))
	cfg, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Avalanche", cfg.ChainName)

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
chain_name: Tron
native_token: TRX
governance_token: ANKR
token_prices: {TRX: 0.12, ANKR: 0.025}
initial_lp: {Tron Foundation: 50000}
growth_multiplier: 1.4
expected_future_growth_multiplier: 2.0
historical_data:
  "2025-09": 10000
`), 0o644))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "Tron", cfg.ChainName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
