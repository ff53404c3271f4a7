package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"rpcfi-flow-lab/internal/domain"
)

// rawConfig mirrors the on-disk schema. Pointer fields distinguish absent
// from zero for values that are required or have non-zero defaults.
type rawConfig struct {
	ChainName       string `json:"chain_name" yaml:"chain_name"`
	NativeToken     string `json:"native_token" yaml:"native_token"`
	GovernanceToken string `json:"governance_token" yaml:"governance_token"`
	RPCfiPartner    string `json:"rpcfi_partner" yaml:"rpcfi_partner"`
	BaseCurrency    string `json:"base_currency" yaml:"base_currency"`

	TokenPrices map[string]float64 `json:"token_prices" yaml:"token_prices"`
	InitialLP   map[string]float64 `json:"initial_lp" yaml:"initial_lp"`

	GrowthMultiplier               *float64 `json:"growth_multiplier" yaml:"growth_multiplier"`
	ExpectedFutureGrowthMultiplier *float64 `json:"expected_future_growth_multiplier" yaml:"expected_future_growth_multiplier"`

	ProtocolShare   *float64 `json:"protocol_share" yaml:"protocol_share"`
	ProjectionStart string   `json:"projection_start" yaml:"projection_start"`
	HorizonMonths   *int     `json:"horizon_months" yaml:"horizon_months"`
	Mode            string   `json:"mode" yaml:"mode"`

	APYScenarios   map[string]float64 `json:"apy_scenarios" yaml:"apy_scenarios"`
	HistoricalData revenueSeries      `json:"historical_data" yaml:"historical_data"`
}

// revenueSeries decodes the historical_data object while preserving document
// order. Go maps would lose it, and the last entry is load-bearing: it seeds
// the projection baseline.
type revenueSeries []domain.MonthlyRevenue

func (s *revenueSeries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("historical_data: expected object, got %v", tok)
	}

	var out []domain.MonthlyRevenue
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var num json.Number
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("historical_data[%s]: %w", key, err)
		}
		value, err := num.Float64()
		if err != nil {
			return fmt.Errorf("historical_data[%s]: %w", key, err)
		}
		out = append(out, domain.MonthlyRevenue{Month: key, Revenue: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

func (s *revenueSeries) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var ms yaml.MapSlice
	if err := unmarshal(&ms); err != nil {
		return err
	}

	var out []domain.MonthlyRevenue
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("historical_data: non-string key %v", item.Key)
		}
		var value float64
		switch v := item.Value.(type) {
		case int:
			value = float64(v)
		case float64:
			value = v
		default:
			return fmt.Errorf("historical_data[%s]: non-numeric value %v", key, item.Value)
		}
		out = append(out, domain.MonthlyRevenue{Month: key, Revenue: value})
	}

	*s = out
	return nil
}

// Load reads and validates a config file. YAML is selected by file
// extension, everything else is parsed as JSON.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses and validates a JSON config document.
func ParseJSON(data []byte) (*domain.Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, wrapDecodeError(err)
	}
	return validate(&raw)
}

// ParseYAML parses and validates a YAML config document.
func ParseYAML(data []byte) (*domain.Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: KindInvalidType, Field: "config", Value: err.Error()}
	}
	return validate(&raw)
}

// wrapDecodeError maps stdlib JSON decode failures onto the config error
// taxonomy, keeping the offending field name when the decoder knows it.
func wrapDecodeError(err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &Error{Kind: KindInvalidType, Field: typeErr.Field, Value: typeErr.Value}
	}
	return &Error{Kind: KindInvalidType, Field: "config", Value: err.Error()}
}
