package domain

// MonthLayout is the time.Parse layout for year-month keys in config files
// and projection output.
const MonthLayout = "2006-01"

// MonthlyRevenue is one entry of the historical revenue series.
// Order is chronological and significant: the last entry seeds the
// projection baseline.
type MonthlyRevenue struct {
	Month   string  `json:"month"`   // YYYY-MM
	Revenue float64 `json:"revenue"` // gross RPC revenue in base currency
}

// Config is the validated, immutable configuration for one chain.
// Built by the config package; never mutated after construction.
type Config struct {
	ChainName       string `json:"chain_name"`
	NativeToken     string `json:"native_token"`      // e.g. AVAX
	GovernanceToken string `json:"governance_token"`  // e.g. NEURA
	RPCfiPartner    string `json:"rpcfi_partner,omitempty"`
	BaseCurrency    string `json:"base_currency,omitempty"`

	TokenPrices map[string]float64 `json:"token_prices"` // symbol -> unit price, strictly positive
	InitialLP   map[string]float64 `json:"initial_lp"`   // foundation -> static dollar value

	GrowthMultiplier               float64 `json:"growth_multiplier"`                 // applied at period 0
	ExpectedFutureGrowthMultiplier float64 `json:"expected_future_growth_multiplier"` // reached at the final period

	ProtocolShare   float64 `json:"protocol_share"`   // fraction of revenue routed untouched to the protocol
	ProjectionStart string  `json:"projection_start"` // YYYY-MM of period 0
	HorizonMonths   int     `json:"horizon_months"`   // projection length in months
	Mode            string  `json:"mode"`             // default projection mode: growth | flat

	APYScenarios   map[string]float64 `json:"apy_scenarios"` // scenario name -> APY percent (20.0 = 20%)
	HistoricalData []MonthlyRevenue   `json:"historical_data"`
}

// FoundationLP returns the combined foundation LP principal. Foundations do
// not accrue new principal, so this value is constant across the projection.
func (c *Config) FoundationLP() float64 {
	total := 0.0
	for _, v := range c.InitialLP {
		total += v
	}
	return total
}

// LastHistoricalRevenue returns the final entry of the historical series,
// which seeds the projection baseline.
func (c *Config) LastHistoricalRevenue() float64 {
	return c.HistoricalData[len(c.HistoricalData)-1].Revenue
}
