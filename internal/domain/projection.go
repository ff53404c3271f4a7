package domain

import "time"

// Period is one monthly row of a projection table.
type Period struct {
	Index int    `json:"index"` // 0-based month offset from projection start
	Month string `json:"month"` // YYYY-MM

	Revenue           float64 `json:"revenue"`            // gross RPC revenue for the month
	ProtocolShare     float64 `json:"protocol_share"`     // routed to the protocol untouched
	NativeBuyback     float64 `json:"native_buyback"`     // dollars spent buying the native token
	GovernanceBuyback float64 `json:"governance_buyback"` // dollars spent buying the governance token

	NativeUnits     float64 `json:"native_units"`     // tokens bought at the configured price
	GovernanceUnits float64 `json:"governance_units"`

	LPAdded      float64 `json:"lp_added"`      // dollar value minted into LP this period
	DeveloperLP  float64 `json:"developer_lp"`  // cumulative developer LP value
	FoundationLP float64 `json:"foundation_lp"` // constant at the configured principal
	TotalLP      float64 `json:"total_lp"`      // developer + foundation

	DeveloperWeeklyYield   float64 `json:"developer_weekly_yield"`
	FoundationWeeklyYield  float64 `json:"foundation_weekly_yield"`
	DeveloperMonthlyYield  float64 `json:"developer_monthly_yield"`  // weekly * weeks per month
	FoundationMonthlyYield float64 `json:"foundation_monthly_yield"`

	CumulativeDeveloperYield  float64 `json:"cumulative_developer_yield"`
	CumulativeFoundationYield float64 `json:"cumulative_foundation_yield"`
}

// Table is the full output of one projection run. It is ephemeral: recomputed
// on every scenario or mode change and discarded after rendering.
type Table struct {
	ChainName       string   `json:"chain_name"`
	NativeToken     string   `json:"native_token"`
	GovernanceToken string   `json:"governance_token"`
	Scenario        string   `json:"scenario"`
	Mode            string   `json:"mode"`
	APY             float64  `json:"apy"` // percent
	Periods         []Period `json:"periods"`
}

// WeeklyPoint is one row of the weekly chart expansion. Four weekly points
// are emitted per projected month, each carrying revenue/4.33.
type WeeklyPoint struct {
	Week int       `json:"week"` // 1-based
	Date time.Time `json:"date"`

	Revenue           float64 `json:"revenue"`
	NativeBuyback     float64 `json:"native_buyback"`
	GovernanceBuyback float64 `json:"governance_buyback"`
	NativeUnits       float64 `json:"native_units"`
	GovernanceUnits   float64 `json:"governance_units"`

	LPAdded      float64 `json:"lp_added"`
	DeveloperLP  float64 `json:"developer_lp"`
	FoundationLP float64 `json:"foundation_lp"`
	TotalLP      float64 `json:"total_lp"`

	DeveloperYield  float64 `json:"developer_yield"`  // paid out this week
	FoundationYield float64 `json:"foundation_yield"`

	CumulativeDeveloperYield  float64 `json:"cumulative_developer_yield"`
	CumulativeFoundationYield float64 `json:"cumulative_foundation_yield"`
}

// Summary aggregates a projection table into the headline metrics shown on
// the overview page.
type Summary struct {
	Scenario string  `json:"scenario"`
	Mode     string  `json:"mode"`
	APY      float64 `json:"apy"`

	TotalRevenue  float64 `json:"total_revenue"`
	TotalBuybacks float64 `json:"total_buybacks"`

	FinalDeveloperLP float64 `json:"final_developer_lp"`
	FinalTotalLP     float64 `json:"final_total_lp"`

	TotalDeveloperYield  float64 `json:"total_developer_yield"`
	TotalFoundationYield float64 `json:"total_foundation_yield"`

	AvgWeeklyDeveloperYield  float64 `json:"avg_weekly_developer_yield"`
	AvgWeeklyFoundationYield float64 `json:"avg_weekly_foundation_yield"`
}
