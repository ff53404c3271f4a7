package domain

// Scenario name constants
const (
	ScenarioWorst = "worst"
	ScenarioBase  = "base"
	ScenarioBest  = "best"
)

// Projection mode constants
const (
	ModeGrowth = "growth" // linear interpolation between the two growth multipliers
	ModeFlat   = "flat"   // constant revenue at the last historical value
)

// DefaultAPYScenarios is applied when a config omits apy_scenarios.
// Values are APY percentages.
func DefaultAPYScenarios() map[string]float64 {
	return map[string]float64{
		ScenarioWorst: 20.0,
		ScenarioBase:  30.0,
		ScenarioBest:  40.0,
	}
}

// Defaults for optional config fields.
const (
	DefaultProtocolShare   = 0.50
	DefaultProjectionStart = "2026-01"
	DefaultHorizonMonths   = 24
)

// ValidMode reports whether mode is a recognized projection mode.
func ValidMode(mode string) bool {
	return mode == ModeGrowth || mode == ModeFlat
}
