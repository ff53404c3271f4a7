package projection

import (
	"math"
	"reflect"
	"testing"

	"rpcfi-flow-lab/internal/config"
	"rpcfi-flow-lab/internal/domain"
)

// Helper to create a minimal valid config for engine tests.
func testConfig() *domain.Config {
	return &domain.Config{
		ChainName:       "Avalanche",
		NativeToken:     "AVAX",
		GovernanceToken: "NEURA",
		TokenPrices:     map[string]float64{"AVAX": 25.0, "NEURA": 0.05},
		InitialLP:       map[string]float64{"Avalanche Foundation": 50000, "Neura Foundation": 50000},

		GrowthMultiplier:               1.0,
		ExpectedFutureGrowthMultiplier: 3.0,

		ProtocolShare:   0.50,
		ProjectionStart: "2026-01",
		HorizonMonths:   24,
		Mode:            domain.ModeGrowth,

		APYScenarios: domain.DefaultAPYScenarios(),
		HistoricalData: []domain.MonthlyRevenue{
			{Month: "2025-08", Revenue: 30000},
			{Month: "2025-09", Revenue: 35000},
		},
	}
}

func TestRun_OutputLengthEqualsHorizon(t *testing.T) {
	cfg := testConfig()

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(table.Periods) != cfg.HorizonMonths {
		t.Errorf("expected %d periods, got %d", cfg.HorizonMonths, len(table.Periods))
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := testConfig()

	first, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different output")
	}
}

func TestRun_Conservation(t *testing.T) {
	cfg := testConfig()

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, p := range table.Periods {
		sum := p.ProtocolShare + p.NativeBuyback + p.GovernanceBuyback
		if math.Abs(sum-p.Revenue) > 1e-6 {
			t.Errorf("period %d: shares sum to %f, revenue is %f", p.Index, sum, p.Revenue)
		}
	}
}

func TestRun_FlatModeHoldsLastHistoricalValue(t *testing.T) {
	cfg := testConfig()
	last := cfg.LastHistoricalRevenue()

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeFlat)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, p := range table.Periods {
		if p.Revenue != last {
			t.Errorf("period %d: flat revenue %f, want %f", p.Index, p.Revenue, last)
		}
	}
}

func TestRun_GrowthBoundaries(t *testing.T) {
	cfg := testConfig()
	cfg.GrowthMultiplier = 1.4
	last := cfg.LastHistoricalRevenue()

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	first := table.Periods[0]
	if math.Abs(first.Revenue-last*cfg.GrowthMultiplier) > 1e-9 {
		t.Errorf("period 0 revenue %f, want %f", first.Revenue, last*cfg.GrowthMultiplier)
	}

	final := table.Periods[len(table.Periods)-1]
	want := last * cfg.ExpectedFutureGrowthMultiplier
	if math.Abs(final.Revenue-want) > 1e-9 {
		t.Errorf("final revenue %f, want %f", final.Revenue, want)
	}
}

func TestRun_EqualMultipliersDegenerateToConstant(t *testing.T) {
	cfg := testConfig()
	cfg.GrowthMultiplier = 1.5
	cfg.ExpectedFutureGrowthMultiplier = 1.5

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := cfg.LastHistoricalRevenue() * 1.5
	for _, p := range table.Periods {
		if math.Abs(p.Revenue-want) > 1e-9 {
			t.Errorf("period %d: revenue %f, want constant %f", p.Index, p.Revenue, want)
		}
	}
}

func TestRun_FoundationConstantDeveloperNonDecreasing(t *testing.T) {
	cfg := testConfig()
	foundation := cfg.FoundationLP()

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	prevDev := 0.0
	for _, p := range table.Periods {
		if p.FoundationLP != foundation {
			t.Errorf("period %d: foundation LP %f, want constant %f", p.Index, p.FoundationLP, foundation)
		}
		if p.DeveloperLP < prevDev {
			t.Errorf("period %d: developer LP decreased from %f to %f", p.Index, prevDev, p.DeveloperLP)
		}
		prevDev = p.DeveloperLP
	}
}

func TestRun_UnknownScenario(t *testing.T) {
	cfg := testConfig()

	_, err := Run(cfg, "apocalyptic", domain.ModeGrowth)
	if err == nil {
		t.Fatal("expected error for unknown scenario")
	}
	if !config.IsKind(err, config.KindUnknownScenario) {
		t.Errorf("expected unknown_scenario error, got %v", err)
	}
}

func TestRun_InvalidMode(t *testing.T) {
	cfg := testConfig()

	_, err := Run(cfg, domain.ScenarioBase, "sideways")
	if err == nil {
		t.Fatal("expected error for invalid mode")
	}
	if !config.IsKind(err, config.KindInvalidType) {
		t.Errorf("expected invalid_type error, got %v", err)
	}
}

func TestRun_EmptyModeUsesConfigDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = domain.ModeFlat

	table, err := Run(cfg, domain.ScenarioBase, "")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if table.Mode != domain.ModeFlat {
		t.Errorf("expected mode %q, got %q", domain.ModeFlat, table.Mode)
	}
}

// Worked example: $10k monthly revenue, 50% protocol share, 30% APY.
// Buybacks are $2.5k each, LP added is $5k, and the first week of yield on
// that LP is 5000 * 0.30 / 52 ≈ $28.85.
func TestRun_ReferenceExample(t *testing.T) {
	cfg := testConfig()
	cfg.GrowthMultiplier = 1.0
	cfg.HistoricalData = []domain.MonthlyRevenue{{Month: "2025-09", Revenue: 10000}}

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	p := table.Periods[0]
	if p.Revenue != 10000 {
		t.Errorf("period 0 revenue %f, want 10000", p.Revenue)
	}
	if p.NativeBuyback != 2500 {
		t.Errorf("native buyback %f, want 2500", p.NativeBuyback)
	}
	if p.GovernanceBuyback != 2500 {
		t.Errorf("governance buyback %f, want 2500", p.GovernanceBuyback)
	}
	if p.LPAdded != 5000 {
		t.Errorf("LP added %f, want 5000", p.LPAdded)
	}

	wantYield := 5000 * 0.30 / 52
	if math.Abs(p.DeveloperWeeklyYield-wantYield) > 0.01 {
		t.Errorf("weekly developer yield %f, want ≈%f", p.DeveloperWeeklyYield, wantYield)
	}
}

func TestRun_SingleHistoricalEntry(t *testing.T) {
	cfg := testConfig()
	cfg.HistoricalData = []domain.MonthlyRevenue{{Month: "2025-09", Revenue: 12000}}

	flat, err := Run(cfg, domain.ScenarioBase, domain.ModeFlat)
	if err != nil {
		t.Fatalf("flat Run failed: %v", err)
	}
	for _, p := range flat.Periods {
		if p.Revenue != 12000 {
			t.Errorf("period %d: revenue %f, want 12000", p.Index, p.Revenue)
		}
	}
}

func TestRun_SinglePeriodHorizon(t *testing.T) {
	cfg := testConfig()
	cfg.HorizonMonths = 1

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(table.Periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(table.Periods))
	}

	baseline := cfg.LastHistoricalRevenue() * cfg.GrowthMultiplier
	if table.Periods[0].Revenue != baseline {
		t.Errorf("single-period revenue %f, want baseline %f", table.Periods[0].Revenue, baseline)
	}
}

func TestRun_MonthLabels(t *testing.T) {
	cfg := testConfig()

	table, err := Run(cfg, domain.ScenarioBase, domain.ModeGrowth)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if table.Periods[0].Month != "2026-01" {
		t.Errorf("period 0 month %q, want 2026-01", table.Periods[0].Month)
	}
	if table.Periods[12].Month != "2027-01" {
		t.Errorf("period 12 month %q, want 2027-01", table.Periods[12].Month)
	}
	if table.Periods[23].Month != "2027-12" {
		t.Errorf("period 23 month %q, want 2027-12", table.Periods[23].Month)
	}
}

func TestGrowthFactor(t *testing.T) {
	cases := []struct {
		index, total  int
		start, target float64
		want          float64
	}{
		{0, 24, 1.0, 3.0, 1.0},
		{23, 24, 1.0, 3.0, 3.0},
		{0, 1, 1.4, 5.0, 1.4}, // degenerate single-period horizon
		{5, 11, 1.0, 2.0, 1.5},
		{6, 13, 1.4, 2.0, 1.7},
	}
	for _, c := range cases {
		got := growthFactor(c.index, c.total, c.start, c.target)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("growthFactor(%d, %d, %f, %f) = %f, want %f", c.index, c.total, c.start, c.target, got, c.want)
		}
	}
}
