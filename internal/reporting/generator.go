package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rpcfi-flow-lab/internal/domain"
	"rpcfi-flow-lab/internal/projection"
)

// Format selectors for generated files.
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatBoth     = "both"
)

// Generator runs projections and writes report files.
type Generator struct {
	cfg       *domain.Config
	outputDir string
	weekly    bool
	now       func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a report generator writing into outputDir.
func NewGenerator(cfg *domain.Config, outputDir string) *Generator {
	return &Generator{
		cfg:       cfg,
		outputDir: outputDir,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithWeekly enables the weekly expansion CSV alongside the monthly table.
func (g *Generator) WithWeekly(weekly bool) *Generator {
	g.weekly = weekly
	return g
}

// Generate runs the projection for (scenario, mode) and writes the selected
// report files. It returns the summary and the written file paths.
func (g *Generator) Generate(scenario, mode, format string) (domain.Summary, []string, error) {
	switch format {
	case FormatCSV, FormatMarkdown, FormatBoth:
	default:
		return domain.Summary{}, nil, fmt.Errorf("unknown report format %q", format)
	}

	table, err := projection.Run(g.cfg, scenario, mode)
	if err != nil {
		return domain.Summary{}, nil, err
	}
	summary := projection.Summarize(table)

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return domain.Summary{}, nil, fmt.Errorf("create output dir: %w", err)
	}

	stem := fmt.Sprintf("projection_%s_%s", table.Scenario, table.Mode)
	var written []string

	if format == FormatCSV || format == FormatBoth {
		path := filepath.Join(g.outputDir, stem+".csv")
		if err := os.WriteFile(path, []byte(RenderCSV(table)), 0o644); err != nil {
			return domain.Summary{}, nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if format == FormatMarkdown || format == FormatBoth {
		path := filepath.Join(g.outputDir, stem+".md")
		if err := os.WriteFile(path, []byte(RenderMarkdown(table, summary, g.now())), 0o644); err != nil {
			return domain.Summary{}, nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if g.weekly {
		points, err := projection.ExpandWeekly(g.cfg, scenario, mode)
		if err != nil {
			return domain.Summary{}, nil, err
		}
		path := filepath.Join(g.outputDir, stem+"_weekly.csv")
		if err := os.WriteFile(path, []byte(RenderWeeklyCSV(points)), 0o644); err != nil {
			return domain.Summary{}, nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return summary, written, nil
}
