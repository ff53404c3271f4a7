// Command genconfig generates synthetic RPC revenue data and sample chain
// configs for demos.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"rpcfi-flow-lab/internal/domain"
	"rpcfi-flow-lab/internal/synth"
)

func main() {
	scenario := flag.String("scenario", synth.PresetModerate, "Revenue scenario: conservative|moderate|aggressive|volatile|all")
	format := flag.String("format", "both", "Output format: csv|json|both")
	output := flag.String("output", "revenue_data", "Output filename prefix")
	outputDir := flag.String("output-dir", ".", "Directory for generated files")
	start := flag.String("start", "", "Override start month (YYYY-MM)")
	end := flag.String("end", "", "Override end month (YYYY-MM)")
	seed := flag.Int64("seed", 1, "Random seed (same seed reproduces the same data)")
	createConfigs := flag.Bool("create-configs", false, "Create sample chain configuration files instead")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if *createConfigs {
		configs, err := synth.SampleConfigs(rng)
		if err != nil {
			log.WithError(err).Fatal("generate sample configs")
		}
		for chain, doc := range configs {
			path := filepath.Join(*outputDir, fmt.Sprintf("config_%s.json", chain))
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				log.WithError(err).Fatal("write config")
			}
			fmt.Printf("Created %s\n", path)
		}
		return
	}

	presets := synth.Presets()
	var names []string
	if *scenario == "all" {
		names = []string{synth.PresetConservative, synth.PresetModerate, synth.PresetAggressive, synth.PresetVolatile}
	} else {
		if _, ok := presets[*scenario]; !ok {
			log.Fatalf("unknown scenario %q", *scenario)
		}
		names = []string{*scenario}
	}

	for _, name := range names {
		params := presets[name]
		if *start != "" {
			params.StartMonth = *start
		}
		if *end != "" {
			params.EndMonth = *end
		}

		series, err := synth.Generate(params, rng)
		if err != nil {
			log.WithError(err).Fatal("generate revenue data")
		}

		fmt.Printf("Generated %s scenario (%d months, total $%.0f):\n",
			name, len(series), synth.TotalRevenue(series))
		for _, entry := range series {
			fmt.Printf("  %s: $%.0f\n", entry.Month, entry.Revenue)
		}

		if err := writeSeries(series, *outputDir, *output, name, *format); err != nil {
			log.WithError(err).Fatal("write revenue data")
		}
	}
}

func writeSeries(series []domain.MonthlyRevenue, dir, prefix, name, format string) error {
	if format == "csv" || format == "both" {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", prefix, name))
		if err := os.WriteFile(path, []byte(synth.RenderCSV(series)), 0o644); err != nil {
			return err
		}
		fmt.Printf("Revenue data saved to %s\n", path)
	}
	if format == "json" || format == "both" {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", prefix, name))
		if err := os.WriteFile(path, []byte(synth.RenderJSON(series)), 0o644); err != nil {
			return err
		}
		fmt.Printf("Revenue data saved to %s\n", path)
	}
	return nil
}
