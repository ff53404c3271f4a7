// Command simulate runs one projection and writes CSV/Markdown reports.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"rpcfi-flow-lab/internal/config"
	"rpcfi-flow-lab/internal/domain"
	"rpcfi-flow-lab/internal/reporting"
)

func main() {
	configPath := flag.String("config", "", "Path to chain config (JSON or YAML)")
	scenario := flag.String("scenario", domain.ScenarioBase, "APY scenario (worst|base|best or any configured name)")
	mode := flag.String("mode", "", "Projection mode (growth|flat); empty uses the config default")
	outputDir := flag.String("output-dir", "output", "Output directory for generated files")
	format := flag.String("format", reporting.FormatBoth, "Report format: csv|markdown|both")
	weekly := flag.Bool("weekly", false, "Also write the weekly chart expansion CSV")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --config is required")
		flag.Usage()
		os.Exit(1)
	}
	switch *format {
	case reporting.FormatCSV, reporting.FormatMarkdown, reporting.FormatBoth:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	gen := reporting.NewGenerator(cfg, *outputDir).WithWeekly(*weekly)
	summary, written, err := gen.Generate(*scenario, *mode, *format)
	if err != nil {
		log.WithError(err).Fatal("run projection")
	}

	log.WithFields(log.Fields{
		"chain":    cfg.ChainName,
		"scenario": summary.Scenario,
		"mode":     summary.Mode,
		"apy":      summary.APY,
	}).Info("projection complete")

	fmt.Printf("Total RPC revenue:      $%.0f\n", summary.TotalRevenue)
	fmt.Printf("Total buybacks:         $%.0f\n", summary.TotalBuybacks)
	fmt.Printf("Final developer LP:     $%.0f\n", summary.FinalDeveloperLP)
	fmt.Printf("Final LP TVL:           $%.0f\n", summary.FinalTotalLP)
	fmt.Printf("Total developer yield:  $%.0f\n", summary.TotalDeveloperYield)
	fmt.Printf("Total foundation yield: $%.0f\n", summary.TotalFoundationYield)

	for _, path := range written {
		fmt.Printf("Wrote %s\n", path)
	}
}
