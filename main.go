package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/VictoriaMetrics/metrics"

	"sharegen/internal/namelist"
)

var (
	buildString = "unknown"
)

func main() {
	ko, cfg := initConfig()

	// Setup logger. Logs go to stderr so that the generated listing
	// on stdout stays paste-able as is.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: false,
		Level:     cfg.App.LogLevel,
	}))

	// Read the registry snapshot.
	prov, err := initRegistryProvider(cfg.Registry)
	if err != nil {
		log.Fatalf("error initializing registry provider: %v", err)
	}

	names, err := prov.Names()
	if err != nil {
		log.Fatalf("error reading registry snapshot: %v", err)
	}
	logger.Info("read registry snapshot", "provider", prov.ID(), "names", len(names))

	// Run the pipeline.
	survivors, err := namelist.Filter(names, cfg.Filter)
	if err != nil {
		log.Fatalf("error filtering names: %v", err)
	}
	out := namelist.Render(survivors)

	set := metrics.NewSet()
	set.GetOrCreateCounter("sharegen_names_scanned_total").Add(len(names))
	set.GetOrCreateCounter("sharegen_names_kept_total").Add(len(survivors))
	set.GetOrCreateCounter("sharegen_names_dropped_total").Add(len(names) - len(survivors))

	logger.Info("generated listing",
		"mode", cfg.Filter.Mode,
		"prefixes", len(cfg.Filter.Prefixes),
		"kept", len(survivors),
		"dropped", len(names)-len(survivors))

	// Write the listing.
	if cfg.Output.Path != "" {
		if err := os.WriteFile(cfg.Output.Path, []byte(out+"\n"), 0644); err != nil {
			log.Fatalf("error writing output to %s: %v", cfg.Output.Path, err)
		}
		logger.Info("wrote listing", "path", cfg.Output.Path)
	} else {
		os.Stdout.WriteString(out + "\n")
	}

	if ko.Bool("stats") {
		set.WritePrometheus(os.Stderr)
	}
}
