package main

import (
	"log/slog"

	"sharegen/internal/namelist"
	"sharegen/registry"
)

// Config is a holder struct for all configs.
type Config struct {
	App struct {
		LogLevel slog.Level `koanf:"log_level"`
	} `koanf:"app"`

	Filter   namelist.Rule   `koanf:"filter"`
	Registry registry.Config `koanf:"registry"`

	Output struct {
		// Path the rendered listing is written to. Empty writes
		// to stdout.
		Path string `koanf:"path"`
	} `koanf:"output"`
}
