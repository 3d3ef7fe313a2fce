package main

import (
	"fmt"
	"log"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	flag "github.com/spf13/pflag"

	"sharegen/internal/namelist"
	"sharegen/registry"
)

func initConfig() (*koanf.Koanf, Config) {
	// Initialize config
	f := flag.NewFlagSet("config", flag.ContinueOnError)
	f.Usage = func() {
		fmt.Println(f.FlagUsages())
		os.Exit(0)
	}

	f.StringSlice("config", []string{"config.toml"}, "path to one or more config files (will be merged in order)")
	f.String("mode", "", "allow | disallow. Setting this overrides [filter] mode in the config file.")
	f.StringSlice("prefix", []string{}, "one or more name prefixes. Setting this overrides [filter] prefixes in the config file.")
	f.String("registry", "", "path to the registry snapshot file. Setting this overrides [registry] path in the config file.")
	f.String("out", "", "write the generated listing to this file instead of stdout")
	f.Bool("stats", false, "dump run counters in Prometheus text format to stderr")
	f.Bool("version", false, "show current version of the build")

	if err := f.Parse(os.Args[1:]); err != nil {
		log.Fatalf("error loading flags: %v", err)
	}

	ko := koanf.New(".")
	if err := ko.Load(posflag.Provider(f, ".", ko), nil); err != nil {
		log.Fatalf("error reading flag config: %v", err)
	}

	// Version flag.
	if ko.Bool("version") {
		fmt.Println(buildString)
		os.Exit(0)
	}

	// Load one or more config files. Keys in each subsequent file is merged
	// into the previous file's keys.
	for _, fl := range ko.Strings("config") {
		log.Printf("reading config from %s", fl)
		if err := ko.Load(file.Provider(fl), toml.Parser()); err != nil {
			log.Fatalf("error reading config: %v", err)
		}
	}

	var cfg Config
	if err := ko.Unmarshal("", &cfg); err != nil {
		log.Fatalf("error marshalling application config: %v", err)
	}

	// If the filter rule is set in the commandline flags, override the
	// one read from the file.
	if mode := ko.String("mode"); mode != "" {
		cfg.Filter.Mode = namelist.Mode(mode)
	}
	if prefixes := ko.Strings("prefix"); len(prefixes) > 0 {
		cfg.Filter.Prefixes = prefixes
	}
	if path := ko.String("registry"); path != "" {
		cfg.Registry.Path = path
	}
	if out := ko.String("out"); out != "" {
		cfg.Output.Path = out
	}

	if err := cfg.Filter.Validate(); err != nil {
		log.Fatalf("error in filter config: %v", err)
	}

	return ko, cfg
}

// initRegistryProvider picks the snapshot provider for the configured
// [registry] source.
func initRegistryProvider(cfg registry.Config) (registry.Provider, error) {
	switch cfg.Source {
	case "file", "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("no registry snapshot path specified")
		}

		return registry.NewFile(cfg.Path), nil

	case "snapshot":
		if cfg.Path == "" {
			return nil, fmt.Errorf("no registry snapshot path specified")
		}

		return registry.NewSnapshot(cfg.Path, cfg.Key), nil

	case "static":
		if len(cfg.Names) == 0 {
			return nil, fmt.Errorf("no names specified for the static registry source")
		}

		return registry.NewStatic("static", cfg.Names), nil

	default:
		return nil, fmt.Errorf("unknown registry source '%s'. Should be one of file|snapshot|static", cfg.Source)
	}
}
