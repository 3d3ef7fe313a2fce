// Package registry provides providers that supply the snapshot of
// identifier names exposed by the host environment. Providers only
// read and shape-check the snapshot; filtering, sorting and rendering
// happen downstream.
package registry

import "fmt"

// ErrMalformedEntry is returned when a snapshot yields something that
// is not a plain identifier name. Providers fail fast on it instead of
// recovering partially, since a bad entry would corrupt the generated
// snippet silently.
var ErrMalformedEntry = fmt.Errorf("registry snapshot entry is not a plain identifier")

// Provider is the source of a registry snapshot. It defines methods for
// getting the ID of a provider and reading the identifier names it holds.
type Provider interface {
	// ID returns the unique identifier of the registry provider.
	ID() string

	// Names returns the identifier names in the snapshot, in source
	// order, without deduplication or sorting.
	Names() ([]string, error)
}

// Config is the provider configuration from the [registry] block of
// the config file.
type Config struct {
	// file | snapshot | static
	Source string `koanf:"source"`

	// Path to the snapshot file for the file and snapshot sources.
	Path string `koanf:"path"`

	// Key under which the snapshot TOML holds the identifier array.
	Key string `koanf:"key"`

	// Literal identifier names for the static source.
	Names []string `koanf:"names"`
}
