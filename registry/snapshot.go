package registry

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultSnapshotKey is the key under which a TOML snapshot holds the
// identifier array when the config doesn't name one.
const DefaultSnapshotKey = "identifiers"

// Snapshot is a provider that reads a TOML snapshot file holding the
// identifier names as a string array under a single key, eg.
//
//	identifiers = ["Text.From", "Binary.From"]
type Snapshot struct {
	path string
	key  string
}

// NewSnapshot returns a Snapshot provider for the given TOML file.
// If key is empty, DefaultSnapshotKey is used.
func NewSnapshot(path, key string) *Snapshot {
	if key == "" {
		key = DefaultSnapshotKey
	}

	return &Snapshot{path: path, key: key}
}

func (s *Snapshot) ID() string {
	return "snapshot"
}

// Names loads the snapshot. Every element under the key must be a
// plain string; a nested or multi-field item fails the whole read.
func (s *Snapshot) Names() ([]string, error) {
	ko := koanf.New(".")
	if err := ko.Load(file.Provider(s.path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading registry snapshot '%s': %w", s.path, err)
	}

	if !ko.Exists(s.key) {
		return nil, fmt.Errorf("key '%s' not found in registry snapshot '%s'", s.key, s.path)
	}

	raw, ok := ko.Get(s.key).([]interface{})
	if !ok {
		return nil, fmt.Errorf("key '%s' in '%s' is not an array: %w", s.key, s.path, ErrMalformedEntry)
	}

	out := make([]string, 0, len(raw))
	for i, v := range raw {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s.%d in '%s' is %T, not a string: %w", s.key, i, s.path, v, ErrMalformedEntry)
		}

		out = append(out, name)
	}

	return out, nil
}
