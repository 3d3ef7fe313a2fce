package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotNames(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "shared.toml", `identifiers = ["Text.From", "Binary.From", "DateTime.From"]`)

	names, err := NewSnapshot(path, "").Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Text.From", "Binary.From", "DateTime.From"}, names)
}

func TestSnapshotNamesCustomKey(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "shared.toml", `shared = ["List.Count"]`)

	names, err := NewSnapshot(path, "shared").Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"List.Count"}, names)
}

func TestSnapshotNamesMissingKey(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "shared.toml", `other = ["Text.From"]`)

	_, err := NewSnapshot(path, "").Names()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifiers")
}

func TestSnapshotNamesMalformed(t *testing.T) {
	t.Parallel()

	// Multi-field items where plain name strings are expected.
	path := writeSnapshot(t, "shared.toml", `
[[identifiers]]
name = "Text.From"
kind = "function"
`)

	_, err := NewSnapshot(path, "").Names()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEntry)
}
