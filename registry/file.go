package registry

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// File is a provider that reads a plain text snapshot with one
// identifier name per line. Blank lines and lines starting with '#'
// are skipped.
type File struct {
	path string
}

// NewFile returns a File provider for the given path. The file is
// read on every Names call, not cached.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) ID() string {
	return "file"
}

// Names reads the snapshot. A line holding anything other than a bare
// identifier (embedded whitespace, ',' or '=') fails the whole read,
// as such a name would corrupt the rendered snippet.
func (f *File) Names() ([]string, error) {
	fp, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("error opening registry snapshot '%s': %w", f.path, err)
	}
	defer fp.Close()

	var (
		out []string
		num int
		sc  = bufio.NewScanner(fp)
	)
	for sc.Scan() {
		num++

		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.ContainsAny(line, ",= \t") {
			return nil, fmt.Errorf("%s:%d: '%s': %w", f.path, num, line, ErrMalformedEntry)
		}

		out = append(out, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading registry snapshot '%s': %w", f.path, err)
	}

	return out, nil
}
