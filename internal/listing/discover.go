package listing

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoSources indicates the input directory contains no listing files.
var ErrNoSources = errors.New("no listing files found")

// Source is one version listing ready for ingest. Open is called at most
// once, when the composer reaches this source; file-backed sources open
// lazily so access failures surface during ingest.
type Source struct {
	Version string
	Open    func() (io.ReadCloser, error)
}

// FileSource builds a Source backed by a file on disk. The version
// identifier is the filename stem.
func FileSource(path string) Source {
	return Source{
		Version: VersionFromPath(path),
		Open:    func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// Discover enumerates the *.txt listings directly under dir and returns
// them as Sources in the fixed version order (see SortVersions). A
// directory read failure is an error; an empty match set is ErrNoSources.
func Discover(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	byVersion := make(map[string]string)
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		id := VersionFromPath(path)
		byVersion[id] = path
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrNoSources
	}

	SortVersions(ids)
	sources := make([]Source, 0, len(ids))
	for _, id := range ids {
		sources = append(sources, FileSource(byVersion[id]))
	}
	return sources, nil
}
