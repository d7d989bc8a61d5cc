// Package compose drives ingest: it feeds every version source through the
// listing reader in fixed order, populates the registry, and derives the
// structure renderers need (version order, first-seen classification).
package compose

import (
	"fmt"
	"log/slog"

	"github.com/svcmerge/svcmerge/internal/listing"
	"github.com/svcmerge/svcmerge/internal/registry"
)

// SourceStats counts what ingest did with one source.
type SourceStats struct {
	Version string `json:"version"`
	Applied int    `json:"applied"`
	Skipped int    `json:"skipped"`
}

// Stats aggregates per-source ingest counts. Diagnostic only; it never
// affects rendered output.
type Stats struct {
	Sources []SourceStats
}

// TotalApplied returns the number of applied records across all sources.
func (s Stats) TotalApplied() int {
	n := 0
	for _, src := range s.Sources {
		n += src.Applied
	}
	return n
}

// TotalSkipped returns the number of skipped lines across all sources.
func (s Stats) TotalSkipped() int {
	n := 0
	for _, src := range s.Sources {
		n += src.Skipped
	}
	return n
}

// Result is the frozen outcome of one compose run, handed read-only to
// every renderer.
type Result struct {
	Registry *registry.Registry
	Versions []string // fixed version order, shared by all renderers
	Stats    Stats

	// FirstSeen maps each entry name to the earliest version (in fixed
	// order) holding a value for it. Consumed by the HTML renderer.
	FirstSeen map[string]string
}

// Compose ingests every source strictly in order. Malformed lines are
// skipped, counted, and logged at debug level; an open or read failure
// aborts the whole run with no result. On success the registry is frozen.
func Compose(sources []listing.Source, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reg := registry.New()
	versions := make([]string, 0, len(sources))
	var stats Stats

	for _, src := range sources {
		versions = append(versions, src.Version)

		rc, err := src.Open()
		if err != nil {
			return nil, fmt.Errorf("open source %q: %w", src.Version, err)
		}
		records, skipped, err := listing.ParseListing(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read source %q: %w", src.Version, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close source %q: %w", src.Version, closeErr)
		}

		for _, sk := range skipped {
			logger.Debug("skipping malformed line",
				"version", src.Version, "line", sk.Number, "text", sk.Text)
		}
		for _, rec := range records {
			e := reg.FindOrCreate(rec.Name)
			reg.SetValue(e, src.Version, rec.Value)
		}

		stats.Sources = append(stats.Sources, SourceStats{
			Version: src.Version,
			Applied: len(records),
			Skipped: len(skipped),
		})
		logger.Debug("ingested source",
			"version", src.Version, "applied", len(records), "skipped", len(skipped))
	}

	reg.Freeze()
	return &Result{
		Registry:  reg,
		Versions:  versions,
		Stats:     stats,
		FirstSeen: firstSeen(reg, versions),
	}, nil
}

// firstSeen walks versions in fixed order so the earliest version with a
// value gets credit for introducing the entry.
func firstSeen(reg *registry.Registry, versions []string) map[string]string {
	m := make(map[string]string, reg.Len())
	for _, e := range reg.Entries() {
		for _, v := range versions {
			if _, ok := e.Value(v); ok {
				m[e.Name] = v
				break
			}
		}
	}
	return m
}
