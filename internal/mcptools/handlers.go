package mcptools

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/svcmerge/svcmerge/internal/compose"
	"github.com/svcmerge/svcmerge/internal/listing"
	"github.com/svcmerge/svcmerge/internal/render"
)

// Service handles MCP tool calls. Every call composes the requested
// directory from scratch; the server holds no state between calls.
type Service struct {
	logger *slog.Logger
}

// NewService creates a Service logging diagnostics to logger (nil for
// silent).
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) composeDir(dir string) (*compose.Result, error) {
	sources, err := listing.Discover(dir)
	if err != nil {
		return nil, err
	}
	return compose.Compose(sources, s.logger)
}

// MergeListings composes a directory of listings and returns the rendered
// artifact together with ingest stats.
func (s *Service) MergeListings(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MergeListingsInput,
) (*mcp.CallToolResult, MergeListingsOutput, error) {
	name := input.Format
	if name == "" {
		name = string(render.DefaultFormat)
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return nil, MergeListingsOutput{}, err
	}

	res, err := s.composeDir(input.Dir)
	if err != nil {
		return nil, MergeListingsOutput{}, err
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, format, render.FromResult(res, input.Title)); err != nil {
		return nil, MergeListingsOutput{}, err
	}

	return nil, MergeListingsOutput{
		Versions: res.Versions,
		Entries:  res.Registry.Len(),
		Sources:  res.Stats.Sources,
		Artifact: buf.String(),
	}, nil
}

// ListVersions reports the discovered sources in fixed version order with
// per-source ingest counts.
func (s *Service) ListVersions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListVersionsInput,
) (*mcp.CallToolResult, ListVersionsOutput, error) {
	res, err := s.composeDir(input.Dir)
	if err != nil {
		return nil, ListVersionsOutput{}, err
	}

	out := ListVersionsOutput{Versions: make([]VersionInfo, 0, len(res.Stats.Sources))}
	for _, src := range res.Stats.Sources {
		out.Versions = append(out.Versions, VersionInfo{
			Version: src.Version,
			Applied: src.Applied,
			Skipped: src.Skipped,
		})
	}
	return nil, out, nil
}

// GetService looks up one service by exact name and returns its
// per-version values and first-seen version.
func (s *Service) GetService(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetServiceInput,
) (*mcp.CallToolResult, GetServiceOutput, error) {
	res, err := s.composeDir(input.Dir)
	if err != nil {
		return nil, GetServiceOutput{}, err
	}

	entry := res.Registry.Find(input.Name)
	if entry == nil {
		return nil, GetServiceOutput{Name: input.Name}, nil
	}

	values := make(map[string]int64)
	for _, v := range res.Versions {
		if val, ok := entry.Value(v); ok {
			values[v] = val
		}
	}
	return nil, GetServiceOutput{
		Name:      entry.Name,
		Found:     true,
		FirstSeen: res.FirstSeen[entry.Name],
		Values:    values,
	}, nil
}
