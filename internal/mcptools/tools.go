// Package mcptools exposes the merge pipeline over MCP so an agent can
// compose listings and inspect the registry without shelling out. The
// server speaks stdio only.
package mcptools

import "github.com/svcmerge/svcmerge/internal/compose"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// MergeListingsInput is the input for the merge_listings MCP tool.
type MergeListingsInput struct {
	Dir    string `json:"dir" jsonschema:"directory containing versioned service listings (*.txt)"`
	Format string `json:"format,omitempty" jsonschema:"output format: markdown, csv, json, yaml, html (default: markdown)"`
	Title  string `json:"title,omitempty" jsonschema:"page title, used by the html format"`
}

// MergeListingsOutput is the result of the merge_listings MCP tool.
type MergeListingsOutput struct {
	Versions []string              `json:"versions"`
	Entries  int                   `json:"entries"`
	Sources  []compose.SourceStats `json:"sources"`
	Artifact string                `json:"artifact"`
}

// ListVersionsInput is the input for the list_versions MCP tool.
type ListVersionsInput struct {
	Dir string `json:"dir" jsonschema:"directory containing versioned service listings (*.txt)"`
}

// VersionInfo describes one discovered source in fixed version order.
type VersionInfo struct {
	Version string `json:"version"`
	Applied int    `json:"applied"`
	Skipped int    `json:"skipped"`
}

// ListVersionsOutput is the result of the list_versions MCP tool.
type ListVersionsOutput struct {
	Versions []VersionInfo `json:"versions"`
}

// GetServiceInput is the input for the get_service MCP tool.
type GetServiceInput struct {
	Dir  string `json:"dir" jsonschema:"directory containing versioned service listings (*.txt)"`
	Name string `json:"name" jsonschema:"exact service name (case-sensitive)"`
}

// GetServiceOutput is the result of the get_service MCP tool.
type GetServiceOutput struct {
	Name      string           `json:"name"`
	Found     bool             `json:"found"`
	FirstSeen string           `json:"firstSeen,omitempty"`
	Values    map[string]int64 `json:"values,omitempty"`
}
