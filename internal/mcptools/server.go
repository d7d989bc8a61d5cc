package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewServer creates an MCP server with the three svcmerge tools
// registered.
func NewServer(svc *Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "svcmerge",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_listings",
		Description: "Merge a directory of versioned service listings (name<TAB>id, one file per build) into a single table and return it rendered as markdown, csv, json, yaml, or html.",
	}, svc.MergeListings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_versions",
		Description: "List the versions discovered in a listings directory, in merge order, with per-source applied and skipped line counts.",
	}, svc.ListVersions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_service",
		Description: "Look up one service by exact name and return the id it held in each version plus the version that introduced it.",
	}, svc.GetService)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
