package main

import (
	"context"
	"log/slog"

	"github.com/svcmerge/svcmerge/internal/mcptools"
)

// runServeMCP blocks serving the svcmerge MCP tools on stdio until the
// client closes the transport.
func runServeMCP(logger *slog.Logger) error {
	svc := mcptools.NewService(logger)
	return mcptools.RunStdio(context.Background(), mcptools.NewServer(svc))
}
