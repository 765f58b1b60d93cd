package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cardsort/internal/adapters/export"
	"cardsort/internal/application/commands"
	"cardsort/internal/domain"
)

// RegisterReadTools adds the read-only board tools to the MCP server.
func RegisterReadTools(srv *server.MCPServer, s *Session) {
	srv.AddTool(boardTool(), s.reading(boardHandler(s)))
	srv.AddTool(exportTool(), s.reading(exportHandler(s)))
}

// --- board ---

func boardTool() mcp.Tool {
	return mcp.NewTool("board",
		mcp.WithDescription("Show the card sort board: unfiled cards, then each category with its cards, all with their IDs."),
	)
}

func boardHandler(s *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		renderBoard(&sb, s.store.Snapshot())
		if active, ok := s.gesture.ActiveID(); ok {
			fmt.Fprintf(&sb, "\ndragging: %s\n", active)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderBoard(sb *strings.Builder, b domain.Board) {
	fmt.Fprintf(sb, "%s  Unfiled (%d)\n", domain.UnfiledID, len(b.Unfiled))
	renderItems(sb, b.Unfiled)
	for _, cat := range b.Categories {
		fmt.Fprintf(sb, "%s  %s (%d)\n", cat.ID, cat.Name, len(cat.Items))
		renderItems(sb, cat.Items)
	}
}

func renderItems(sb *strings.Builder, items []domain.Item) {
	for i, it := range items {
		fmt.Fprintf(sb, "  %d. %s  %s\n", i, it.ID, it.Content)
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Export the card sort results."),
		mcp.WithString("format",
			mcp.Description("Output format: "+strings.Join(export.Formats(), ", ")+" (default json)"),
		),
	)
}

func exportHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		enc, err := export.ForFormat(req.GetString("format", "json"))
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if _, err := commands.NewExportCommand(s.store, enc, &sb).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
