package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cardsort/internal/adapters/importer"
	"cardsort/internal/application"
	"cardsort/internal/application/commands"
	"cardsort/internal/ports"
)

// RegisterWriteTools adds the board editing tools to the MCP server.
func RegisterWriteTools(srv *server.MCPServer, s *Session) {
	srv.AddTool(addCardTool(), s.writing(addCardHandler(s)))
	srv.AddTool(addCategoryTool(), s.writing(addCategoryHandler(s)))
	srv.AddTool(deleteCardTool(), s.writing(deleteCardHandler(s)))
	srv.AddTool(deleteCategoryTool(), s.writing(deleteCategoryHandler(s)))
	srv.AddTool(moveCardTool(), s.writing(moveCardHandler(s)))
	srv.AddTool(reorderTool(), s.writing(reorderHandler(s)))
	srv.AddTool(importCardsTool(), s.writing(importCardsHandler(s)))
}

// --- add_card ---

func addCardTool() mcp.Tool {
	return mcp.NewTool("add_card",
		mcp.WithDescription("Add a card to the end of the unfiled list."),
		mcp.WithString("content",
			mcp.Description("Card text"),
			mcp.Required(),
		),
	)
}

func addCardHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewAddCardCommand(s.store, req.GetString("content", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_category ---

func addCategoryTool() mcp.Tool {
	return mcp.NewTool("add_category",
		mcp.WithDescription("Add an empty category."),
		mcp.WithString("name",
			mcp.Description("Category name"),
			mcp.Required(),
		),
	)
}

func addCategoryHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewAddCategoryCommand(s.store, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_card ---

func deleteCardTool() mcp.Tool {
	return mcp.NewTool("delete_card",
		mcp.WithDescription("Delete a card wherever it is."),
		mcp.WithString("item_id",
			mcp.Description("Card ID"),
			mcp.Required(),
		),
	)
}

func deleteCardHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCardCommand(s.store, req.GetString("item_id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_category ---

func deleteCategoryTool() mcp.Tool {
	return mcp.NewTool("delete_category",
		mcp.WithDescription("Delete a category. Its cards go back to the end of the unfiled list, in order."),
		mcp.WithString("category_id",
			mcp.Description("Category ID"),
			mcp.Required(),
		),
	)
}

func deleteCategoryHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCategoryCommand(s.store, req.GetString("category_id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_card ---

func moveCardTool() mcp.Tool {
	return mcp.NewTool("move_card",
		mcp.WithDescription("Move a card into a category or back to the unfiled list."),
		mcp.WithString("item_id",
			mcp.Description("Card ID"),
			mcp.Required(),
		),
		mcp.WithString("destination_id",
			mcp.Description(fmt.Sprintf("Category ID, or %q for the unfiled list", application.UnfiledID)),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Position in the destination, starting at 0. Omit to append."),
		),
	)
}

func moveCardHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveCardCommand(s.store, req.GetString("item_id", ""), req.GetString("destination_id", ""))
		cmd.Index = req.GetInt("index", application.NoIndex)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reorder ---

func reorderTool() mcp.Tool {
	return mcp.NewTool("reorder",
		mcp.WithDescription("Move the card at one position to another position within the same list."),
		mcp.WithString("container_id",
			mcp.Description(fmt.Sprintf("Category ID, or %q for the unfiled list", application.UnfiledID)),
			mcp.Required(),
		),
		mcp.WithNumber("from",
			mcp.Description("Current position, starting at 0"),
			mcp.Required(),
		),
		mcp.WithNumber("to",
			mcp.Description("New position, starting at 0"),
			mcp.Required(),
		),
	)
}

func reorderHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewReorderCommand(s.store,
			req.GetString("container_id", ""),
			req.GetInt("from", -1),
			req.GetInt("to", -1))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import_cards ---

func importCardsTool() mcp.Tool {
	return mcp.NewTool("import_cards",
		mcp.WithDescription("Replace the unfiled list with cards from a .csv or .txt file, or from inline text. Categorised cards are kept."),
		mcp.WithString("path",
			mcp.Description("Path to a .csv or .txt file"),
		),
		mcp.WithString("text",
			mcp.Description("Inline file contents, used when path is omitted"),
		),
		mcp.WithString("format",
			mcp.Description("Format of inline text: csv or txt (default txt)"),
		),
	)
}

func importCardsHandler(s *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		text := req.GetString("text", "")

		var (
			source ports.CardSource
			cmd    *commands.ImportCardsCommand
			err    error
		)
		switch {
		case path != "":
			source, err = importer.ForPath(path)
			if err != nil {
				return toolError(err)
			}
			f, err := os.Open(path)
			if err != nil {
				return toolError(fmt.Errorf("opening import file: %w", err))
			}
			defer f.Close()
			cmd = commands.NewImportCardsCommand(s.store, source, f, path)

		case text != "":
			source, err = importer.ForPath("inline." + req.GetString("format", "txt"))
			if err != nil {
				return toolError(err)
			}
			cmd = commands.NewImportCardsCommand(s.store, source, strings.NewReader(text), "")

		default:
			return toolError(fmt.Errorf("path or text is required"))
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
