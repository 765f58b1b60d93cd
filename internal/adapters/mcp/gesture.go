package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cardsort/internal/application"
)

// RegisterGestureTools adds the drag-and-drop tools. They drive the same
// gesture a pointer would: start, any number of hovers, then drop or cancel.
func RegisterGestureTools(srv *server.MCPServer, s *Session) {
	srv.AddTool(dragStartTool(), s.writing(dragStartHandler(s)))
	srv.AddTool(dragHoverTool(), s.writing(dragHoverHandler(s)))
	srv.AddTool(dragDropTool(), s.writing(dragDropHandler(s)))
	srv.AddTool(dragCancelTool(), s.writing(dragCancelHandler(s)))
}

// --- drag_start ---

func dragStartTool() mcp.Tool {
	return mcp.NewTool("drag_start",
		mcp.WithDescription("Pick up a card. Replaces any drag in progress."),
		mcp.WithString("item_id",
			mcp.Description("Card ID"),
			mcp.Required(),
		),
	)
}

func dragStartHandler(s *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("item_id", "")
		if !s.gesture.Start(id) {
			return mcp.NewToolResultText(fmt.Sprintf("No card %s; not dragging", id)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Dragging %s", id)), nil
	}
}

// --- drag_hover ---

func dragHoverTool() mcp.Tool {
	return mcp.NewTool("drag_hover",
		mcp.WithDescription("Hover the dragged card over a list or card. The card moves there immediately."),
		mcp.WithString("item_id",
			mcp.Description("ID of the card being dragged"),
			mcp.Required(),
		),
		mcp.WithString("target_id",
			mcp.Description(fmt.Sprintf("Category ID, %q, or the ID of a card in the target list", application.UnfiledID)),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Position in the target list, starting at 0. Omit to append."),
		),
	)
}

func dragHoverHandler(s *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("item_id", "")
		target := req.GetString("target_id", "")

		moved := s.gesture.Hover(id, target, req.GetInt("index", application.NoIndex))
		return mcp.NewToolResultText(gestureMessage(s, moved, fmt.Sprintf("Hovering %s over %s", id, target))), nil
	}
}

// --- drag_drop ---

func dragDropTool() mcp.Tool {
	return mcp.NewTool("drag_drop",
		mcp.WithDescription("Drop the dragged card. Dropping on another unfiled card takes that card's position."),
		mcp.WithString("item_id",
			mcp.Description("ID of the card being dragged"),
			mcp.Required(),
		),
		mcp.WithString("target_id",
			mcp.Description("ID of the card or list under the drop. Omit to drop in place."),
		),
	)
}

func dragDropHandler(s *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("item_id", "")
		wasActive, dragging := s.gesture.ActiveID()

		reordered := s.gesture.Drop(id, req.GetString("target_id", ""))
		switch {
		case !dragging || wasActive != id:
			return mcp.NewToolResultText(fmt.Sprintf("Not dragging %s; drop ignored", id)), nil
		case reordered:
			return mcp.NewToolResultText(fmt.Sprintf("Dropped %s; unfiled order updated", id)), nil
		default:
			return mcp.NewToolResultText(fmt.Sprintf("Dropped %s", id)), nil
		}
	}
}

// --- drag_cancel ---

func dragCancelTool() mcp.Tool {
	return mcp.NewTool("drag_cancel",
		mcp.WithDescription("Stop dragging. Moves already made while hovering are kept."),
	)
}

func dragCancelHandler(s *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.gesture.Cancel()
		return mcp.NewToolResultText("Drag cancelled"), nil
	}
}

func gestureMessage(s *Session, moved bool, what string) string {
	if moved {
		return what + "; card moved"
	}
	if _, ok := s.gesture.ActiveID(); !ok {
		return what + "; not dragging"
	}
	return what + "; nothing changed"
}
