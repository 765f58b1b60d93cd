package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"cardsort/internal/application"
	"cardsort/internal/domain"
)

// Session owns the board served over MCP. Tool calls may arrive
// concurrently; the session runs them one at a time.
type Session struct {
	mu      sync.Mutex
	store   *application.Store
	gesture *application.GestureController
	logger  *zap.Logger
	persist func(domain.Board) error
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithPersist registers fn to save the board after every mutating tool call
func WithPersist(fn func(domain.Board) error) SessionOption {
	return func(s *Session) {
		s.persist = fn
	}
}

// WithSessionLogger sets the logger for tool calls
func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session around store
func NewSession(store *application.Store, opts ...SessionOption) *Session {
	s := &Session{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gesture = application.NewGestureController(store, s.logger)
	return s
}

// Register adds every card sort tool to the MCP server
func (s *Session) Register(srv *server.MCPServer) {
	RegisterReadTools(srv, s)
	RegisterWriteTools(srv, s)
	RegisterGestureTools(srv, s)
}

// reading serialises a handler that only inspects the board
func (s *Session) reading(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return h(ctx, req)
	}
}

// writing serialises a handler that may change the board and saves the
// board afterwards when a persist hook is set
func (s *Session) writing(h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.logger.Debug("tool call", zap.String("tool", req.Params.Name))
		result, err := h(ctx, req)
		if err != nil || result == nil || result.IsError || s.persist == nil {
			return result, err
		}
		if perr := s.persist(s.store.Snapshot()); perr != nil {
			s.logger.Error("failed to save board", zap.Error(perr))
			return toolError(perr)
		}
		return result, nil
	}
}
