package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "cardsort/internal/adapters/mcp"
	"cardsort/internal/bootstrap"
)

func main() {
	boardFlag := flag.String("board", "", "board file to open and save (default: in-memory)")
	configFlag := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/cardsort/config.yaml)")
	flag.Parse()

	env, err := bootstrap.Open(*configFlag, *boardFlag)
	if err != nil {
		log.Fatalf("cardsort-mcp: %v", err)
	}
	defer env.Close()

	mcpServer := server.NewMCPServer(
		"cardsort-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	session := mcpadapter.NewSession(env.Store,
		mcpadapter.WithPersist(env.Save),
		mcpadapter.WithSessionLogger(env.Logger),
	)
	session.Register(mcpServer)

	env.Logger.Info("serving mcp over stdio", zap.String("board", env.Config.BoardPath))
	if err := server.ServeStdio(mcpServer); err != nil {
		env.Close()
		log.Fatalf("cardsort-mcp: %v", err)
	}
}
