package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cardsort/internal/adapters/clipboard"
	"cardsort/internal/adapters/editor"
	"cardsort/internal/adapters/tui"
	"cardsort/internal/bootstrap"
)

func main() {
	boardFlag := flag.String("board", "", "board file to open and save (default: in-memory)")
	configFlag := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/cardsort/config.yaml)")
	flag.Parse()

	env, err := bootstrap.Open(*configFlag, *boardFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	// Create and run TUI app
	app := tui.NewApp(env.Store, tui.Options{
		ExportDir:    env.Config.ExportDir,
		ExportFormat: env.Config.ExportFormat,
		Clipboard:    clipboard.New(),
		Editor:       editor.NewOpener(env.Config.Editor),
		Logger:       env.Logger,
		OnChange:     env.Save,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		env.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
