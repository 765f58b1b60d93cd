package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cardsort/internal/adapters/export"
	"cardsort/internal/adapters/importer"
	"cardsort/internal/adapters/tui/views"
	"cardsort/internal/application"
	"cardsort/internal/application/commands"
	"cardsort/internal/config"
	"cardsort/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewPrompt
	ViewDelete
	ViewExport
	ViewHelp
)

// Options configures the TUI
type Options struct {
	ExportDir    string
	ExportFormat string
	Clipboard    ports.Clipboard
	Editor       ports.EditorOpener
	Logger       *zap.Logger
	// OnChange is called with every board the user leaves behind, e.g. to
	// save the board file
	OnChange     func(application.Board) error
}

// App is the main TUI application model. Every store mutation happens in
// Update, on the program's event loop.
type App struct {
	store   *application.Store
	opts    Options
	logger  *zap.Logger
	gesture *application.GestureController

	state   ViewState
	board   *views.BoardModel
	prompt  *views.PromptModel
	confirm *views.DeleteModel
	export  *views.ExportModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store *application.Store, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clipboardOK := opts.Clipboard != nil && opts.Clipboard.Available()
	gesture := application.NewGestureController(store, logger)

	return &App{
		store:   store,
		opts:    opts,
		logger:  logger,
		gesture: gesture,
		state:   ViewBoard,
		board:   views.NewBoardModel(store, gesture),
		prompt:  views.NewPromptModel(),
		confirm: views.NewDeleteModel(),
		export:  views.NewExportModel(store, opts.ExportDir, opts.ExportFormat, clipboardOK),
		help:    views.NewHelpModel(),
	}
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Board returns the board view
func (a *App) Board() *views.BoardModel {
	return a.board
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.prompt.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.export.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToPromptMsg:
		a.state = ViewPrompt
		a.prompt.SetMode(msg.Mode)
		return a, a.prompt.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.confirm.SetTarget(msg.Category)
		return a, nil

	case views.SwitchToExportMsg:
		a.state = ViewExport
		a.export.ClearMessage()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.backToBoard()
		return a, nil

	case views.StatusMsg:
		a.board.SetMessage(msg.Text, msg.Err)
		return a, nil

	// Requests carried out against the store
	case views.PromptSubmitMsg:
		a.submitPrompt(msg)
		return a, nil

	case views.DeleteConfirmedMsg:
		a.deleteCategory(msg.CategoryID)
		return a, nil

	case views.ExportRequestMsg:
		a.runExport(msg)
		return a, nil

	case views.EditCardsMsg:
		return a, a.editCards()

	case editorFinishedMsg:
		a.finishEditing(msg)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
		if a.board.TakeChanged() {
			a.changed()
		}
	case ViewPrompt:
		_, cmd = a.prompt.Update(msg)
	case ViewDelete:
		_, cmd = a.confirm.Update(msg)
	case ViewExport:
		_, cmd = a.export.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) backToBoard() {
	a.state = ViewBoard
	a.board.Reload()
}

func (a *App) submitPrompt(msg views.PromptSubmitMsg) {
	ctx := context.Background()

	switch msg.Mode {
	case views.PromptAddCard:
		result, err := commands.NewAddCardCommand(a.store, msg.Value).Execute(ctx)
		if err != nil {
			a.prompt.SetError(err)
			return
		}
		a.backToBoard()
		a.board.Focus(result.Item.ID)
		a.board.SetMessage(result.Message, false)

	case views.PromptAddCategory:
		result, err := commands.NewAddCategoryCommand(a.store, msg.Value).Execute(ctx)
		if err != nil {
			a.prompt.SetError(err)
			return
		}
		a.backToBoard()
		a.board.FocusContainer(result.Category.ID)
		a.board.SetMessage(result.Message, false)

	case views.PromptImport:
		result, err := a.importFile(ctx, config.ExpandHome(msg.Value))
		if err != nil {
			a.logger.Warn("import failed", zap.String("path", msg.Value), zap.Error(err))
			a.prompt.SetError(err)
			return
		}
		a.backToBoard()
		a.board.FocusContainer(application.UnfiledID)
		a.board.SetMessage(result.Message, false)
	}

	a.changed()
}

func (a *App) importFile(ctx context.Context, path string) (*commands.ImportCardsResult, error) {
	source, err := importer.ForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	return commands.NewImportCardsCommand(a.store, source, f, filepath.Base(path)).Execute(ctx)
}

func (a *App) deleteCategory(categoryID string) {
	result, err := commands.NewDeleteCategoryCommand(a.store, categoryID).Execute(context.Background())
	a.backToBoard()
	if err != nil {
		a.board.SetError(err)
		return
	}
	a.board.SetMessage(result.Message, !result.Applied)
	a.changed()
}

func (a *App) runExport(msg views.ExportRequestMsg) {
	enc, err := export.ForFormat(msg.Format)
	if err != nil {
		a.export.SetError(err)
		return
	}

	var buf bytes.Buffer
	result, err := commands.NewExportCommand(a.store, enc, &buf).Execute(context.Background())
	if err != nil {
		a.export.SetError(err)
		return
	}

	var where string
	if msg.Clipboard {
		if err := a.opts.Clipboard.WriteAll(buf.String()); err != nil {
			a.export.SetError(err)
			return
		}
		where = "clipboard"
	} else {
		path := filepath.Join(a.opts.ExportDir, export.FileName(enc))
		if err := writeFile(path, buf.Bytes()); err != nil {
			a.export.SetError(err)
			return
		}
		where = path
	}

	a.logger.Info("results exported", zap.String("format", result.Format), zap.String("to", where))
	a.backToBoard()
	a.board.SetMessage(fmt.Sprintf("%s to %s", result.Message, where), false)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

type editorFinishedMsg struct {
	path   string
	before string
	err    error
}

// editCards writes the unfiled cards to a temporary file, one per line, and
// hands the terminal to the editor
func (a *App) editCards() tea.Cmd {
	if a.opts.Editor == nil {
		a.board.SetMessage("No editor configured", true)
		return nil
	}

	var sb strings.Builder
	for _, it := range a.store.Snapshot().Unfiled {
		sb.WriteString(it.Content)
		sb.WriteString("\n")
	}
	before := sb.String()

	path, err := writeTemp(before)
	if err != nil {
		a.board.SetError(err)
		return nil
	}
	cmd, err := a.opts.Editor.Command(path)
	if err != nil {
		os.Remove(path)
		a.board.SetError(err)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, before: before, err: err}
	})
}

// finishEditing imports the edited list. An untouched file keeps the
// current cards and their IDs.
func (a *App) finishEditing(msg editorFinishedMsg) {
	defer os.Remove(msg.path)

	if msg.err != nil {
		a.logger.Warn("editor failed", zap.Error(msg.err))
		a.board.SetError(fmt.Errorf("editor: %w", msg.err))
		return
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		a.board.SetError(fmt.Errorf("reading edited cards: %w", err))
		return
	}
	if string(data) == msg.before {
		a.board.SetMessage("Cards unchanged", false)
		return
	}

	result, err := commands.NewImportCardsCommand(a.store, importer.Text{}, strings.NewReader(string(data)), "").
		Execute(context.Background())
	if err != nil {
		a.board.SetError(err)
		return
	}
	a.board.Reload()
	a.board.FocusContainer(application.UnfiledID)
	a.board.SetMessage(result.Message, false)
	a.changed()
}

func writeTemp(content string) (string, error) {
	f, err := os.CreateTemp("", "cardsort-cards-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create card list: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write card list: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write card list: %w", err)
	}
	return f.Name(), nil
}

// changed hands the current board to the OnChange hook while no drag is in
// progress
func (a *App) changed() {
	if a.opts.OnChange == nil || a.board.Dragging() {
		return
	}
	if err := a.opts.OnChange(a.store.Snapshot()); err != nil {
		a.logger.Error("failed to save board", zap.Error(err))
		a.board.SetError(err)
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewPrompt:
		return a.prompt.View()
	case ViewDelete:
		return a.confirm.View()
	case ViewExport:
		return a.export.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
