package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cardsort/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Card Sort Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Group the cards into categories that make sense to you"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Previous / next card"))
	b.WriteString(helpLine("h / l / ← / →", "Previous / next list"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Dragging"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Pick up the selected card"))
	b.WriteString(helpLine("h / l", "Carry it to the previous / next list"))
	b.WriteString(helpLine("j / k", "Carry it down / up the list"))
	b.WriteString(helpLine("enter / space", "Drop it"))
	b.WriteString(helpLine("esc", "Stop dragging where it is"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("a", "Add a card"))
	b.WriteString(helpLine("c", "Add a category"))
	b.WriteString(helpLine("d", "Delete the selected card"))
	b.WriteString(helpLine("D", "Delete the selected category"))
	b.WriteString(helpLine("i", "Import cards from .csv or .txt"))
	b.WriteString(helpLine("E", "Edit the unfiled cards in $EDITOR"))
	b.WriteString(helpLine("e", "Export results"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("  Deleting a category returns its cards to the unfiled list."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Importing replaces the unfiled list; sorted cards stay put."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
