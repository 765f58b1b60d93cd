package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cardsort/internal/adapters/tui/styles"
)

// DeleteModel is the model for the delete category confirmation view
type DeleteModel struct {
	ConfirmationModel
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel() *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		id := m.Target.ID
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return DeleteConfirmedMsg{CategoryID: id} },
			func() tea.Msg { return SwitchToBoardMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

// DeleteConfirmedMsg asks the app to delete the category
type DeleteConfirmedMsg struct {
	CategoryID string
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Category"))
	b.WriteString("\n\n")

	b.WriteString(RenderTargetInfo(m.Target, "Delete"))
	b.WriteString("\n\n")

	if len(m.Target.Items) > 0 {
		b.WriteString(styles.MutedText.Render("  Its cards go back to the unfiled list."))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderConfirmPrompt("Are you sure?"))

	return styles.App.Render(b.String())
}
