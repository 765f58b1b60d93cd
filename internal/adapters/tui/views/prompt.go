package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptMode selects what the prompt collects
type PromptMode int

const (
	PromptAddCard PromptMode = iota
	PromptAddCategory
	PromptImport
)

func (p PromptMode) title() string {
	switch p {
	case PromptAddCategory:
		return "Add Category"
	case PromptImport:
		return "Import Cards"
	default:
		return "Add Card"
	}
}

func (p PromptMode) field() (label, placeholder string) {
	switch p {
	case PromptAddCategory:
		return "Category name", "e.g. Navigation"
	case PromptImport:
		return "File path (.csv or .txt)", "~/cards.csv"
	default:
		return "Card text", "e.g. Home"
	}
}

// PromptModel asks for a single line of text
type PromptModel struct {
	ViewState
	mode PromptMode
	form *InputForm
}

// NewPromptModel creates a new prompt model
func NewPromptModel() *PromptModel {
	m := &PromptModel{}
	m.SetMode(PromptAddCard)
	return m
}

// SetMode resets the prompt for a new entry
func (m *PromptModel) SetMode(mode PromptMode) {
	m.mode = mode
	label, placeholder := mode.field()
	m.form = NewInputForm(NewInputField(label, placeholder, 256))
	m.ClearMessage()
}

// Mode returns what the prompt is collecting
func (m *PromptModel) Mode() PromptMode {
	return m.mode
}

// Init initializes the prompt
func (m *PromptModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			value := m.form.Value(0)
			if value == "" {
				label, _ := m.mode.field()
				m.SetMessage(label+" is required", true)
				return m, nil
			}
			mode := m.mode
			return m, func() tea.Msg { return PromptSubmitMsg{Mode: mode, Value: value} }
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptModel) View() string {
	return NewViewBuilder().
		Title(m.mode.title()).
		Line(m.form.RenderField(0)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("save")).
		String()
}

// PromptSubmitMsg carries the text entered in the prompt
type PromptSubmitMsg struct {
	Mode  PromptMode
	Value string
}
