package views

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cardsort/internal/adapters/export"
	"cardsort/internal/adapters/tui/styles"
	"cardsort/internal/ports"
)

// previewLines caps the export preview
const previewLines = 12

// ExportKeyMap defines key bindings for the export view
type ExportKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Save   key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var ExportKeys = ExportKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("h", "left", "shift+tab"),
		key.WithHelp("h/←", "prev format"),
	),
	Next: key.NewBinding(
		key.WithKeys("l", "right", "tab"),
		key.WithHelp("l/→", "next format"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save file"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// ExportModel lets the user pick a format, preview it and save or copy it
type ExportModel struct {
	ViewState
	store       ports.BoardStore
	formats     []string
	selected    int
	dir         string
	clipboardOK bool
}

// NewExportModel creates an export view. dir is where files are written.
func NewExportModel(store ports.BoardStore, dir, defaultFormat string, clipboardOK bool) *ExportModel {
	m := &ExportModel{
		store:       store,
		formats:     export.Formats(),
		dir:         dir,
		clipboardOK: clipboardOK,
	}
	m.SelectFormat(defaultFormat)
	return m
}

// SelectFormat focuses a format by name; unknown names are ignored
func (m *ExportModel) SelectFormat(name string) {
	enc, err := export.ForFormat(name)
	if err != nil {
		return
	}
	for i, f := range m.formats {
		if f == enc.Format() {
			m.selected = i
		}
	}
}

// Format returns the selected format name
func (m *ExportModel) Format() string {
	return m.formats[m.selected]
}

// Init initializes the export view
func (m *ExportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the export view
func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ExportKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(msg, ExportKeys.Prev):
			m.selected = (m.selected + len(m.formats) - 1) % len(m.formats)
			m.ClearMessage()

		case key.Matches(msg, ExportKeys.Next):
			m.selected = (m.selected + 1) % len(m.formats)
			m.ClearMessage()

		case key.Matches(msg, ExportKeys.Save):
			format := m.Format()
			return m, func() tea.Msg { return ExportRequestMsg{Format: format} }

		case key.Matches(msg, ExportKeys.Copy):
			if !m.clipboardOK {
				m.SetMessage("No clipboard available", true)
				return m, nil
			}
			format := m.Format()
			return m, func() tea.Msg { return ExportRequestMsg{Format: format, Clipboard: true} }
		}
	}

	return m, nil
}

// View renders the export view
func (m *ExportModel) View() string {
	var picker []string
	for i, f := range m.formats {
		if i == m.selected {
			picker = append(picker, styles.OptionSelected.Render(f))
		} else {
			picker = append(picker, styles.Option.Render(f))
		}
	}

	v := NewViewBuilder().
		Title("Export Results").
		Line(strings.Join(picker, " ")).
		BlankLine().
		Line(styles.Preview.Render(m.preview())).
		BlankLine()

	if enc, err := export.ForFormat(m.Format()); err == nil {
		v.Muted("Saves to " + filepath.Join(m.dir, export.FileName(enc)))
		v.BlankLine()
	}

	bindings := []key.Binding{ExportKeys.Prev, ExportKeys.Next, ExportKeys.Save}
	if m.clipboardOK {
		bindings = append(bindings, ExportKeys.Copy)
	}
	bindings = append(bindings, ExportKeys.Cancel)

	return v.Message(m.Message, m.MessageErr).Help(bindings...).String()
}

func (m *ExportModel) preview() string {
	enc, err := export.ForFormat(m.Format())
	if err != nil {
		return err.Error()
	}
	var sb strings.Builder
	if err := enc.Encode(&sb, m.store.Snapshot()); err != nil {
		return err.Error()
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "…")
	}
	return strings.Join(lines, "\n")
}

// ExportRequestMsg asks the app to export in Format, to a file or the clipboard
type ExportRequestMsg struct {
	Format    string
	Clipboard bool
}
