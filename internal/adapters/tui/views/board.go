package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardsort/internal/adapters/tui/styles"
	"cardsort/internal/application"
	"cardsort/internal/domain"
	"cardsort/internal/ports"
)

// minColumnWidth keeps card text readable on narrow terminals
const minColumnWidth = 22

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	Grab           key.Binding
	Drop           key.Binding
	Cancel         key.Binding
	AddCard        key.Binding
	AddCategory    key.Binding
	DeleteCard     key.Binding
	DeleteCategory key.Binding
	Export         key.Binding
	Import         key.Binding
	EditCards      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev list"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next list"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "grab"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	AddCard: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add card"),
	),
	AddCategory: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "add category"),
	),
	DeleteCard: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete card"),
	),
	DeleteCategory: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete category"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import"),
	),
	EditCards: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit cards"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BoardModel shows the unfiled list and the categories side by side and
// drives the drag gesture from the keyboard
type BoardModel struct {
	ViewState
	store   ports.BoardStore
	gesture *application.GestureController
	board   domain.Board
	col     int
	row     int
	changed bool
}

// NewBoardModel creates a board view over store
func NewBoardModel(store ports.BoardStore, gesture *application.GestureController) *BoardModel {
	m := &BoardModel{
		store:   store,
		gesture: gesture,
	}
	m.Reload()
	return m
}

// Init initializes the board view
func (m *BoardModel) Init() tea.Cmd {
	return nil
}

// Reload refreshes the snapshot after the store changed elsewhere
func (m *BoardModel) Reload() {
	m.board = m.store.Snapshot()
	m.clampCursor()
}

// TakeChanged reports whether a key press changed the board since the last
// call and resets the flag
func (m *BoardModel) TakeChanged() bool {
	c := m.changed
	m.changed = false
	return c
}

// Dragging reports whether a gesture is in progress
func (m *BoardModel) Dragging() bool {
	_, ok := m.gesture.ActiveID()
	return ok
}

// FocusedContainer returns the ID of the list under the cursor
func (m *BoardModel) FocusedContainer() string {
	ids := m.board.ContainerIDs()
	return ids[m.col]
}

// FocusedItem returns the card under the cursor
func (m *BoardModel) FocusedItem() (domain.Item, bool) {
	items, _ := m.board.Container(m.FocusedContainer())
	if m.row < 0 || m.row >= len(items) {
		return domain.Item{}, false
	}
	return items[m.row], true
}

// FocusedCategory returns the category under the cursor, if any
func (m *BoardModel) FocusedCategory() (domain.Category, bool) {
	return m.board.Category(m.FocusedContainer())
}

// Focus moves the cursor onto a card
func (m *BoardModel) Focus(itemID string) {
	containerID, idx, ok := m.board.Locate(itemID)
	if !ok {
		return
	}
	for i, id := range m.board.ContainerIDs() {
		if id == containerID {
			m.col = i
			m.row = idx
			return
		}
	}
}

// FocusContainer moves the cursor onto the first card of a list
func (m *BoardModel) FocusContainer(containerID string) {
	for i, id := range m.board.ContainerIDs() {
		if id == containerID {
			m.col = i
			m.row = 0
			m.clampCursor()
			return
		}
	}
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.Dragging() {
			return m, m.updateDragging(msg)
		}
		return m, m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *BoardModel) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BoardKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BoardKeys.Up):
		m.ClearMessage()
		m.row--
		m.clampCursor()

	case key.Matches(msg, BoardKeys.Down):
		m.ClearMessage()
		m.row++
		m.clampCursor()

	case key.Matches(msg, BoardKeys.Left):
		m.ClearMessage()
		m.col--
		m.clampCursor()

	case key.Matches(msg, BoardKeys.Right):
		m.ClearMessage()
		m.col++
		m.clampCursor()

	case key.Matches(msg, BoardKeys.Grab):
		item, ok := m.FocusedItem()
		if !ok {
			m.SetMessage("Nothing to grab here", true)
			return nil
		}
		if m.gesture.Start(item.ID) {
			m.SetMessage(fmt.Sprintf("Dragging %q", item.Content), false)
		}

	case key.Matches(msg, BoardKeys.AddCard):
		return func() tea.Msg { return SwitchToPromptMsg{Mode: PromptAddCard} }

	case key.Matches(msg, BoardKeys.AddCategory):
		return func() tea.Msg { return SwitchToPromptMsg{Mode: PromptAddCategory} }

	case key.Matches(msg, BoardKeys.Import):
		return func() tea.Msg { return SwitchToPromptMsg{Mode: PromptImport} }

	case key.Matches(msg, BoardKeys.EditCards):
		return func() tea.Msg { return EditCardsMsg{} }

	case key.Matches(msg, BoardKeys.DeleteCard):
		item, ok := m.FocusedItem()
		if !ok {
			m.SetMessage("No card selected", true)
			return nil
		}
		if m.store.DeleteItem(item.ID) {
			m.changed = true
			m.Reload()
			m.SetMessage(fmt.Sprintf("Deleted %q", item.Content), false)
		}

	case key.Matches(msg, BoardKeys.DeleteCategory):
		cat, ok := m.FocusedCategory()
		if !ok {
			m.SetMessage("Select a category to delete", true)
			return nil
		}
		return func() tea.Msg { return SwitchToDeleteMsg{Category: cat} }

	case key.Matches(msg, BoardKeys.Export):
		return func() tea.Msg { return SwitchToExportMsg{} }

	case key.Matches(msg, BoardKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}
	return nil
}

func (m *BoardModel) updateDragging(msg tea.KeyMsg) tea.Cmd {
	active, _ := m.gesture.ActiveID()
	ids := m.board.ContainerIDs()

	switch {
	case key.Matches(msg, BoardKeys.Cancel):
		m.gesture.Cancel()
		m.changed = true
		m.SetMessage("Drag cancelled", false)

	case key.Matches(msg, BoardKeys.Drop):
		target := active
		if item, ok := m.FocusedItem(); ok {
			target = item.ID
		}
		m.gesture.Drop(active, target)
		m.changed = true
		m.Reload()
		m.Focus(active)
		m.SetMessage("Dropped", false)

	case key.Matches(msg, BoardKeys.Left):
		if m.col > 0 {
			m.hover(active, ids[m.col-1], application.NoIndex)
		}

	case key.Matches(msg, BoardKeys.Right):
		if m.col < len(ids)-1 {
			m.hover(active, ids[m.col+1], application.NoIndex)
		}

	case key.Matches(msg, BoardKeys.Up):
		if m.row > 0 {
			m.hover(active, ids[m.col], m.row-1)
		}

	case key.Matches(msg, BoardKeys.Down):
		m.hover(active, ids[m.col], m.row+1)

	case key.Matches(msg, BoardKeys.Quit):
		m.gesture.Cancel()
		return tea.Quit
	}
	return nil
}

// hover moves the dragged card and keeps the cursor on it
func (m *BoardModel) hover(active, targetID string, index int) {
	if m.gesture.Hover(active, targetID, index) {
		m.changed = true
	}
	m.Reload()
	if _, ok := m.gesture.ActiveID(); !ok {
		m.SetMessage("The dragged card is gone", true)
		return
	}
	m.Focus(active)
}

func (m *BoardModel) clampCursor() {
	ids := m.board.ContainerIDs()
	m.col = max(0, min(m.col, len(ids)-1))
	items, _ := m.board.Container(ids[m.col])
	m.row = max(0, min(m.row, len(items)-1))
}

// View renders the board
func (m *BoardModel) View() string {
	v := NewViewBuilder()
	v.Title("Card Sort")

	ids := m.board.ContainerIDs()
	width := minColumnWidth
	if m.Width > 0 {
		width = max(minColumnWidth, (m.Width-4)/len(ids)-4)
	}

	active, dragging := m.gesture.ActiveID()
	columns := make([]string, 0, len(ids))
	for i, id := range ids {
		items, _ := m.board.Container(id)
		title := RenderColumnTitle(m.board, id, width)
		var cards []string
		for j, it := range items {
			cards = append(cards, RenderCard(it, i == m.col && j == m.row, dragging && it.ID == active, width))
		}

		style := styles.Column
		if i == m.col {
			style = styles.ColumnFocused
			if dragging {
				style = styles.ColumnDropTarget
			}
		}
		columns = append(columns, RenderColumn(style, title, cards, width))
	}

	v.Raw(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	v.BlankLine().BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.statusBar(dragging))
	return v.String()
}

func (m *BoardModel) statusBar(dragging bool) string {
	if dragging {
		return styles.StatusDragging.Render("DRAG") +
			RenderHelpLine(BoardKeys.Left, BoardKeys.Right, BoardKeys.Up, BoardKeys.Down, BoardKeys.Drop, BoardKeys.Cancel)
	}
	counts := fmt.Sprintf("%d cards • %d categories", m.board.ItemCount(), len(m.board.Categories))
	return styles.StatusKey.Render("SORT") + styles.StatusText.Render(counts) + "  " +
		RenderHelpLine(BoardKeys.Grab, BoardKeys.AddCard, BoardKeys.AddCategory, BoardKeys.Export, BoardKeys.Help, BoardKeys.Quit)
}

// SwitchToPromptMsg opens the text prompt in the given mode
type SwitchToPromptMsg struct {
	Mode PromptMode
}

// SwitchToDeleteMsg asks for confirmation before deleting a category
type SwitchToDeleteMsg struct {
	Category domain.Category
}

type SwitchToExportMsg struct{}

// EditCardsMsg asks the app to open the unfiled cards in the editor
type EditCardsMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBoardMsg struct{}

// StatusMsg is shown on the board after returning from another view
type StatusMsg struct {
	Text string
	Err  bool
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return strings.TrimSpace(string(r)) + "…"
}
