// Package tui renders the todo client as a Bubble Tea program. All service
// calls go through the state machine in internal/client/state; the TUI only
// translates keystrokes into state transitions and draws the result.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/client/state"
	"taskboard/internal/domains/todo/model/dto"
)

// listItem adapts a TodoItemResponse to bubbles/list.Item.
type listItem struct {
	item dto.TodoItemResponse
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.item.IsCompleted {
		box = boxChecked
	}

	return fmt.Sprintf("%s %s", box, i.item.Title)
}

func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Title }

// itemDelegate renders each item on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.item.Title
	if it.item.IsCompleted {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", box, text, mutedStyle.Render("· "+it.item.Description))

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}

	fmt.Fprintln(w, prefix+line)
}

const formFieldCount = 2

type Model struct {
	state *state.State

	list       list.Model
	titleInput textinput.Model
	descInput  textinput.Model

	// formOpen is true while the create/edit form has focus. Which of the
	// two it is follows from state.Mode.
	formOpen   bool
	focusIndex int

	width  int
	height int
}

func New(s *state.State) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Title..."
	ti.CharLimit = 255

	di := textinput.New()
	di.Prompt = "> "
	di.Placeholder = "Description..."
	di.CharLimit = 255

	return Model{
		state:      s,
		list:       l,
		titleInput: ti,
		descInput:  di,
	}
}

// Run fetches the first page and blocks until the user quits.
func Run(s *state.State) error {
	s.Refresh(context.Background())

	m := New(s)
	m.syncList()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height

		return m, nil
	}

	if m.formOpen {
		return m.updateForm(msg)
	}

	return m.updateBrowsing(msg)
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.state.PrevPage(ctx)
		m.syncList()

		return m, nil
	case "right", "l":
		m.state.NextPage(ctx)
		m.syncList()

		return m, nil
	case "r":
		m.state.Refresh(ctx)
		m.syncList()

		return m, nil
	case "a":
		m.state.ClearForm()
		m.openForm()

		return m, nil
	case "e":
		if item, ok := m.selected(); ok {
			m.state.StartEdit(ctx, item.ID)
			if m.state.Mode == state.ModeEditing {
				m.openForm()
			}
		}

		return m, nil
	case "d":
		if item, ok := m.selected(); ok {
			m.state.Delete(ctx, item.ID)
			m.syncList()
		}

		return m, nil
	case " ":
		// Toggle runs the full edit cycle: fresh read, flip, replace.
		if item, ok := m.selected(); ok {
			m.state.StartEdit(ctx, item.ID)
			if m.state.Mode == state.ModeEditing {
				m.state.Form.IsCompleted = !m.state.Form.IsCompleted
				m.state.Submit(ctx)
				m.syncList()
			}
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.state.ClearForm()
			m.closeForm()

			return m, nil
		case "tab", "shift+tab", "down", "up":
			m.focusIndex = (m.focusIndex + 1) % formFieldCount
			m.syncFocus()

			return m, nil
		case "ctrl+t":
			m.state.Form.IsCompleted = !m.state.Form.IsCompleted

			return m, nil
		case "enter":
			m.state.Form.Title = m.titleInput.Value()
			m.state.Form.Description = m.descInput.Value()

			m.state.Submit(ctx)

			// A failed submit keeps the form open with the alert shown.
			if m.state.Alert == "" {
				m.closeForm()
			}

			m.syncList()

			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	page := m.state.Page

	done := 0
	for _, item := range page.Items {
		if item.IsCompleted {
			done++
		}
	}

	header := fmt.Sprintf("%s   %s %d  %s %d  %s page %d/%d (%d items)",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(page.Items)-done,
		accentStyle.Render("·"), page.CurrentPage, max(page.TotalPages, 1), page.TotalCount,
	)

	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	listHeight := h - 6
	if m.formOpen {
		listHeight = h - 10
	}

	m.list.SetSize(w-4, max(listHeight, 1))

	sections := []string{header, m.list.View()}

	if m.formOpen {
		formTitle := "Add todo"
		if m.state.Mode == state.ModeEditing {
			formTitle = fmt.Sprintf("Edit todo #%d", m.state.EditID)
		}

		completed := boxUnchecked
		if m.state.Form.IsCompleted {
			completed = boxChecked
		}

		form := strings.Join([]string{
			titleStyle.Render(formTitle),
			m.titleInput.View(),
			m.descInput.View(),
			mutedStyle.Render(fmt.Sprintf("%s completed (ctrl+t)", completed)),
		}, "\n")

		sections = append(sections, panelStyle.Render(form))
	}

	if m.state.Alert != "" {
		sections = append(sections, errorStyle.Render("✖ "+m.state.Alert))
	}

	help := "a add · e edit · d delete · space toggle · ←/→ page · r refresh · q quit"
	if m.formOpen {
		help = "enter submit · tab next field · ctrl+t toggle completed · esc cancel"
	}

	sections = append(sections, helpStyle.Render(help))

	return panelStyle.Render(strings.Join(sections, "\n"))
}

func (m *Model) selected() (dto.TodoItemResponse, bool) {
	item, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return dto.TodoItemResponse{}, false
	}

	return item.item, true
}

// syncList rebuilds the visible list from the state's current page.
func (m *Model) syncList() {
	items := make([]list.Item, 0, len(m.state.Page.Items))
	for _, item := range m.state.Page.Items {
		items = append(items, listItem{item: item})
	}

	m.list.SetItems(items)

	if m.list.Index() >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

func (m *Model) openForm() {
	m.formOpen = true
	m.focusIndex = 0

	m.titleInput.SetValue(m.state.Form.Title)
	m.titleInput.CursorEnd()
	m.descInput.SetValue(m.state.Form.Description)
	m.descInput.CursorEnd()

	m.syncFocus()
}

func (m *Model) closeForm() {
	m.formOpen = false
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.titleInput.Blur()
	m.descInput.Blur()
}

func (m *Model) syncFocus() {
	if m.focusIndex == 0 {
		m.titleInput.Focus()
		m.descInput.Blur()
	} else {
		m.descInput.Focus()
		m.titleInput.Blur()
	}
}
