package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/tui/state"
)

const doubleClickInterval = 400 * time.Millisecond

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.CurrentView != state.ViewList {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		h.moveCursor(-1)
		return nil
	case tea.MouseButtonWheelDown:
		h.moveCursor(1)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	layout := h.Layout()
	switch {
	case msg.Y == layout.BannerRow && h.Banner.Visible():
		h.DismissError()
		return nil

	case msg.Y == layout.InputRow:
		return h.handleInputClick(msg.X)

	case msg.Y >= layout.ListTop && msg.Y < layout.ListTop+layout.ItemRows(h.Placeholder != nil):
		return h.handleRowClick(msg.X, msg.Y-layout.ListTop)
	}

	// Anywhere else counts as outside the edited row.
	if h.Editor.Editing() {
		h.Editor.Cancel()
	}
	return nil
}

// handleInputClick handles the header row: the toggle-all marker sits in
// front of the new todo input.
func (h *Handler) handleInputClick(x int) tea.Cmd {
	if h.Editor.Editing() {
		h.Editor.Cancel()
	}
	if x < state.CheckboxEnd {
		return h.ToggleAll()
	}
	return h.focusNewTodo()
}

func (h *Handler) handleRowClick(x, row int) tea.Cmd {
	visible := h.VisibleTodos()
	index := h.ScrollOffset + row
	if index < 0 || index >= len(visible) {
		if h.Editor.Editing() {
			h.Editor.Cancel()
		}
		return nil
	}
	todo := visible[index]

	if h.Editor.Editing() && !h.Editor.EditingItem(todo.ID) {
		h.Editor.Cancel()
	}
	if h.InputFocused {
		h.blurNewTodo()
	}
	h.Cursor = index
	h.ensureCursorVisible()

	if x >= state.CheckboxStart && x < state.CheckboxEnd {
		h.LastClick = state.Click{}
		return h.toggleTodo(todo.ID)
	}

	now := h.now()
	double := h.LastClick.Row == index && !h.LastClick.At.IsZero() && now.Sub(h.LastClick.At) <= doubleClickInterval
	h.LastClick = state.Click{Row: index, At: now}
	if double && !h.Editor.EditingItem(todo.ID) {
		h.LastClick = state.Click{}
		return h.beginEdit()
	}
	return nil
}
