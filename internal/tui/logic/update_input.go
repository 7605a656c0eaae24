package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/components"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.CurrentView == state.ViewHelp {
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	}

	if h.Editor.Editing() {
		return h.handleEditorKey(msg)
	}

	if h.InputFocused {
		return h.handleNewTodoKey(msg)
	}

	return h.handleListKey(msg)
}

// handleEditorKey routes keys while a title is being edited.
func (h *Handler) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "tab":
		return h.submitEdit()

	case "esc":
		h.Editor.Cancel()
		return nil

	case "up", "down":
		// Leaving the row abandons the edit.
		h.Editor.Cancel()
		if msg.String() == "up" {
			h.moveCursor(-1)
		} else {
			h.moveCursor(1)
		}
		return nil

	case "ctrl+x":
		return h.toggleTodo(h.Editor.ItemID)
	}

	_, cmd := h.Editor.Update(msg)
	return cmd
}

func (h *Handler) submitEdit() tea.Cmd {
	intent := h.Editor.Submit()
	switch intent.Action {
	case components.EditRename:
		return h.UpdateTodo(intent.ItemID, api.TitlePatch(intent.Title))
	case components.EditRemove:
		return h.deleteTodo(intent.ItemID, true)
	}
	return nil
}

// handleNewTodoKey routes keys while the new todo input has focus.
func (h *Handler) handleNewTodoKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if h.Creating {
			return nil
		}
		return h.CreateTodo(h.NewTodoInput.Value(), false)

	case "esc":
		if h.Banner.Visible() {
			h.DismissError()
			return nil
		}
		h.blurNewTodo()
		return nil

	case "tab", "down":
		h.blurNewTodo()
		return nil

	case "ctrl+t":
		return h.ToggleAll()
	}

	if h.Creating {
		// Input is disabled until the create settles.
		return nil
	}
	var cmd tea.Cmd
	h.NewTodoInput, cmd = h.NewTodoInput.Update(msg)
	return cmd
}

func (h *Handler) blurNewTodo() {
	h.InputFocused = false
	h.NewTodoInput.Blur()
}

func (h *Handler) focusNewTodo() tea.Cmd {
	h.KeyState.Reset()
	h.InputFocused = true
	return h.NewTodoInput.Focus()
}

// handleListKey routes keys while the list has focus.
func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	vim := h.Config == nil || h.Config.UI.VimMode
	action, ok := h.KeyState.HandleKey(msg, h.Keymap, vim)
	if !ok || action == "" {
		return nil
	}

	switch action {
	case "up":
		h.moveCursor(-1)
	case "down":
		h.moveCursor(1)
	case "top":
		h.Cursor = 0
		h.ensureCursorVisible()
	case "bottom":
		h.Cursor = len(h.VisibleTodos()) - 1
		h.ClampCursor()
		h.ensureCursorVisible()

	case "edit":
		return h.beginEdit()
	case "toggle":
		if todo, ok := h.SelectedTodo(); ok {
			return h.toggleTodo(todo.ID)
		}
	case "delete":
		if todo, ok := h.SelectedTodo(); ok && !h.IsPending(state.Persisted(todo.ID)) {
			return h.DeleteTodo(todo.ID)
		}
	case "copy":
		return h.copySelected()

	case "new_todo":
		return h.focusNewTodo()
	case "toggle_all":
		return h.ToggleAll()
	case "clear_completed":
		return h.ClearCompleted()

	case "next_filter":
		h.setFilter(h.Filter.Next())
	case "prev_filter":
		h.setFilter(h.Filter.Prev())
	case "filter_all":
		h.setFilter(state.FilterAll)
	case "filter_active":
		h.setFilter(state.FilterActive)
	case "filter_completed":
		h.setFilter(state.FilterCompleted)

	case "refresh":
		if h.Loading {
			return nil
		}
		return h.LoadTodos()
	case "dismiss":
		h.DismissError()
	case "help":
		h.CurrentView = state.ViewHelp
	case "toggle_hints":
		h.ShowHints = !h.ShowHints
		h.ensureCursorVisible()
	case "quit":
		return tea.Quit
	}
	return nil
}

// toggleTodo flips the completed flag of id. It works the same whether or
// not the todo is being edited.
func (h *Handler) toggleTodo(id int) tea.Cmd {
	i := h.IndexOf(id)
	if i < 0 {
		return nil
	}
	return h.UpdateTodo(id, api.CompletedPatch(!h.Todos[i].Completed))
}

func (h *Handler) beginEdit() tea.Cmd {
	todo, ok := h.SelectedTodo()
	if !ok || h.IsPending(state.Persisted(todo.ID)) {
		return nil
	}
	h.KeyState.Reset()
	return h.Editor.Begin(todo)
}

func (h *Handler) setFilter(f state.Filter) {
	if h.Filter == f {
		return
	}
	h.Filter = f
	h.Cursor = 0
	h.ScrollOffset = 0
}

func (h *Handler) moveCursor(delta int) {
	h.Cursor += delta
	h.ClampCursor()
	h.ensureCursorVisible()
}

// ensureCursorVisible scrolls the list so the cursor row is on screen.
func (h *Handler) ensureCursorVisible() {
	rows := h.Layout().ItemRows(h.Placeholder != nil)
	if h.Cursor < h.ScrollOffset {
		h.ScrollOffset = h.Cursor
	}
	if h.Cursor >= h.ScrollOffset+rows {
		h.ScrollOffset = h.Cursor - rows + 1
	}
	maxOffset := len(h.VisibleTodos()) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if h.ScrollOffset > maxOffset {
		h.ScrollOffset = maxOffset
	}
	if h.ScrollOffset < 0 {
		h.ScrollOffset = 0
	}
}
