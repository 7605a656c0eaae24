package logic

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

const (
	// maxConcurrentRequests bounds the ToggleAll fan-out.
	maxConcurrentRequests = 5

	defaultErrorTimeout = 3 * time.Second
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	h.InputFocused = true
	return tea.Batch(
		h.Spinner.Tick,
		h.NewTodoInput.Focus(),
		textinput.Blink,
		h.LoadTodos(),
	)
}

// LoadTodos fetches the whole collection for the owner.
func (h *Handler) LoadTodos() tea.Cmd {
	h.Loading = true
	store, ctx := h.Store, h.ctx
	return func() tea.Msg {
		todos, err := store.ListTodos(ctx)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (h *Handler) handleTodosLoaded(msg todosLoadedMsg) tea.Cmd {
	h.Loading = false
	h.Loaded = true
	if msg.err != nil {
		h.Logger.Error("load todos", "owner", h.OwnerID, "err", msg.err)
		return h.raiseError(state.ErrLoad)
	}

	h.Todos = make([]api.Todo, len(msg.todos))
	copy(h.Todos, msg.todos)
	h.ClampCursor()
	h.ensureCursorVisible()
	h.Logger.Debug("loaded todos", "count", len(h.Todos))
	return nil
}

type statusMsg struct{ msg string }

type todosLoadedMsg struct {
	todos []api.Todo
	err   error
}

type todoCreatedMsg struct {
	todo *api.Todo
	err  error
}

type todoDeletedMsg struct {
	id      int
	refocus bool
	err     error
}

type todoUpdatedMsg struct {
	id       int
	patch    api.UpdateTodoRequest
	versions state.Versions
	err      error
}

type toggleAllDoneMsg struct {
	completed bool
	targets   []int
	errs      []error
}

type bannerExpiredMsg struct{ generation uint64 }
