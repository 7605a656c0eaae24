package logic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

// CreateTodo shows a placeholder for title and asks the store to persist it.
// An empty title raises ErrEmptyTitle without touching the network.
func (h *Handler) CreateTodo(title string, completed bool) tea.Cmd {
	title = strings.TrimSpace(title)
	if title == "" {
		return h.raiseError(state.ErrEmptyTitle)
	}
	if h.Placeholder != nil {
		// Only one placeholder may exist at a time.
		return nil
	}

	req := api.CreateTodoRequest{
		Title:     title,
		Completed: completed,
		UserID:    h.OwnerID,
	}
	h.Placeholder = &api.Todo{
		UserID:    h.OwnerID,
		Title:     title,
		Completed: completed,
	}
	h.BeginRequest(state.PendingCreation)
	h.Creating = true
	h.NewTodoInput.Blur()

	store, ctx := h.Store, h.ctx
	return func() tea.Msg {
		todo, err := store.CreateTodo(ctx, req)
		return todoCreatedMsg{todo: todo, err: err}
	}
}

func (h *Handler) handleTodoCreated(msg todoCreatedMsg) tea.Cmd {
	h.EndRequest(state.PendingCreation)
	h.Placeholder = nil
	h.Creating = false
	h.InputFocused = true
	focus := h.NewTodoInput.Focus()

	if msg.err != nil || msg.todo == nil {
		err := msg.err
		if err == nil {
			err = errors.New("empty response")
		}
		h.Logger.Warn("create todo", "err", err)
		// Keep the typed title so the user can retry.
		return tea.Batch(focus, h.raiseError(state.ErrAdd))
	}

	// A reload that finished first may already list the new todo.
	if i := h.IndexOf(msg.todo.ID); i >= 0 {
		h.Todos[i] = *msg.todo
	} else {
		h.Todos = append(h.Todos, *msg.todo)
	}
	h.NewTodoInput.SetValue("")
	h.StatusMsg = "Todo added"
	h.Logger.Debug("created todo", "id", msg.todo.ID)
	return focus
}

// DeleteTodo removes id from the store and, on success, from the list.
func (h *Handler) DeleteTodo(id int) tea.Cmd {
	return h.deleteTodo(id, false)
}

// deleteTodo optionally moves focus to the new todo input once the
// request settles, whatever its outcome.
func (h *Handler) deleteTodo(id int, refocus bool) tea.Cmd {
	h.BeginRequest(state.Persisted(id))

	store, ctx := h.Store, h.ctx
	return func() tea.Msg {
		err := store.DeleteTodo(ctx, id)
		return todoDeletedMsg{id: id, refocus: refocus, err: err}
	}
}

func (h *Handler) handleTodoDeleted(msg todoDeletedMsg) tea.Cmd {
	h.EndRequest(state.Persisted(msg.id))

	var cmds []tea.Cmd
	if msg.refocus {
		h.InputFocused = true
		cmds = append(cmds, h.NewTodoInput.Focus())
	}

	if msg.err != nil {
		h.Logger.Warn("delete todo", "id", msg.id, "err", msg.err)
		cmds = append(cmds, h.raiseError(state.ErrDelete))
		return tea.Batch(cmds...)
	}

	h.Todos = slices.DeleteFunc(h.Todos, func(t api.Todo) bool {
		return t.ID == msg.id
	})
	h.Forget(msg.id)
	if h.Editor.EditingItem(msg.id) {
		h.Editor.Cancel()
	}
	h.ClampCursor()
	h.ensureCursorVisible()
	h.StatusMsg = "Todo deleted"
	return tea.Batch(cmds...)
}

// UpdateTodo sends patch for id. The change is merged into the list only
// once the store accepts it.
func (h *Handler) UpdateTodo(id int, patch api.UpdateTodoRequest) tea.Cmd {
	if patch.IsEmpty() {
		return nil
	}
	h.BeginRequest(state.Persisted(id))
	versions := make(state.Versions)
	for _, f := range state.PatchFields(patch) {
		versions[f] = h.NextVersion(id, f)
	}

	store, ctx := h.Store, h.ctx
	return func() tea.Msg {
		_, err := store.UpdateTodo(ctx, id, patch)
		return todoUpdatedMsg{id: id, patch: patch, versions: versions, err: err}
	}
}

func (h *Handler) handleTodoUpdated(msg todoUpdatedMsg) tea.Cmd {
	h.EndRequest(state.Persisted(msg.id))

	if msg.patch.Title != nil && h.Editor.EditingItem(msg.id) && h.Editor.Saving() {
		h.Editor.Resolve(msg.err)
	}

	if msg.err != nil {
		h.Logger.Warn("update todo", "id", msg.id, "err", msg.err)
		return h.raiseError(state.ErrUpdate)
	}

	i := h.IndexOf(msg.id)
	if i < 0 {
		return nil
	}
	var accepted []state.Field
	for _, f := range state.PatchFields(msg.patch) {
		if h.Accept(msg.id, f, msg.versions[f]) {
			accepted = append(accepted, f)
		} else {
			h.Logger.Debug("discarding stale update", "id", msg.id, "field", f, "version", msg.versions[f])
		}
	}
	h.Todos[i] = state.Only(msg.patch, accepted...).ApplyTo(h.Todos[i])
	h.ClampCursor()
	return nil
}

// ToggleAll completes every todo, or reopens all of them when they are
// all completed already. Local state changes immediately; only todos whose
// flag actually changes are sent, and failures are not rolled back.
func (h *Handler) ToggleAll() tea.Cmd {
	if len(h.Todos) == 0 {
		return nil
	}
	completed := !state.AllCompleted(h.Todos)

	var targets []int
	for i := range h.Todos {
		t := &h.Todos[i]
		if t.Completed == completed {
			continue
		}
		t.Completed = completed
		h.BeginRequest(state.Persisted(t.ID))
		// The local write is applied now, so older results for the flag are stale.
		h.Accept(t.ID, state.FieldCompleted, h.NextVersion(t.ID, state.FieldCompleted))
		targets = append(targets, t.ID)
	}
	h.ClampCursor()
	if len(targets) == 0 {
		return nil
	}

	store, ctx := h.Store, h.ctx
	return func() tea.Msg {
		errs := make([]error, len(targets))

		var g errgroup.Group
		g.SetLimit(maxConcurrentRequests)
		for i, target := range targets {
			i, target := i, target
			g.Go(func() error {
				_, errs[i] = store.UpdateTodo(ctx, target, api.CompletedPatch(completed))
				return nil
			})
		}
		_ = g.Wait()

		return toggleAllDoneMsg{completed: completed, targets: targets, errs: errs}
	}
}

func (h *Handler) handleToggleAllDone(msg toggleAllDoneMsg) tea.Cmd {
	failed := 0
	for i, id := range msg.targets {
		h.EndRequest(state.Persisted(id))
		if err := msg.errs[i]; err != nil {
			failed++
			h.Logger.Warn("toggle all", "id", id, "completed", msg.completed, "err", err)
		}
	}

	if failed > 0 {
		return h.raiseError(state.ErrUpdate)
	}
	if msg.completed {
		h.StatusMsg = fmt.Sprintf("Completed %d todos", len(msg.targets))
	} else {
		h.StatusMsg = fmt.Sprintf("Reopened %d todos", len(msg.targets))
	}
	return nil
}

// ClearCompleted deletes every completed todo. Each deletion is independent.
func (h *Handler) ClearCompleted() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range h.Todos {
		if t.Completed {
			cmds = append(cmds, h.DeleteTodo(t.ID))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
