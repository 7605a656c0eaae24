package ui

import (
	"fmt"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/state"
	"github.com/hy4ri/todos-tui/internal/tui/styles"
)

// renderList returns exactly layout.ListHeight lines: the visible todos,
// the placeholder row if a create is pending, then blank filler.
func (r *Renderer) renderList(layout state.Layout) []string {
	lines := make([]string, 0, layout.ListHeight)
	visible := r.VisibleTodos()
	rows := layout.ItemRows(r.Placeholder != nil)

	switch {
	case !r.Loaded && r.Loading:
		lines = append(lines, "  "+styles.Spinner.Render(r.Spinner.View())+styles.HelpDesc.Render("Loading..."))
	case len(r.Todos) == 0 && r.Placeholder == nil:
		lines = append(lines, styles.HelpDesc.Render("  Nothing to do. Press 'a' to add a todo."))
	case len(visible) == 0 && r.Placeholder == nil:
		lines = append(lines, styles.HelpDesc.Render(fmt.Sprintf("  No %s todos.", r.filterNoun())))
	}

	end := r.ScrollOffset + rows
	if end > len(visible) {
		end = len(visible)
	}
	for i := r.ScrollOffset; i < end; i++ {
		lines = append(lines, r.renderTodoRow(visible[i], i == r.Cursor))
	}

	if r.Placeholder != nil {
		lines = append(lines, r.renderPlaceholderRow(*r.Placeholder))
	}

	for len(lines) < layout.ListHeight {
		lines = append(lines, "")
	}
	return lines[:layout.ListHeight]
}

func (r *Renderer) filterNoun() string {
	switch r.Filter {
	case state.FilterActive:
		return "active"
	case state.FilterCompleted:
		return "completed"
	}
	return ""
}

// renderTodoRow renders one todo as "▸ [x] title". Rows with a request in
// flight show the spinner in the cursor column and are greyed out.
func (r *Renderer) renderTodoRow(todo api.Todo, selected bool) string {
	pending := r.IsPending(state.Persisted(todo.ID))

	prefix := "  "
	switch {
	case pending:
		prefix = styles.Spinner.Render(r.Spinner.View())
	case selected && !r.InputFocused:
		prefix = styles.Cursor.Render("▸ ")
	}

	checkbox := styles.CheckboxOpen.Render("[ ]")
	if todo.Completed {
		checkbox = styles.CheckboxDone.Render("[x]")
	}

	titleWidth := r.Width - state.CheckboxEnd - 2
	var title string
	switch {
	case r.Editor.EditingItem(todo.ID):
		return prefix + checkbox + " " + r.Editor.View()
	case pending:
		title = styles.TodoPending.Render(truncateString(todo.Title, titleWidth))
	case todo.Completed:
		title = styles.TodoCompleted.Render(truncateString(todo.Title, titleWidth))
	default:
		title = styles.TodoItem.Render(truncateString(todo.Title, titleWidth))
	}

	row := prefix + checkbox + " " + title
	if selected && !r.InputFocused {
		return styles.TodoSelected.Render(padRight(row, r.Width))
	}
	return row
}

func (r *Renderer) renderPlaceholderRow(todo api.Todo) string {
	prefix := "  "
	if r.IsPending(state.PendingCreation) {
		prefix = styles.Spinner.Render(r.Spinner.View())
	}
	titleWidth := r.Width - state.CheckboxEnd - 2
	return prefix + styles.CheckboxOpen.Render("[ ]") + " " +
		styles.Placeholder.Render(truncateString(todo.Title, titleWidth))
}
