package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todos-tui/internal/tui/state"
	"github.com/hy4ri/todos-tui/internal/tui/styles"
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.CurrentView == state.ViewHelp {
		return r.HelpComp.View()
	}
	return r.renderMainView()
}

// renderMainView draws every row of the layout, top to bottom.
func (r *Renderer) renderMainView() string {
	layout := r.Layout()
	lines := make([]string, 0, r.Height)

	lines = append(lines, r.renderHeader())
	lines = append(lines, r.renderInputRow())
	lines = append(lines, r.renderBanner())
	lines = append(lines, r.renderList(layout)...)
	lines = append(lines, r.renderFooter())
	if layout.HintsRow >= 0 {
		lines = append(lines, r.renderHints())
	}

	return strings.Join(lines, "\n")
}

// renderHeader renders the title line with the loading spinner or the
// last status message on the right.
func (r *Renderer) renderHeader() string {
	left := styles.Title.Render("todos")

	var right string
	switch {
	case r.Loading:
		right = styles.Spinner.Render(r.Spinner.View()) + styles.HelpDesc.Render("Loading todos")
	case len(r.Pending) > 0:
		right = styles.Spinner.Render(r.Spinner.View()) + styles.HelpDesc.Render(fmt.Sprintf("Saving %d", len(r.Pending)))
	case r.StatusMsg != "":
		right = styles.HelpDesc.Render(truncateString(r.StatusMsg, r.Width/2))
	}

	gap := r.Width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderInputRow renders the toggle-all marker and the new todo field.
func (r *Renderer) renderInputRow() string {
	marker := "     "
	if len(r.Todos) > 0 {
		if state.AllCompleted(r.Todos) {
			marker = "  " + styles.ToggleAllActive.Render("[v]")
		} else {
			marker = "  " + styles.ToggleAll.Render("[v]")
		}
	}

	var field string
	switch {
	case r.Creating:
		field = styles.Input.Render(truncateString(r.NewTodoInput.Value(), r.Width-8))
	case r.InputFocused:
		field = styles.InputFocused.Render(r.NewTodoInput.View())
	default:
		value := r.NewTodoInput.Value()
		if value == "" {
			value = r.NewTodoInput.Placeholder
		}
		field = styles.Input.Render(truncateString(value, r.Width-8))
	}
	return marker + " " + field
}

// renderBanner renders the error line, blank when there is no error.
func (r *Renderer) renderBanner() string {
	if !r.Banner.Visible() {
		return ""
	}
	msg := truncateString(r.Banner.Kind.Message(), r.Width-12)
	return styles.Banner.Render("✕ "+msg) + styles.HelpDesc.Render("  esc")
}

// renderFooter renders the remaining count, the filter tabs and the
// clear-completed hint.
func (r *Renderer) renderFooter() string {
	if len(r.Todos) == 0 {
		return styles.StatusBar.Width(r.Width).Render("")
	}

	active := state.ActiveCount(r.Todos)
	left := fmt.Sprintf("%d %s left", active, pluralize(active, "item", "items"))

	tabs := make([]string, 0, len(state.Filters))
	for _, f := range state.Filters {
		if f == r.Filter {
			tabs = append(tabs, styles.TabActive.Render(f.String()))
		} else {
			tabs = append(tabs, styles.Tab.Render(f.String()))
		}
	}

	content := styles.StatusBarText.Render(left) + styles.StatusBarText.Render("  ") + strings.Join(tabs, "")
	if active < len(r.Todos) {
		content += styles.StatusBarText.Render("  ") +
			styles.StatusBarKey.Render(r.Keymap.ClearCompleted.Key) +
			styles.StatusBarText.Render(" clear completed")
	}
	return styles.StatusBar.Width(r.Width).MaxWidth(r.Width).Render(content)
}

// renderHints renders the short key reference line.
func (r *Renderer) renderHints() string {
	var hints []string
	switch {
	case r.Editor.Editing():
		hints = []string{"enter", "save", "esc", "cancel", "ctrl+x", "toggle"}
	case r.InputFocused:
		hints = []string{"enter", "add", "tab", "list", "ctrl+t", "toggle all"}
	default:
		km := r.Keymap
		hints = []string{
			km.NewTodo.Key, "add",
			km.Toggle.Key, "toggle",
			km.Edit.Key, "edit",
			"dd", "delete",
			km.ToggleAll.Key, "all",
			km.Help.Key, "help",
			km.Quit.Key, "quit",
		}
	}

	var b strings.Builder
	for i := 0; i+1 < len(hints); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.HelpKey.Render(hints[i]))
		b.WriteString(" ")
		b.WriteString(styles.HelpDesc.Render(hints[i+1]))
	}
	return lipgloss.NewStyle().MaxWidth(r.Width).Render(b.String())
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
