package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func newTestRenderer(todos ...api.Todo) *Renderer {
	s := state.New(nil, nil, nil)
	s.Todos = todos
	s.Loaded = true
	s.Width = 80
	s.Height = 20
	return NewRenderer(s)
}

func TestViewFillsScreen(t *testing.T) {
	tests := []struct {
		name  string
		hints bool
		todos []api.Todo
	}{
		{name: "empty", hints: true},
		{name: "no hints", hints: false, todos: []api.Todo{{ID: 1, Title: "a"}}},
		{name: "many", hints: true, todos: manyTodos(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(tt.todos...)
			r.ShowHints = tt.hints

			lines := strings.Split(r.View(), "\n")
			if len(lines) != r.Height {
				t.Errorf("expected %d lines, got %d", r.Height, len(lines))
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w > r.Width {
					t.Errorf("line %d is %d cells wide, max %d", i, w, r.Width)
				}
			}
		})
	}
}

func manyTodos(n int) []api.Todo {
	todos := make([]api.Todo, n)
	for i := range todos {
		todos[i] = api.Todo{ID: i + 1, Title: strings.Repeat("long title ", 10), Completed: i%2 == 0}
	}
	return todos
}

func TestViewRowsMatchLayout(t *testing.T) {
	r := newTestRenderer(
		api.Todo{ID: 1, Title: "first"},
		api.Todo{ID: 2, Title: "second", Completed: true},
	)
	layout := r.Layout()
	lines := strings.Split(r.View(), "\n")

	if !strings.Contains(lines[layout.ListTop], "first") {
		t.Errorf("row %d should hold the first todo, got %q", layout.ListTop, lines[layout.ListTop])
	}
	if !strings.Contains(lines[layout.ListTop+1], "[x]") {
		t.Errorf("completed todo should be checked, got %q", lines[layout.ListTop+1])
	}
	if !strings.Contains(lines[layout.FooterRow], "1 item left") {
		t.Errorf("footer should count active todos, got %q", lines[layout.FooterRow])
	}
	if !strings.Contains(lines[layout.FooterRow], "clear completed") {
		t.Errorf("footer should offer clearing, got %q", lines[layout.FooterRow])
	}
}

func TestViewBannerAndPlaceholder(t *testing.T) {
	r := newTestRenderer(api.Todo{ID: 1, Title: "first"})
	r.Banner.Show(state.ErrAdd)
	r.Placeholder = &api.Todo{Title: "being saved"}
	r.BeginRequest(state.PendingCreation)

	layout := r.Layout()
	lines := strings.Split(r.View(), "\n")

	if !strings.Contains(lines[layout.BannerRow], "Unable to add a todo") {
		t.Errorf("banner row = %q", lines[layout.BannerRow])
	}
	if !strings.Contains(lines[layout.ListTop+1], "being saved") {
		t.Errorf("placeholder should follow the list, got %q", lines[layout.ListTop+1])
	}
}

func TestViewFilteredEmpty(t *testing.T) {
	r := newTestRenderer(api.Todo{ID: 1, Title: "open"})
	r.Filter = state.FilterCompleted

	out := r.View()
	if !strings.Contains(out, "No completed todos.") {
		t.Error("expected an empty-filter message")
	}
	if strings.Contains(out, "open") {
		t.Error("active todo should be hidden by the completed filter")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
