package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

type emptyStore struct{}

func (emptyStore) ListTodos(context.Context) ([]api.Todo, error) { return nil, nil }
func (emptyStore) CreateTodo(_ context.Context, req api.CreateTodoRequest) (*api.Todo, error) {
	return &api.Todo{ID: 1, Title: req.Title}, nil
}
func (emptyStore) UpdateTodo(_ context.Context, id int, _ api.UpdateTodoRequest) (*api.Todo, error) {
	return &api.Todo{ID: id}, nil
}
func (emptyStore) DeleteTodo(context.Context, int) error { return nil }

func TestNewAppFilterOverride(t *testing.T) {
	f := state.FilterCompleted
	app := NewApp(emptyStore{}, nil, nil, Options{Filter: &f})
	if app.state.Filter != state.FilterCompleted {
		t.Errorf("filter = %v, want Completed", app.state.Filter)
	}

	app = NewApp(emptyStore{}, nil, nil, Options{})
	if app.state.Filter != state.FilterAll {
		t.Errorf("default filter = %v, want All", app.state.Filter)
	}
}

func TestAppRendersAfterResize(t *testing.T) {
	app := NewApp(emptyStore{}, nil, nil, Options{})
	if app.Init() == nil {
		t.Fatal("Init should start loading")
	}

	if got := app.View(); got != "Loading..." {
		t.Errorf("view before the first resize = %q", got)
	}

	model, _ := app.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	out := model.View()
	if lines := strings.Split(out, "\n"); len(lines) != 12 {
		t.Errorf("expected 12 lines, got %d", len(lines))
	}
	if !strings.Contains(strings.Split(out, "\n")[0], "todos") {
		t.Errorf("header missing: %q", strings.Split(out, "\n")[0])
	}
}
