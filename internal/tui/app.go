// Package tui provides the terminal user interface for the todo list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hy4ri/todos-tui/internal/config"
	"github.com/hy4ri/todos-tui/internal/tui/logic"
	"github.com/hy4ri/todos-tui/internal/tui/state"
	"github.com/hy4ri/todos-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// Options adjusts the initial state of the app.
type Options struct {
	// Filter overrides the configured default filter when set.
	Filter *state.Filter
}

// NewApp creates a new App instance.
func NewApp(store state.Store, cfg *config.Config, logger *log.Logger, opts Options) *App {
	s := state.New(store, cfg, logger)
	if opts.Filter != nil {
		s.Filter = *opts.Filter
	}

	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
