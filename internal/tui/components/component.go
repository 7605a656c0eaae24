// Package components holds the self-contained sub-models of the todos TUI.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model owned by the handler. The handler routes
// messages to it and places its view in the layout.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

var (
	_ Component = (*ItemEditor)(nil)
	_ Component = (*HelpModel)(nil)
)
