package logic

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/todos-tui/internal/tui/components"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

// Handler owns every mutation of the list. Operations change state
// synchronously and return a tea.Cmd performing the network call; the
// result comes back through Update.
type Handler struct {
	*state.State

	ctx      context.Context
	notify   func(title, message string) error
	copyText func(string) error
	now      func() time.Time
}

func NewHandler(s *state.State) *Handler {
	return &Handler{
		State: s,
		ctx:   context.Background(),
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		copyText: clipboard.WriteAll,
		now:      time.Now,
	}
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case todosLoadedMsg:
		return h.handleTodosLoaded(msg)

	case todoCreatedMsg:
		return h.handleTodoCreated(msg)

	case todoDeletedMsg:
		return h.handleTodoDeleted(msg)

	case todoUpdatedMsg:
		return h.handleTodoUpdated(msg)

	case toggleAllDoneMsg:
		return h.handleToggleAllDone(msg)

	case bannerExpiredMsg:
		h.Banner.Expire(msg.generation)
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case components.CloseRequestMsg:
		h.CurrentView = state.ViewList
		return nil
	}

	// Forward non-key messages (like blink) to active inputs
	if h.Editor.Editing() {
		_, cmd := h.Editor.Update(msg)
		return cmd
	}
	if h.InputFocused {
		var cmd tea.Cmd
		h.NewTodoInput, cmd = h.NewTodoInput.Update(msg)
		return cmd
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	inputWidth := msg.Width - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	h.NewTodoInput.Width = inputWidth
	h.Editor.SetSize(msg.Width, 1)
	h.HelpComp.SetSize(msg.Width, msg.Height)

	h.ensureCursorVisible()
	return nil
}

// errorTimeout is how long the banner stays up.
func (h *Handler) errorTimeout() time.Duration {
	if h.Config != nil && h.Config.UI.ErrorTimeout > 0 {
		return h.Config.UI.ErrorTimeout
	}
	return defaultErrorTimeout
}
